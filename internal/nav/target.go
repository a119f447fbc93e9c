package nav

import (
	"fmt"
	"strings"

	"github.com/atomicstack/linux-ref-guide/internal/content"
	"github.com/atomicstack/linux-ref-guide/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MainTarget names the main menu as a start location.
const MainTarget = "main"

// IDLister lists every menu item id.
type IDLister interface {
	IDs() []string
}

// ParseTarget maps a start location to a navigation state. Accepted values are
// "main" (or empty), a level id such as "basic", or a topic item id such as
// "basic-files" that appears in the catalog.
func ParseTarget(catalog IDLister, id string) (menu.State, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if key == "" || key == MainTarget {
		return menu.MainMenu(), nil
	}
	if level, ok := content.ParseLevel(key); ok {
		return menu.Submenu(level), nil
	}
	ids := catalog.IDs()
	for _, known := range ids {
		if known != key {
			continue
		}
		if level, topic, ok := SplitTopicID(key); ok {
			return menu.TopicView(level, topic), nil
		}
	}
	err := fmt.Errorf("unknown start location %q", id)
	if matches := fuzzy.RankFindNormalizedFold(key, ids); len(matches) > 0 {
		best := matches[0]
		for _, m := range matches[1:] {
			if m.Distance < best.Distance {
				best = m
			}
		}
		err = fmt.Errorf("%w (did you mean %q?)", err, best.Target)
	}
	return menu.State{}, err
}
