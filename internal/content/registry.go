// Package content resolves authored reference text by level and topic id.
//
// Bodies are markdown files embedded from text/: one directory per level
// holding <topic>.md files and an _overview.md shown for the level's submenu,
// plus welcome.md and help.md at the top. Lookups never fail; a missing topic
// or level resolves to a placeholder naming what was asked for.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/atomicstack/linux-ref-guide/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

//go:embed all:text
var embedded embed.FS

const (
	overviewFile = "_overview.md"
	welcomeFile  = "welcome.md"
	helpFile     = "help.md"
	maxSuggested = 3
)

// ErrMissingTopic reports a topic that a menu lists but no body exists for.
var ErrMissingTopic = errors.New("content: missing topic")

type levelContent struct {
	overview string
	topics   map[string]string
}

// Registry holds every authored body. It is immutable once built.
type Registry struct {
	levels  map[Level]*levelContent
	welcome string
	help    string
}

type options struct {
	fsys     fs.FS
	keyTable []string
}

// Option customises registry construction.
type Option func(*options)

// WithFS loads content from fsys instead of the embedded text tree. The
// layout must match text/.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// WithKeyTable appends pre-formatted keybinding rows to the help body.
func WithKeyTable(rows []string) Option {
	return func(o *options) { o.keyTable = append([]string(nil), rows...) }
}

// New loads the registry.
func New(opts ...Option) (*Registry, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fsys == nil {
		sub, err := fs.Sub(embedded, "text")
		if err != nil {
			return nil, fmt.Errorf("content: open embedded text: %w", err)
		}
		o.fsys = sub
	}

	r := &Registry{levels: make(map[Level]*levelContent, len(Levels()))}
	for _, level := range Levels() {
		lc, err := loadLevel(o.fsys, level)
		if err != nil {
			return nil, err
		}
		r.levels[level] = lc
	}

	welcome, err := readOptional(o.fsys, welcomeFile)
	if err != nil {
		return nil, err
	}
	help, err := readOptional(o.fsys, helpFile)
	if err != nil {
		return nil, err
	}
	r.welcome = welcome
	r.help = appendKeyTable(help, o.keyTable)
	return r, nil
}

// MustNew is New for callers that cannot recover, such as tests.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func loadLevel(fsys fs.FS, level Level) (*levelContent, error) {
	lc := &levelContent{topics: make(map[string]string)}
	dir := level.String()
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lc, nil
		}
		return nil, fmt.Errorf("content: read %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".md" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("content: read %s/%s: %w", dir, name, err)
		}
		if name == overviewFile {
			lc.overview = string(data)
			continue
		}
		lc.topics[strings.TrimSuffix(name, ".md")] = string(data)
	}
	return lc, nil
}

func readOptional(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("content: read %s: %w", name, err)
	}
	return string(data), nil
}

func appendKeyTable(help string, rows []string) string {
	if len(rows) == 0 {
		return help
	}
	var b strings.Builder
	b.WriteString(strings.TrimRight(help, "\n"))
	if b.Len() > 0 {
		b.WriteString("\n\n")
	}
	b.WriteString("## Keyboard shortcuts\n\n```\n")
	for _, row := range rows {
		b.WriteString(strings.TrimRight(row, " "))
		b.WriteByte('\n')
	}
	b.WriteString("```\n")
	return b.String()
}

// Resolve returns the body for topicID at level. An empty topicID selects the
// level's overview. Unknown levels and topics resolve to a placeholder that
// contains topicID.
func (r *Registry) Resolve(level Level, topicID string) string {
	lc, ok := r.levels[level]
	if !ok {
		events.Content.Fallback(level.String(), topicID)
		return placeholder(topicID)
	}
	if topicID == "" {
		if lc.overview == "" {
			events.Content.Fallback(level.String(), topicID)
			return placeholder(level.String())
		}
		return lc.overview
	}
	if body, ok := lc.topics[topicID]; ok {
		return body
	}
	events.Content.Fallback(level.String(), topicID)
	msg := placeholder(topicID)
	if similar := r.suggest(lc, topicID); len(similar) > 0 {
		msg += "\n\nDid you mean: " + strings.Join(similar, ", ") + "?"
	}
	return msg
}

// Has reports whether an authored body exists for topicID at level.
func (r *Registry) Has(level Level, topicID string) bool {
	lc, ok := r.levels[level]
	if !ok {
		return false
	}
	_, ok = lc.topics[topicID]
	return ok
}

// Topics returns the sorted topic ids authored for level.
func (r *Registry) Topics(level Level) []string {
	lc, ok := r.levels[level]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(lc.topics))
	for id := range lc.topics {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Welcome returns the main menu body.
func (r *Registry) Welcome() string {
	if r.welcome == "" {
		return placeholder("welcome")
	}
	return r.welcome
}

// Help returns the help overlay body, including the keybinding table when
// one was supplied.
func (r *Registry) Help() string {
	if r.help == "" {
		return placeholder("help")
	}
	return r.help
}

// Require checks that every listed topic has a body, returning an error
// wrapping ErrMissingTopic for the first one that does not.
func (r *Registry) Require(level Level, topicIDs ...string) error {
	for _, id := range topicIDs {
		if !r.Has(level, id) {
			return fmt.Errorf("%w: %s/%s", ErrMissingTopic, level, id)
		}
	}
	return nil
}

func (r *Registry) suggest(lc *levelContent, topicID string) []string {
	ids := make([]string, 0, len(lc.topics))
	for id := range lc.topics {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	ranks := fuzzy.RankFindNormalizedFold(topicID, ids)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})
	out := make([]string, 0, maxSuggested)
	for _, rank := range ranks {
		if len(out) == maxSuggested {
			break
		}
		out = append(out, rank.Target)
	}
	return out
}

func placeholder(topicID string) string {
	if topicID == "" {
		return "Content coming soon!"
	}
	return fmt.Sprintf("Content for %s coming soon!", topicID)
}
