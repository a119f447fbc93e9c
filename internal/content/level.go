package content

import "strings"

// Level is a content difficulty tier.
type Level uint8

const (
	LevelUnknown Level = iota
	Basic
	Intermediate
	Advanced
)

var levelNames = [...]string{
	LevelUnknown: "unknown",
	Basic:        "basic",
	Intermediate: "intermediate",
	Advanced:     "advanced",
}

// Levels lists the valid levels in menu order.
func Levels() []Level {
	return []Level{Basic, Intermediate, Advanced}
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return levelNames[LevelUnknown]
}

// Valid reports whether l is one of Basic, Intermediate or Advanced.
func (l Level) Valid() bool {
	return l >= Basic && l <= Advanced
}

// ParseLevel maps a level name to its Level, ignoring case and surrounding
// whitespace.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic":
		return Basic, true
	case "intermediate":
		return Intermediate, true
	case "advanced":
		return Advanced, true
	}
	return LevelUnknown, false
}
