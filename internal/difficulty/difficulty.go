package difficulty

import (
	"fmt"
	"strings"
)

// Level is a difficulty tier shared by missions and round settings.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

func (l Level) String() string {
	switch l {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Next cycles Easy → Medium → Hard → Easy.
func (l Level) Next() Level {
	return (l + 1) % 3
}

// Parse accepts the lower-case names returned by String, ignoring case and
// surrounding whitespace.
func Parse(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}
