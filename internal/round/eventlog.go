package round

import (
	"fmt"
	"strings"
)

// Event is one recorded round event.
type Event struct {
	Second   int    // seconds elapsed in the round when the event happened
	Round    string // short round id
	Category string // round, tick, target
	Key      string // start, stop, resolve, countdown, eliminate, reject
	Value    string
	NumVal   float64
}

// String formats the event as a fixed-width log line.
//
//	[S=042] 1a2b3c4d target   eliminate  cell 37 (2/3)
func (e Event) String() string {
	return fmt.Sprintf("[S=%03d] %-8s %-8s %-10s %s",
		e.Second, e.Round, e.Category, e.Key, e.Value)
}

// EventLog collects round events. It is unbounded and machine-readable;
// per-second countdown entries are only kept in verbose mode.
type EventLog struct {
	entries []Event
	verbose bool
}

func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (l *EventLog) Add(second int, round, category, key, value string, numVal float64) {
	l.entries = append(l.entries, Event{
		Second:   second,
		Round:    round,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (l *EventLog) AddVerbose(second int, round, category, key, value string, numVal float64) {
	if !l.verbose {
		return
	}
	l.Add(second, round, category, key, value, numVal)
}

func (l *EventLog) Entries() []Event {
	return l.entries
}

// Filter returns entries matching category and/or key; "" matches anything.
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (l *EventLog) CountCategory(category, key string) int {
	return len(l.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key.
func (l *EventLog) LastOf(category, key string) (Event, bool) {
	entries := l.Filter(category, key)
	if len(entries) == 0 {
		return Event{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether an entry matches category, key and value substring.
func (l *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range l.Filter(category, key) {
		if valueSubstr == "" || strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Format returns the full log, one event per line, for t.Log output.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
