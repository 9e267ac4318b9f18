// Package diag collects the diagnostics produced while mapping a document.
package diag

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// Severity of a diagnostic entry
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String converts the Severity to its string representation
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalJSON renders the severity by name
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Level returns the zerolog level a diagnostic of this severity is logged at
func (s Severity) Level() zerolog.Level {
	switch s {
	case Error:
		return zerolog.ErrorLevel
	case Warning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// Entry is a single diagnostic. Field locates the offending source element
// and Term names the business term, both may be empty.
type Entry struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Field    string   `json:"field,omitempty"`
	Term     string   `json:"term,omitempty"`
}

func (e Entry) String() string {
	s := e.Severity.String() + ": " + e.Message
	if e.Term != "" {
		s += " [" + e.Term + "]"
	}
	if e.Field != "" {
		s += " (" + e.Field + ")"
	}
	return s
}

// Collector is an append-only list of diagnostics in insertion order.
// A Collector belongs to one conversion and must not be shared.
type Collector struct {
	entries []Entry
}

// NewCollector returns an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends an entry
func (c *Collector) Add(severity Severity, message, field string) {
	c.entries = append(c.entries, Entry{Severity: severity, Message: message, Field: field})
}

// AddEntry appends a prepared entry
func (c *Collector) AddEntry(e Entry) {
	c.entries = append(c.entries, e)
}

// Errorf appends an error entry
func (c *Collector) Errorf(field, format string, args ...any) {
	c.Add(Error, fmt.Sprintf(format, args...), field)
}

// Warnf appends a warning entry
func (c *Collector) Warnf(field, format string, args ...any) {
	c.Add(Warning, fmt.Sprintf(format, args...), field)
}

// Infof appends an informational entry
func (c *Collector) Infof(field, format string, args ...any) {
	c.Add(Info, fmt.Sprintf(format, args...), field)
}

// HasErrors reports whether any error-severity entry was added
func (c *Collector) HasErrors() bool {
	for _, e := range c.entries {
		if e.Severity == Error {
			return true
		}
	}
	return false
}

// Len returns the number of entries
func (c *Collector) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in insertion order
func (c *Collector) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Count returns the number of entries with the given severity
func (c *Collector) Count(severity Severity) int {
	n := 0
	for _, e := range c.entries {
		if e.Severity == severity {
			n++
		}
	}
	return n
}

// Log writes every entry to the logger at the level matching its severity
func (c *Collector) Log(logger zerolog.Logger) {
	for _, e := range c.entries {
		ev := logger.WithLevel(e.Severity.Level())
		if e.Field != "" {
			ev = ev.Str("field", e.Field)
		}
		if e.Term != "" {
			ev = ev.Str("term", e.Term)
		}
		ev.Msg(e.Message)
	}
}
