// Package binding holds the EN 16931 business-term binding table: for every
// business term the CII source path, the UBL target path and whether the
// term must be present.
package binding

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/en16931/cii2ubl/diag"
	"gopkg.in/yaml.v3"
)

//go:embed terms.yaml
var embeddedTable []byte

// Presence of a business term in the source document
type Presence string

const (
	Mandatory   Presence = "mandatory"
	Recommended Presence = "recommended"
	Optional    Presence = "optional"
)

// Binding is one row of the table
type Binding struct {
	Term     string   `json:"term"`
	Presence Presence `json:"presence"`
	Name     string   `json:"name,omitempty"`
	Source   string   `json:"source"`
	Target   string   `json:"target"`
}

// Severity returns the severity of a diagnostic for a missing value of this
// term. The boolean is false for optional terms, which are skipped silently.
func (b Binding) Severity() (diag.Severity, bool) {
	switch b.Presence {
	case Mandatory:
		return diag.Error, true
	case Recommended:
		return diag.Warning, true
	default:
		return diag.Info, false
	}
}

// Label returns the term followed by its name, e.g. "BT-1 (Invoice number)"
func (b Binding) Label() string {
	if b.Name == "" {
		return b.Term
	}
	return b.Term + " (" + b.Name + ")"
}

// Table is the parsed binding table, ordered as in its source document
type Table struct {
	Version  string
	bindings []Binding
	index    map[string]int
}

type tableDocument struct {
	EN16931 string   `yaml:"en16931"`
	Rules   []string `yaml:"rules"`
}

// Parse reads a YAML table document
func Parse(data []byte) (*Table, error) {
	var doc tableDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse binding table: %w", err)
	}

	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("binding table has no rules")
	}

	p, err := NewRuleParser()
	if err != nil {
		return nil, err
	}

	t := &Table{
		Version:  doc.EN16931,
		bindings: make([]Binding, 0, len(doc.Rules)),
		index:    make(map[string]int, len(doc.Rules)),
	}

	for i, rule := range doc.Rules {
		b, err := p.Parse(rule)
		if err != nil {
			return nil, fmt.Errorf("binding rule %d: %w", i, err)
		}
		if _, exists := t.index[b.Term]; exists {
			return nil, fmt.Errorf("duplicate business term in binding table: %s", b.Term)
		}
		t.index[b.Term] = len(t.bindings)
		t.bindings = append(t.bindings, b)
	}

	return t, nil
}

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Parse(embeddedTable)
})

// Default returns the table embedded in the binary. It is parsed once.
func Default() (*Table, error) {
	return loadDefault()
}

// Lookup returns the binding of a business term
func (t *Table) Lookup(term string) (Binding, bool) {
	i, ok := t.index[term]
	if !ok {
		return Binding{}, false
	}
	return t.bindings[i], true
}

// Terms returns all bindings in document order
func (t *Table) Terms() []Binding {
	out := make([]Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// Len returns the number of bindings
func (t *Table) Len() int {
	return len(t.bindings)
}
