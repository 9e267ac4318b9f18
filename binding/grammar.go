package binding

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// RuleGrammar represents a single binding row:
//
//	BT-1 mandatory "Invoice number" ExchangedDocument/ID -> cbc:ID
type RuleGrammar struct {
	Term     string `parser:"@Term"`
	Presence string `parser:"@('mandatory' | 'recommended' | 'optional')"`
	Name     string `parser:"@String?"`
	Source   string `parser:"@Path"`
	Target   string `parser:"'->' @Path"`
}

// RuleParser parses binding rows into Bindings
type RuleParser struct {
	parser *participle.Parser[RuleGrammar]
}

// NewRuleParser creates a new rule parser
func NewRuleParser() (*RuleParser, error) {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Term", Pattern: `B[TG]-[0-9]+`},
		{Name: "Arrow", Pattern: `->`},
		{Name: "Path", Pattern: `[A-Za-z@][A-Za-z0-9_:@/\.\[\]=]*`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	p, err := participle.Build[RuleGrammar](
		participle.Lexer(lex),
		participle.Unquote("String"),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build binding rule parser: %w", err)
	}

	return &RuleParser{parser: p}, nil
}

// Parse parses one binding row
func (p *RuleParser) Parse(input string) (Binding, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Binding{}, fmt.Errorf("empty binding rule")
	}

	rule, err := p.parser.ParseString("", input)
	if err != nil {
		return Binding{}, fmt.Errorf("failed to parse binding rule %q: %w", input, err)
	}

	return Binding{
		Term:     rule.Term,
		Presence: Presence(rule.Presence),
		Name:     rule.Name,
		Source:   rule.Source,
		Target:   rule.Target,
	}, nil
}
