// Package annotations parses textual annotation descriptors into the
// descriptor records consumed by the classification engine.
//
// The engine itself only reads structured descriptors; this parser is
// the host-integration convenience that turns source-level text such as
//
//	@javax.inject.Inject
//	@org.springframework.beans.factory.annotation.Autowired(required=false)
//	@org.springframework.beans.factory.annotation.Value("8080")
//
// into wirepoint.Annotation values, preserving declaration order.
package annotations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/wirepoint/pkg/wirepoint"
)

// Parser parses annotation descriptor text using participle
type Parser struct {
	parser *participle.Parser[annotationList]
}

// annotationList is the root: one or more annotation descriptors
type annotationList struct {
	Annotations []*annotationExpr `parser:"@@*"`
}

// annotationExpr is a single @Name(...) descriptor
type annotationExpr struct {
	Name string     `parser:"'@' @Name"`
	Args []*argExpr `parser:"('(' (@@ (',' @@)*)? ')')?"`
}

// argExpr is one attribute: named (key=value) or positional (value only)
type argExpr struct {
	Key   *string    `parser:"(@Name '=')?"`
	Value *valueExpr `parser:"@@"`
}

// valueExpr is an attribute value literal
type valueExpr struct {
	Str    *string  `parser:"@String"`
	Number *float64 `parser:"| @Number"`
	Name   *string  `parser:"| @Name"`
}

// NewParser creates a new annotation descriptor parser
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},
		{Name: "Name", Pattern: `[a-zA-Z_][a-zA-Z0-9_.$]*`},
		{Name: "Punct", Pattern: `[@(),=]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[annotationList](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{parser: parser}
}

// Parse parses one or more annotation descriptors, returning them in
// declaration order.
func (p *Parser) Parse(input string) ([]wirepoint.Annotation, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	list, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse annotation descriptor: %w", err)
	}

	annotations := make([]wirepoint.Annotation, 0, len(list.Annotations))
	for _, expr := range list.Annotations {
		annotation, err := buildAnnotation(expr)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, annotation)
	}

	return annotations, nil
}

// ParseOne parses exactly one annotation descriptor
func (p *Parser) ParseOne(input string) (wirepoint.Annotation, error) {
	annotations, err := p.Parse(input)
	if err != nil {
		return wirepoint.Annotation{}, err
	}
	if len(annotations) != 1 {
		return wirepoint.Annotation{}, fmt.Errorf("expected exactly one annotation descriptor, got %d", len(annotations))
	}
	return annotations[0], nil
}

// buildAnnotation converts a parsed expression into a descriptor record
func buildAnnotation(expr *annotationExpr) (wirepoint.Annotation, error) {
	annotation := wirepoint.Annotation{Type: expr.Name}
	if len(expr.Args) == 0 {
		return annotation, nil
	}

	annotation.Attributes = make(map[string]any, len(expr.Args))
	for _, arg := range expr.Args {
		key := "value" // positional attribute, shorthand for value=
		if arg.Key != nil {
			key = *arg.Key
		} else if len(expr.Args) > 1 {
			return wirepoint.Annotation{}, fmt.Errorf(
				"annotation @%s: a positional attribute must be the only argument", expr.Name)
		}
		annotation.Attributes[key] = convertValue(arg.Value)
	}

	return annotation, nil
}

// convertValue maps a literal to its Go representation: quoted strings
// are unquoted, integral numbers become int, booleans become bool, and
// bare names (enum constants, class references) stay strings.
func convertValue(value *valueExpr) any {
	switch {
	case value.Str != nil:
		return unquote(*value.Str)
	case value.Number != nil:
		n := *value.Number
		if n == float64(int(n)) {
			return int(n)
		}
		return n
	case value.Name != nil:
		switch *value.Name {
		case "true":
			return true
		case "false":
			return false
		default:
			return *value.Name
		}
	default:
		return nil
	}
}

// unquote strips the surrounding quotes and resolves escapes
func unquote(s string) string {
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
