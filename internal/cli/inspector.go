// Package cli implements the wirepoint inspector: it reads injection
// target descriptor files, classifies each target, and renders a
// wiring report.
//
// Descriptor files carry one target per line:
//
//	# comment
//	field dataSource javax.sql.DataSource @javax.annotation.Resource
//	field port int @org.springframework.beans.factory.annotation.Value("8080")
//	ctor  repo com.app.OrderRepo @org.springframework.beans.factory.annotation.Autowired(required=false)
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toyz/wirepoint/internal/annotations"
	"github.com/toyz/wirepoint/internal/utils"
	"github.com/toyz/wirepoint/pkg/wirepoint"
)

// TargetReport is the classification outcome for one descriptor line
type TargetReport struct {
	Name         string
	TypeName     string
	Kind         wirepoint.ClassificationKind
	Qualifier    string
	HasQualifier bool
	Key          wirepoint.DependencyKey
	Value        any // Converted value, only for with-value targets
}

// Report aggregates the outcomes for one descriptor file
type Report struct {
	Source  string
	Targets []TargetReport
}

// CountByKind returns how many targets classified as kind
func (r *Report) CountByKind(kind wirepoint.ClassificationKind) int {
	count := 0
	for _, target := range r.Targets {
		if target.Kind == kind {
			count++
		}
	}
	return count
}

// Inspector drives the classification engine over descriptor files
type Inspector struct {
	classifier *wirepoint.Classifier
	resolver   *wirepoint.Resolver
	parser     *annotations.Parser
	diag       *utils.DiagnosticSystem
}

// NewInspector creates an inspector over the given capability table.
// A nil table means the process-wide default.
func NewInspector(caps *wirepoint.Capabilities, diag *utils.DiagnosticSystem) *Inspector {
	return &Inspector{
		classifier: wirepoint.NewClassifier(caps),
		resolver:   wirepoint.NewResolver(caps),
		parser:     annotations.NewParser(),
		diag:       diag,
	}
}

// InspectFile reads and classifies every target in the descriptor file
func (i *Inspector) InspectFile(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapReadError(path, err)
	}
	defer file.Close()

	return i.Inspect(path, file)
}

// Inspect reads and classifies every target from r
func (i *Inspector) Inspect(source string, r io.Reader) (*Report, error) {
	report := &Report{Source: source}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		target, err := i.inspectLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, lineNo, err)
		}
		report.Targets = append(report.Targets, target)
	}
	if err := scanner.Err(); err != nil {
		return nil, utils.WrapReadError(source, err)
	}

	return report, nil
}

// inspectLine classifies a single descriptor line
func (i *Inspector) inspectLine(line string) (TargetReport, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return TargetReport{}, fmt.Errorf("expected '<field|ctor> <name> <type> [annotations]', got %q", line)
	}

	var constructor bool
	switch fields[0] {
	case "field":
		constructor = false
	case "ctor":
		constructor = true
	default:
		return TargetReport{}, fmt.Errorf("unknown target kind %q (want field or ctor)", fields[0])
	}

	name := fields[1]
	declaredType, err := ParseTypeRef(fields[2])
	if err != nil {
		return TargetReport{}, utils.WrapParseError("declared type", err)
	}

	var annos []wirepoint.Annotation
	if rest := strings.Join(fields[3:], " "); rest != "" {
		annos, err = i.parser.Parse(rest)
		if err != nil {
			return TargetReport{}, err
		}
	}

	target := wirepoint.InjectionTarget{
		Type:        declaredType,
		Annotations: annos,
		Constructor: constructor,
	}
	return i.inspectTarget(name, target)
}

// inspectTarget runs the full classification pipeline for one target
func (i *Inspector) inspectTarget(name string, target wirepoint.InjectionTarget) (TargetReport, error) {
	report := TargetReport{
		Name:     name,
		TypeName: target.Type.Name,
		Kind:     i.classifier.Classify(target),
	}

	report.Qualifier, report.HasQualifier = wirepoint.QualifierOf(target.Annotations)
	report.Key = wirepoint.Key(target.Type, report.Qualifier)

	if report.Kind == wirepoint.WithValue {
		value, err := i.resolver.ValueFromAnnotation(target)
		if err != nil {
			return TargetReport{}, utils.WrapResolveError("value for "+name, err)
		}
		report.Value = value
	}

	return report, nil
}

// Render writes the report through the diagnostic system
func (i *Inspector) Render(report *Report) {
	i.diag.Section(report.Source)

	for _, target := range report.Targets {
		switch target.Kind {
		case wirepoint.WithValue:
			i.diag.List("%s %s: %s = %v", target.Name, target.TypeName, target.Kind, target.Value)
		case wirepoint.NotAnnotated:
			i.diag.List("%s %s: %s", target.Name, target.TypeName, target.Kind)
		default:
			if target.HasQualifier {
				i.diag.List("%s %s: %s (key %s)", target.Name, target.TypeName, target.Kind, target.Key)
			} else {
				i.diag.List("%s %s: %s", target.Name, target.TypeName, target.Kind)
			}
		}
		i.diag.Verbose("  key: %s", target.Key)
	}

	i.diag.Summary("Classification complete", map[string]any{
		"Targets":       len(report.Targets),
		"Required":      report.CountByKind(wirepoint.Required),
		"Optional":      report.CountByKind(wirepoint.Optional),
		"With value":    report.CountByKind(wirepoint.WithValue),
		"Not annotated": report.CountByKind(wirepoint.NotAnnotated),
	})
}
