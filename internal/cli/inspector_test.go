package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/wirepoint/internal/utils"
	"github.com/toyz/wirepoint/pkg/wirepoint"
)

const sampleDescriptors = `
# wiring for the order subsystem
field dataSource javax.sql.DataSource @javax.inject.Named("db1") @javax.inject.Inject
field port int @org.springframework.beans.factory.annotation.Value("8080")
field cache com.app.Cache @org.springframework.beans.factory.annotation.Autowired(required=false)
field em javax.persistence.EntityManager @javax.persistence.PersistenceContext(unitName="orders")
ctor  repo com.app.OrderRepo
field plain com.app.Helper
`

func newTestInspector(caps *wirepoint.Capabilities) *Inspector {
	diag := utils.NewQuietDiagnostics()
	return NewInspector(caps, diag)
}

func TestInspect_ClassifiesEveryLine(t *testing.T) {
	inspector := newTestInspector(nil)

	report, err := inspector.Inspect("sample", strings.NewReader(sampleDescriptors))
	require.NoError(t, err)
	require.Len(t, report.Targets, 6)

	byName := make(map[string]TargetReport)
	for _, target := range report.Targets {
		byName[target.Name] = target
	}

	dataSource := byName["dataSource"]
	assert.Equal(t, wirepoint.Required, dataSource.Kind)
	assert.True(t, dataSource.HasQualifier)
	assert.Equal(t, "db1", dataSource.Qualifier)
	assert.Equal(t, wirepoint.DependencyKey("javax.sql.DataSource:db1"), dataSource.Key)

	port := byName["port"]
	assert.Equal(t, wirepoint.WithValue, port.Kind)
	assert.Equal(t, 8080, port.Value)

	assert.Equal(t, wirepoint.Optional, byName["cache"].Kind)
	assert.Equal(t, wirepoint.Required, byName["em"].Kind)
	assert.Equal(t, wirepoint.NotAnnotated, byName["repo"].Kind)
	assert.Equal(t, wirepoint.NotAnnotated, byName["plain"].Kind)

	assert.Equal(t, 2, report.CountByKind(wirepoint.Required))
	assert.Equal(t, 1, report.CountByKind(wirepoint.Optional))
	assert.Equal(t, 1, report.CountByKind(wirepoint.WithValue))
	assert.Equal(t, 2, report.CountByKind(wirepoint.NotAnnotated))
}

func TestInspect_RestrictedEnvironment(t *testing.T) {
	// Persistence markers off the classpath: the same descriptor
	// classifies differently.
	caps := wirepoint.NewCapabilities(func(typeName string) bool {
		return !strings.HasPrefix(typeName, "javax.persistence.")
	})
	inspector := newTestInspector(caps)

	report, err := inspector.Inspect("sample", strings.NewReader(
		`field em javax.persistence.EntityManager @javax.persistence.PersistenceContext(unitName="orders")`))
	require.NoError(t, err)
	require.Len(t, report.Targets, 1)
	assert.Equal(t, wirepoint.NotAnnotated, report.Targets[0].Kind)
}

func TestInspect_Errors(t *testing.T) {
	inspector := newTestInspector(nil)

	tests := []struct {
		name  string
		input string
	}{
		{name: "too few fields", input: "field dataSource"},
		{name: "unknown target kind", input: "method foo com.app.Bar"},
		{name: "bad type expression", input: "field x java.util.List<"},
		{name: "bad annotation", input: "field x int @@@"},
		{name: "unconvertible value", input: `field x int @com.app.Value("nope")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := inspector.Inspect("bad", strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "bad:1")
		})
	}
}

func TestInspectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiring.txt")
	require.NoError(t, os.WriteFile(path, []byte("field port int @com.app.Value(\"42\")\n"), 0o644))

	inspector := newTestInspector(nil)
	report, err := inspector.InspectFile(path)
	require.NoError(t, err)
	require.Len(t, report.Targets, 1)
	assert.Equal(t, 42, report.Targets[0].Value)

	_, err = inspector.InspectFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
