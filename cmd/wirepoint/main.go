package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/toyz/wirepoint/internal/cli"
	"github.com/toyz/wirepoint/internal/utils"
	"github.com/toyz/wirepoint/pkg/wirepoint"
)

func main() {
	var (
		withoutFlag = flag.String("without", "", "Comma-separated conventions to treat as unavailable (inject, ejb, persistence-unit, persistence-context, servlet, conversation)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <descriptor-files...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Wirepoint Injection-Point Inspector\n")
		fmt.Fprintf(os.Stderr, "Classifies the injection targets in descriptor files and reports dependency keys and resolved values.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDescriptor format (one target per line):\n")
		fmt.Fprintf(os.Stderr, "  field dataSource javax.sql.DataSource @javax.inject.Named(\"db1\") @javax.inject.Inject\n")
		fmt.Fprintf(os.Stderr, "  field port int @org.springframework.beans.factory.annotation.Value(\"8080\")\n")
		fmt.Fprintf(os.Stderr, "  ctor  repo com.app.OrderRepo @org.springframework.beans.factory.annotation.Autowired(required=false)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s wiring.txt                       # Classify with every convention available\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --without ejb,servlet wiring.txt # Simulate a restricted environment\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose wiring.txt             # Show dependency keys for every target\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one descriptor file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	caps, err := buildCapabilities(*withoutFlag)
	if err != nil {
		diagnostics.Error("Invalid --without value: %v", err)
		os.Exit(1)
	}

	inspector := cli.NewInspector(caps, diagnostics)

	for _, path := range args {
		report, err := inspector.InspectFile(path)
		if err != nil {
			diagnostics.Error("Inspection failed: %v", err)
			os.Exit(1)
		}
		inspector.Render(report)
	}

	diagnostics.Success("All targets classified")
}

// buildCapabilities builds the capability table, treating the listed
// conventions as absent from the environment.
func buildCapabilities(without string) (*wirepoint.Capabilities, error) {
	if without == "" {
		return wirepoint.DefaultCapabilities(), nil
	}

	unavailable := make(map[wirepoint.Convention]bool)
	for _, name := range strings.Split(without, ",") {
		convention, err := wirepoint.ParseConvention(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		unavailable[convention] = true
	}

	markerUnavailable := make(map[string]bool, len(unavailable))
	for convention := range unavailable {
		markerUnavailable[convention.MarkerTypeName()] = true
	}

	return wirepoint.NewCapabilities(func(typeName string) bool {
		return !markerUnavailable[typeName]
	}), nil
}
