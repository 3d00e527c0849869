package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/partflow/atp/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing CSV catalogs (omit for the built-in demo catalog)",
		)
		requestFile = flag.String("request", "", "Path to availability request JSON file")
		format      = flag.String("format", "text", "Output format: text, json")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		ScenarioDir: *scenarioDir,
		RequestFile: *requestFile,
		Format:      *format,
		Verbose:     *verbose,
		Help:        *help,
	}

	cmd := commands.NewCheckCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
