package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jSchiffart/whatsapp-analytics/pkg/config"
	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a whatsapp-analytics configuration file without running
a report.

Checks:
  - YAML syntax
  - Header pattern validity and capture-group count
  - Timestamp layouts presence
  - Invalid-timestamp policy
  - Chat source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Chat sources:      %d pattern(s)\n", len(cfg.ChatSources))
	fmt.Printf("  Header pattern:    %s\n", cfg.HeaderFormat.Pattern)
	fmt.Printf("  Timestamp layouts: %v\n", cfg.HeaderFormat.Layouts)
	fmt.Printf("  Invalid policy:    %s\n", cfg.InvalidTimestamp)

	// Check if chat sources exist (warnings only)
	files, err := parser.ExpandGlobs(cfg.ChatSources)
	if err != nil {
		fmt.Printf("\nWarning: Error expanding chat source patterns: %v\n", err)
	} else if len(files) == 0 {
		fmt.Printf("\nWarning: No files match chat source patterns\n")
	} else {
		fmt.Printf("\nExport files matched: %d\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
	}

	return nil
}
