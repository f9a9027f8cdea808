// Package cli provides the command-line interface for whatsapp-analytics.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jSchiffart/whatsapp-analytics/internal/cli/commands"
	"github.com/jSchiffart/whatsapp-analytics/internal/cli/plugins"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	// Check if the first argument might be a plugin command
	if len(os.Args) > 1 {
		potentialCommand := os.Args[1]
		// Skip flags (start with -)
		if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
			// Check if it's a known built-in command
			if !isBuiltinCommand(rootCmd, potentialCommand) {
				// Try to find and execute a plugin
				if pluginPath, err := plugins.FindPlugin(potentialCommand); err == nil {
					// Plugin found - execute it with remaining args
					return plugins.Execute(pluginPath, os.Args[2:])
				}
				// Plugin not found - will fall through to Cobra which will show error
			}
		}
	}

	if err := rootCmd.Execute(); err != nil {
		// Check if this was an unknown command that could be a plugin
		if len(os.Args) > 1 {
			potentialCommand := os.Args[1]
			if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
				if !isBuiltinCommand(rootCmd, potentialCommand) {
					// Show helpful plugin error message
					_, _ = fmt.Fprintln(os.Stderr, plugins.FormatNotFoundError(potentialCommand))
					return 2
				}
			}
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// isBuiltinCommand checks if a command name is a built-in cobra command.
func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	// Also check for special commands like help and completion
	return name == "help" || name == "completion"
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "whatsapp-analytics",
		Short: "Compute statistics over a WhatsApp chat export",
		Long: `whatsapp-analytics reconstructs discrete messages from a plain-text
WhatsApp chat export and computes descriptive statistics over them.

It reports:
  - Participant activity (who wrote how many messages)
  - Temporal span (first message, last message, elapsed days)
  - Word frequency (verbatim whitespace tokens)
  - Symbol and emoji frequency (Unicode pictograph ranges)

Multi-line messages are merged back together: a line that does not match
the export's header shape continues the previous message.

PLUGINS:
  whatsapp-analytics supports plugins for extended functionality. Plugins
  are standalone binaries named whatsapp-analytics-<command> that are
  automatically discovered and invoked.

  Plugin locations (searched in order):
    1. Same directory as the whatsapp-analytics binary
    2. ~/.whatsapp-analytics/plugins/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewReportCommand())
	rootCmd.AddCommand(commands.NewMessagesCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
