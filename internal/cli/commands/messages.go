package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jSchiffart/whatsapp-analytics/pkg/stats"
)

// MessagesOptions holds command-line options for the messages command.
type MessagesOptions struct {
	Config string
	Output string
	Author string
	Date   string
}

// NewMessagesCommand creates the messages command.
func NewMessagesCommand() *cobra.Command {
	opts := &MessagesOptions{}

	cmd := &cobra.Command{
		Use:   "messages [export-file...]",
		Short: "List reconstructed messages",
		Long: `Reconstruct messages from chat export files and print them, one per
line, optionally filtered by author substring and/or calendar date.

Multi-line messages appear as a single entry with their continuation
lines merged.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMessages(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Configuration file (optional)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Only messages whose author contains this string")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Only messages on this calendar date (YYYY-MM-DD)")

	return cmd
}

func runMessages(cmd *cobra.Command, args []string, opts *MessagesOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	files, err := resolveSources(cfg, args)
	if err != nil {
		return err
	}

	msgs, _, err := reassembleFiles(cfg, files)
	if err != nil {
		return err
	}

	if opts.Author != "" {
		msgs = stats.ByAuthor(opts.Author, msgs)
	}
	if opts.Date != "" {
		date, err := time.Parse(dateLayout, opts.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", opts.Date, err)
		}
		msgs = stats.OnDate(date, msgs)
	}

	switch opts.Output {
	case "text":
		for _, m := range msgs {
			ts := m.Timestamp.Format("2006-01-02 15:04")
			if m.Invalid {
				ts = "invalid timestamp"
			}
			fmt.Fprintf(os.Stdout, "[%s] %s: %s\n", ts, m.Author, m.Body)
		}
		return nil
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(msgs)
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}
