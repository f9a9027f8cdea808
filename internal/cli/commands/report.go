package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jSchiffart/whatsapp-analytics/pkg/config"
	"github.com/jSchiffart/whatsapp-analytics/pkg/output"
	"github.com/jSchiffart/whatsapp-analytics/pkg/stats"
	"github.com/jSchiffart/whatsapp-analytics/pkg/webhook"
)

// dateLayout is the calendar-date format accepted by --date flags.
const dateLayout = "2006-01-02"

// ReportOptions holds command-line options for the report command.
type ReportOptions struct {
	Config  string
	Output  string
	Author  string
	Date    string
	Verbose bool
	Quiet   bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report [export-file...]",
		Short: "Compute a statistics report over chat exports",
		Long: `Reconstruct messages from one or more chat export files and report
participant activity, conversation span, and word/symbol frequency.

With no file arguments, the chat_sources from the configuration file
are used.

Exit codes:
  0 - Report produced
  2 - Configuration or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Configuration file (optional)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Only count messages whose author contains this string")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Only count messages on this calendar date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include reassembly counters in the report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "always", "When to fire webhook (always|never)")

	return cmd
}

func runReport(cmd *cobra.Command, args []string, opts *ReportOptions) error {
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

	msgs, reStats, err := reassembleFiles(cfg, files)
	if err != nil {
		return err
	}

	// Apply filters before aggregation
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

	report := output.NewReport(msgs, reStats, files, output.Options{
		TopWords:   cfg.Report.TopWords,
		TopSymbols: cfg.Report.TopSymbols,
	})

	formatter, err := createFormatter(opts.Output, opts.Verbose, opts.Quiet)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhooks (errors logged but don't fail the report)
	sendWebhooks(ctx, cfg, opts, report)

	return nil
}

func createFormatter(format string, verbose, quiet bool) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: verbose,
		Quiet:   quiet,
	}

	switch format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the report.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *ReportOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if wh.Trigger == config.WebhookTriggerNever {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *ReportOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)

	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerAlways
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}
