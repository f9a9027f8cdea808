package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
)

// maxParseErrorSamples bounds how many timestamp failures inspect prints.
const maxParseErrorSamples = 5

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Config string
	Sample int
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <export-file>",
		Short: "Check how well an export matches the configured header shape",
		Long: `Sample the beginning of a chat export and report how many lines match
the configured message header pattern, how many are continuation
fragments, and whether any matched timestamps fail to parse.

Use this to verify the header pattern and timestamp layouts before
running a full report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Configuration file (optional)")
	cmd.Flags().IntVar(&opts.Sample, "sample", 100, "Number of lines to sample from the start of the file")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	matcher, err := parser.NewHeaderMatcher(cfg.HeaderFormat.CompiledPattern())
	if err != nil {
		return fmt.Errorf("building header matcher: %w", err)
	}
	timestamps := parser.NewTimestampParser(cfg.HeaderFormat.Layouts...)

	lines, err := parser.ReadLines(args[0])
	if err != nil {
		return err
	}
	if opts.Sample > 0 && len(lines) > opts.Sample {
		lines = lines[:opts.Sample]
	}

	var (
		sampled      int
		empty        int
		headers      int
		fragments    int
		sampleHeader string
		parseErrors  []string
	)

	for i, raw := range lines {
		sampled++
		line := parser.NormalizeLine(raw)
		if line == "" {
			empty++
			continue
		}

		cl := matcher.Classify(line)
		if cl.Kind == parser.KindFragment {
			fragments++
			continue
		}

		headers++
		if sampleHeader == "" {
			sampleHeader = line
		}
		if _, err := timestamps.Parse(cl.RawTimestamp); err != nil {
			if len(parseErrors) < maxParseErrorSamples {
				parseErrors = append(parseErrors, fmt.Sprintf("line %d: %v", i+1, err))
			}
		}
	}

	w := os.Stdout
	fmt.Fprintf(w, "Inspected %s (first %d line(s))\n\n", args[0], sampled)
	fmt.Fprintf(w, "  Empty lines:        %d\n", empty)
	fmt.Fprintf(w, "  Header lines:       %d\n", headers)
	fmt.Fprintf(w, "  Fragment lines:     %d\n", fragments)

	classified := headers + fragments
	if classified > 0 {
		fmt.Fprintf(w, "  Header match rate:  %.0f%%\n", 100*float64(headers)/float64(classified))
	}
	if sampleHeader != "" {
		fmt.Fprintf(w, "\nSample header: %s\n", sampleHeader)
	}

	if headers == 0 {
		fmt.Fprintf(w, "\nWarning: no line matched the header pattern. Check header_format.pattern in the config.\n")
		return nil
	}

	if len(parseErrors) > 0 {
		fmt.Fprintf(w, "\nTimestamp parse failures:\n")
		for _, e := range parseErrors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
		fmt.Fprintf(w, "Check header_format.layouts in the config.\n")
	}

	return nil
}
