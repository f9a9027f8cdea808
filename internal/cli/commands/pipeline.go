package commands

import (
	"context"
	"fmt"

	"github.com/jSchiffart/whatsapp-analytics/pkg/config"
	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
)

// loadConfig loads the config file at path, or the built-in defaults when
// no path was given. Either way the result is validated and its header
// pattern compiled.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("validating default config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveSources expands export file arguments, falling back to the
// config's chat_sources when no arguments were given.
func resolveSources(cfg *config.Config, args []string) ([]string, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.ChatSources
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no export files given (pass a file argument or set chat_sources in the config)")
	}

	files, err := parser.ExpandGlobs(patterns)
	if err != nil {
		return nil, fmt.Errorf("expanding chat sources: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no export files matched patterns: %v", patterns)
	}
	return files, nil
}

// newReassembler builds the reassembly pipeline from a validated config.
func newReassembler(cfg *config.Config) (*parser.Reassembler, error) {
	matcher, err := parser.NewHeaderMatcher(cfg.HeaderFormat.CompiledPattern())
	if err != nil {
		return nil, fmt.Errorf("building header matcher: %w", err)
	}

	timestamps := parser.NewTimestampParser(cfg.HeaderFormat.Layouts...)

	return parser.NewReassembler(matcher, timestamps,
		parser.WithInvalidPolicy(parser.InvalidPolicy(cfg.InvalidTimestamp))), nil
}

// reassembleFiles reads every export file and folds each into messages,
// concatenated in file order. Stats accumulate across files.
func reassembleFiles(cfg *config.Config, files []string) ([]parser.Message, parser.Stats, error) {
	re, err := newReassembler(cfg)
	if err != nil {
		return nil, parser.Stats{}, err
	}

	var (
		msgs  []parser.Message
		total parser.Stats
	)
	for _, file := range files {
		lines, err := parser.ReadLines(file)
		if err != nil {
			return nil, parser.Stats{}, err
		}

		fileMsgs, stats := re.Reassemble(lines)
		msgs = append(msgs, fileMsgs...)

		total.LinesRead += stats.LinesRead
		total.HeadersMatched += stats.HeadersMatched
		total.FragmentsMerged += stats.FragmentsMerged
		total.FragmentsDropped += stats.FragmentsDropped
		total.InvalidTimestamps += stats.InvalidTimestamps
	}

	return msgs, total, nil
}
