// Package cli wires the decoder core to a command-line surface that mirrors
// the legacy importer's process contract: one JSON envelope per input file,
// carrying either the decoded records or the structured parse error.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"labparse/internal/config"
	"labparse/internal/core"
	"labparse/internal/core/formats"
	"labparse/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute(cfg *config.Config) {
	rootCmd := &cobra.Command{
		Use:          "labparse",
		Short:        "Decode laboratory instrument exports into typed records",
		Long:         "labparse decodes dissolution and particle-size instrument exports\n(CSV and Mastersizer multi-section dumps) into structured JSON records.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(parseCmd(cfg))
	rootCmd.AddCommand(detectCmd(cfg))
	rootCmd.AddCommand(formatsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse instrument exports and print one result envelope per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			pretty, _ := cmd.Flags().GetBool("pretty")
			return runParse(cfg, args, format, pretty || cfg.Output.Pretty)
		},
	}

	cmd.Flags().String("format", "auto", "format key (auto, "+joinKeys()+")")
	cmd.Flags().Bool("pretty", false, "indent the JSON envelope")

	return cmd
}

func detectCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>",
		Short: "Guess which extractor a file belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(args[0])
			if err != nil {
				return err
			}

			guess := core.DetectFormat(prefixOf(content, cfg.Classifier.PrefixLen), filepath.Base(args[0]))
			if def, ok := formats.ForGuess(guess); ok {
				fmt.Printf("%s\t%s\n", def.Key, def.Label)
			} else {
				fmt.Println(guess)
			}
			return nil
		},
	}
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the registered file formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, def := range formats.All() {
				fmt.Printf("%s\t%s\n", def.Key, def.Label)
			}
			return nil
		},
	}
}

// envelope is the process-level result contract: one JSON object per run,
// success and error mutually exclusive, stamped with a run identifier so
// log lines and envelopes can be correlated.
type envelope struct {
	RunID  string `json:"runId"`
	Format string `json:"format"`
	formats.Outcome
}

// runParse decodes every named file and prints one envelope line per file,
// in argument order. Files are decoded concurrently up to the configured
// batch limit; a parse failure never aborts the run, the envelope is the
// contract either way.
func runParse(cfg *config.Config, paths []string, format string, pretty bool) error {
	envs := make([]envelope, len(paths))

	lim := newParseLimiter(cfg.Batch.MaxConcurrent)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := lim.acquire(ctx); err != nil {
				envs[i] = envelope{
					RunID:  uuid.NewString(),
					Format: format,
					Outcome: formats.Outcome{
						Error: core.AsParseError(err),
					},
				}
				return
			}
			defer lim.release()
			envs[i] = parseOne(cfg, path, format)
		}()
	}
	wg.Wait()

	for _, env := range envs {
		data, err := encodeEnvelope(env, pretty)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}
	return nil
}

// parseOne decodes a single file into its envelope. Read failures are folded
// into the envelope like parse failures so batch runs report per file.
func parseOne(cfg *config.Config, path, format string) envelope {
	runID := uuid.NewString()
	log := logging.WithFields("run_id", runID, "file", filepath.Base(path))

	content, err := readContent(path)
	if err != nil {
		log.Error("read failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return envelope{
			RunID:   runID,
			Format:  format,
			Outcome: formats.Outcome{Error: core.AsParseError(err)},
		}
	}

	var out formats.Outcome
	var key string

	switch format {
	case "auto":
		guess := core.DetectFormat(prefixOf(content, cfg.Classifier.PrefixLen), filepath.Base(path))
		key = guess.String()
		if guess == core.FormatDissolution {
			def, _ := formats.ForGuess(guess)
			out = def.Parse(content)
		} else {
			// Ambiguous particle files: try both extractors, keep the
			// most informative failure.
			records, perr := core.ParseParticleAuto(content, filepath.Base(path))
			if perr != nil {
				out = formats.Outcome{Error: core.AsParseError(perr)}
			} else {
				out = formats.Outcome{Success: true, Data: records}
			}
		}
	default:
		def, ok := formats.Get(format)
		if !ok {
			err := fmt.Errorf("unknown format %q (known formats: %s)", format, joinKeys())
			log.Error("parse rejected", "error", err)
			fmt.Fprintln(os.Stderr, err)
			return envelope{
				RunID:   runID,
				Format:  format,
				Outcome: formats.Outcome{Error: core.AsParseError(err)},
			}
		}
		key = def.Key
		out = def.Parse(content)
	}

	if out.Success {
		log.Info("parse completed", "format", key)
	} else {
		log.Error("parse failed",
			"format", key,
			"code", core.MapError(out.Error).Code,
			"error", out.Error.Message,
		)
		fmt.Fprintln(os.Stderr, core.FormatUserError(out.Error))
	}

	return envelope{RunID: runID, Format: key, Outcome: out}
}

func encodeEnvelope(env envelope, pretty bool) ([]byte, error) {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(env, "", "  ")
	} else {
		data, err = json.Marshal(env)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding envelope: %w", err)
	}
	return data, nil
}

// readContent acquires the file and hands the decoder a text buffer. File
// I/O stays here; the core never touches the filesystem.
func readContent(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return core.DecodeBuffer(raw), nil
}

func prefixOf(content string, n int) string {
	if len(content) > n {
		return content[:n]
	}
	return content
}

func joinKeys() string {
	return strings.Join(formats.Keys(), ", ")
}
