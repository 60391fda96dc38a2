// Package cmd provides CLI commands for the digest tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/convoscribe/digest-cli/config"
	"github.com/convoscribe/digest-cli/pkg/logging"
	"github.com/convoscribe/digest-cli/pkg/pipeline"
	"github.com/convoscribe/digest-cli/pkg/transcript"
)

// Global flags, registered as persistent flags on the root command.
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	outputFormat string
)

// Root command flags.
var (
	digestASRPath  string
	digestDiarPath string
)

// DigestCommandDeps holds the dependencies for the root digest command.
type DigestCommandDeps struct {
	Config     *config.Config
	LoadConfig func(path string) (*config.Config, error)
	Stdout     io.Writer
}

// DefaultDigestDeps returns the default dependencies for production use.
func DefaultDigestDeps() *DigestCommandDeps {
	return &DigestCommandDeps{
		LoadConfig: config.LoadConfig,
		Stdout:     os.Stdout,
	}
}

// NewDigestCommand creates the root command. Invoked without a subcommand it
// runs the full pipeline: transcript + diarization in, speaker-attributed
// conversation and extractive summary out.
func NewDigestCommand(deps *DigestCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultDigestDeps()
	}

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Turn a transcript and diarization into a conversation digest",
		Long: `digest combines a speech-recognition transcript with a diarization result
into a speaker-attributed conversation plus an extractive summary
(key sentences and keywords).

Inputs are JSON files: the transcript in whisper-style form
({"language": ..., "segments": [{start, end, text}, ...]} or a bare segment
array) and the diarization as speaker intervals
([{start, end, speaker}, ...]).

Flags:
  --asr               Transcript JSON file (required)
  --diarization       Diarization JSON file (required)
  -o, --output        Output format: text, json, yaml

Examples:
  digest --asr transcript.json --diarization speakers.json
  digest --asr transcript.json --diarization speakers.json -o json
  digest conversation --asr transcript.json --diarization speakers.json
  digest summarize --text notes.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd.Context(), deps)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); DIGEST_* env vars override it")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json, yaml")

	cmd.Flags().StringVar(&digestASRPath, "asr", "", "Transcript JSON file")
	cmd.Flags().StringVar(&digestDiarPath, "diarization", "", "Diarization JSON file")
	_ = cmd.MarkFlagRequired("asr")
	_ = cmd.MarkFlagRequired("diarization")

	return cmd
}

// runDigest executes the full pipeline.
func runDigest(ctx context.Context, deps *DigestCommandDeps) error {
	cfg, err := resolveConfig(deps.LoadConfig)
	if err != nil {
		return err
	}
	deps.Config = cfg

	doc, err := loadASRFile(digestASRPath)
	if err != nil {
		return err
	}
	diar, err := loadDiarizationFile(digestDiarPath)
	if err != nil {
		return err
	}

	p := pipeline.New(cfg, newLogger(cfg), pipeline.DefaultMetrics()).
		WithTracer(pipeline.NewTracer())
	result, err := p.Run(ctx, doc.Segments, diar)
	if err != nil {
		return err
	}

	return outputResult(deps.Stdout, cfg.OutputFormat, result)
}

// resolveConfig loads configuration and applies global flag overrides.
func resolveConfig(load func(path string) (*config.Config, error)) (*config.Config, error) {
	cfg, err := load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogJSON = logFormat == "json"
	}
	if outputFormat != "" {
		cfg.OutputFormat = config.OutputFormat(outputFormat)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the CLI logger from the resolved configuration.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.Config{
		Level:       logging.Level(cfg.LogLevel),
		ServiceName: "digest",
		JSONFormat:  cfg.LogJSON,
	})
}

// loadASRFile reads and parses a transcript JSON file.
func loadASRFile(path string) (*transcript.ASRDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript file: %w", err)
	}
	defer f.Close()

	doc, err := transcript.LoadASR(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// loadDiarizationFile reads and parses a diarization JSON file.
func loadDiarizationFile(path string) ([]transcript.SpeakerSegment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening diarization file: %w", err)
	}
	defer f.Close()

	diar, err := transcript.LoadDiarization(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return diar, nil
}

// outputResult writes the full pipeline result in the selected format.
func outputResult(w io.Writer, format config.OutputFormat, result *pipeline.Result) error {
	switch format {
	case config.OutputFormatJSON:
		return outputJSON(w, result)
	case config.OutputFormatYAML:
		return outputYAML(w, result)
	default:
		return outputResultText(w, result)
	}
}

// outputResultText renders the digest as readable text: the conversation,
// then key points, then keywords.
func outputResultText(w io.Writer, result *pipeline.Result) error {
	if _, err := fmt.Fprint(w, transcript.RenderText(result.Conversation)); err != nil {
		return err
	}

	if len(result.Summary.KeyPoints) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Key points:")
		for _, kp := range result.Summary.KeyPoints {
			fmt.Fprintf(w, "  - %s\n", kp)
		}
	}

	if len(result.Summary.Keywords) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Keywords: %s\n", joinComma(result.Summary.Keywords))
	}

	for _, adv := range result.Advisories {
		fmt.Fprintf(w, "\nnote: %s\n", adv)
	}

	return nil
}
