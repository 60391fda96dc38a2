package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/convoscribe/digest-cli/config"
	"github.com/convoscribe/digest-cli/pkg/pipeline"
)

// Summarize command flags.
var (
	summarizeTextPath  string
	summarizeASRPath   string
	summarizeLanguage  string
	summarizeSentences int
	summarizeKeywords  int
)

// SummarizeCommandDeps holds the dependencies for the summarize command.
type SummarizeCommandDeps struct {
	Config     *config.Config
	LoadConfig func(path string) (*config.Config, error)
	Stdout     io.Writer
}

// DefaultSummarizeDeps returns the default dependencies for production use.
func DefaultSummarizeDeps() *SummarizeCommandDeps {
	return &SummarizeCommandDeps{
		LoadConfig: config.LoadConfig,
		Stdout:     os.Stdout,
	}
}

// NewSummarizeCommand creates the 'summarize' subcommand: extractive summary
// over raw text or a transcript, without diarization.
func NewSummarizeCommand(deps *SummarizeCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultSummarizeDeps()
	}

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Produce key sentences and keywords from text or a transcript",
		Long: `Produce an extractive summary: the most representative sentences in
document order plus the highest-ranked keywords.

The input is a plain text file (--text) or a whisper-style transcript JSON
file (--asr); with --asr the segment texts are concatenated in order. Empty
input yields an empty summary.

Flags:
  --text              Plain text file
  --asr               Transcript JSON file (alternative to --text)
  --lang              Language code for --text input (e.g. en, zh)
  --sentences         Number of key sentences (overrides config)
  --keywords          Number of keywords (overrides config)
  -o, --output        Output format: text, json, yaml

Examples:
  digest summarize --text notes.txt
  digest summarize --text minutes.txt --lang zh --sentences 3
  digest summarize --asr transcript.json -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd.Context(), deps)
		},
	}

	cmd.Flags().StringVar(&summarizeTextPath, "text", "", "Plain text file")
	cmd.Flags().StringVar(&summarizeASRPath, "asr", "", "Transcript JSON file")
	cmd.Flags().StringVar(&summarizeLanguage, "lang", "", "Language code for --text input")
	cmd.Flags().IntVar(&summarizeSentences, "sentences", 0, "Number of key sentences")
	cmd.Flags().IntVar(&summarizeKeywords, "keywords", 0, "Number of keywords")
	cmd.MarkFlagsOneRequired("text", "asr")
	cmd.MarkFlagsMutuallyExclusive("text", "asr")

	return cmd
}

// runSummarize executes the summarize command.
func runSummarize(ctx context.Context, deps *SummarizeCommandDeps) error {
	cfg, err := resolveConfig(deps.LoadConfig)
	if err != nil {
		return err
	}
	if summarizeSentences > 0 {
		cfg.SummarySentences = summarizeSentences
	}
	if summarizeKeywords > 0 {
		cfg.SummaryKeywords = summarizeKeywords
	}
	deps.Config = cfg

	text, language, err := summarizeInput()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg, newLogger(cfg), pipeline.DefaultMetrics())
	result, err := p.Summarize(ctx, text, language)
	if err != nil {
		return err
	}

	switch cfg.OutputFormat {
	case config.OutputFormatJSON:
		return outputJSON(deps.Stdout, result)
	case config.OutputFormatYAML:
		return outputYAML(deps.Stdout, result)
	default:
		return outputSummaryText(deps.Stdout, result)
	}
}

// summarizeInput reads the selected input and returns the document text and
// its language code.
func summarizeInput() (string, string, error) {
	if summarizeTextPath != "" {
		data, err := os.ReadFile(summarizeTextPath)
		if err != nil {
			return "", "", fmt.Errorf("reading text file: %w", err)
		}
		return string(data), summarizeLanguage, nil
	}

	doc, err := loadASRFile(summarizeASRPath)
	if err != nil {
		return "", "", err
	}
	text := ""
	for i, s := range doc.Segments {
		if i > 0 {
			text += " "
		}
		text += s.Text
	}
	return text, doc.Language, nil
}

// outputSummaryText renders the summary as readable text.
func outputSummaryText(w io.Writer, result *pipeline.SummaryResult) error {
	if len(result.Summary.KeyPoints) == 0 && len(result.Summary.Keywords) == 0 {
		_, err := fmt.Fprintln(w, "Nothing to summarize.")
		return err
	}

	if len(result.Summary.KeyPoints) > 0 {
		fmt.Fprintln(w, "Key points:")
		for _, kp := range result.Summary.KeyPoints {
			fmt.Fprintf(w, "  - %s\n", kp)
		}
	}
	if len(result.Summary.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords: %s\n", joinComma(result.Summary.Keywords))
	}
	for _, adv := range result.Advisories {
		fmt.Fprintf(w, "\nnote: %s\n", adv)
	}
	return nil
}
