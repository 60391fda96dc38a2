package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/convoscribe/digest-cli/config"
	"github.com/convoscribe/digest-cli/pkg/transcript"
)

// Conversation command flags.
var (
	conversationASRPath  string
	conversationVTTPath  string
	conversationDiarPath string
)

// ConversationCommandDeps holds the dependencies for the conversation command.
type ConversationCommandDeps struct {
	Config     *config.Config
	LoadConfig func(path string) (*config.Config, error)
	Stdout     io.Writer
}

// DefaultConversationDeps returns the default dependencies for production use.
func DefaultConversationDeps() *ConversationCommandDeps {
	return &ConversationCommandDeps{
		LoadConfig: config.LoadConfig,
		Stdout:     os.Stdout,
	}
}

// conversationResult is the output envelope for the conversation command.
type conversationResult struct {
	Language     string            `json:"language,omitempty" yaml:"language,omitempty"`
	Conversation []transcript.Turn `json:"conversation" yaml:"conversation"`
	SpeakerMap   map[string]string `json:"speaker_map,omitempty" yaml:"speaker_map,omitempty"`
}

// NewConversationCommand creates the 'conversation' subcommand: alignment and
// turn merging without summarization.
func NewConversationCommand(deps *ConversationCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultConversationDeps()
	}

	cmd := &cobra.Command{
		Use:   "conversation",
		Short: "Attribute transcript segments to speakers and merge turns",
		Long: `Attribute transcript segments to diarized speakers and merge consecutive
segments of one speaker into conversation turns.

The transcript comes from a whisper-style JSON file (--asr) or a WebVTT
subtitle file (--vtt); the diarization is always a JSON file of speaker
intervals. Speakers are relabeled Speaker A, Speaker B, ... in order of
first appearance; segments no diarized interval covers become Unknown.

Flags:
  --asr               Transcript JSON file
  --vtt               Transcript WebVTT file (alternative to --asr)
  --diarization       Diarization JSON file (required)
  -o, --output        Output format: text, json, yaml

Examples:
  digest conversation --asr transcript.json --diarization speakers.json
  digest conversation --vtt captions.vtt --diarization speakers.json
  digest conversation --asr transcript.json --diarization speakers.json -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversation(deps)
		},
	}

	cmd.Flags().StringVar(&conversationASRPath, "asr", "", "Transcript JSON file")
	cmd.Flags().StringVar(&conversationVTTPath, "vtt", "", "Transcript WebVTT file")
	cmd.Flags().StringVar(&conversationDiarPath, "diarization", "", "Diarization JSON file")
	_ = cmd.MarkFlagRequired("diarization")
	cmd.MarkFlagsOneRequired("asr", "vtt")
	cmd.MarkFlagsMutuallyExclusive("asr", "vtt")

	return cmd
}

// runConversation executes the conversation command.
func runConversation(deps *ConversationCommandDeps) error {
	cfg, err := resolveConfig(deps.LoadConfig)
	if err != nil {
		return err
	}
	deps.Config = cfg

	var segments []transcript.Segment
	var language string
	if conversationVTTPath != "" {
		segments, err = loadVTTFile(conversationVTTPath)
	} else {
		var doc *transcript.ASRDocument
		doc, err = loadASRFile(conversationASRPath)
		if doc != nil {
			segments = doc.Segments
			language = doc.Language
		}
	}
	if err != nil {
		return err
	}

	diar, err := loadDiarizationFile(conversationDiarPath)
	if err != nil {
		return err
	}

	if err := transcript.Validate(segments, diar); err != nil {
		return fmt.Errorf("validating input: %w", err)
	}

	labeled := transcript.Align(segments, diar)
	turns := transcript.Merge(labeled, cfg.MaxGapSeconds)
	speakerMap := transcript.LabelSpeakers(turns)

	result := &conversationResult{
		Language:     language,
		Conversation: turns,
		SpeakerMap:   speakerMap,
	}

	switch cfg.OutputFormat {
	case config.OutputFormatJSON:
		return outputJSON(deps.Stdout, result)
	case config.OutputFormatYAML:
		return outputYAML(deps.Stdout, result)
	default:
		_, err := fmt.Fprint(deps.Stdout, transcript.RenderText(turns))
		return err
	}
}

// loadVTTFile reads and parses a WebVTT subtitle file.
func loadVTTFile(path string) ([]transcript.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening vtt file: %w", err)
	}
	defer f.Close()

	segments, err := transcript.ParseVTT(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return segments, nil
}
