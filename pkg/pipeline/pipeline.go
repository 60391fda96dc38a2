// Package pipeline orchestrates the digest computation: validation, temporal
// alignment, turn merging, speaker labeling, and extractive summarization.
// One Pipeline may serve many invocations concurrently; each Run is a pure,
// synchronous batch computation holding no state between calls.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/convoscribe/digest-cli/config"
	"github.com/convoscribe/digest-cli/pkg/logging"
	"github.com/convoscribe/digest-cli/pkg/textrank"
	"github.com/convoscribe/digest-cli/pkg/textseg"
	"github.com/convoscribe/digest-cli/pkg/transcript"
)

// Summary holds the extractive summary artifacts: representative sentences
// in document order and keywords in descending importance.
type Summary struct {
	KeyPoints []string `json:"key_points"`
	Keywords  []string `json:"keywords"`
}

// Result is the complete output of one invocation. Advisories carry
// non-fatal conditions (ranking non-convergence); they never indicate a
// partial result.
type Result struct {
	RunID        string            `json:"run_id"`
	Language     string            `json:"language,omitempty"`
	Conversation []transcript.Turn `json:"conversation"`
	SpeakerMap   map[string]string `json:"speaker_map,omitempty"`
	Summary      Summary           `json:"summary"`
	Advisories   []string          `json:"advisories,omitempty"`
}

// Pipeline runs the digest computation with fixed configuration.
type Pipeline struct {
	cfg     *config.Config
	log     logging.Logger
	metrics *Metrics
	tracer  *Tracer
	stop    textseg.StopwordSet
}

// New creates a Pipeline. A nil logger disables logging; a nil metrics set
// disables instrumentation. The configuration must already be validated.
func New(cfg *config.Config, log logging.Logger, metrics *Metrics) *Pipeline {
	if log == nil {
		log = logging.NewNop()
	}
	stop := textseg.DefaultStopwords()
	stop.Add(cfg.ExtraStopwords...)

	return &Pipeline{
		cfg:     cfg,
		log:     log,
		metrics: metrics,
		stop:    stop,
	}
}

// WithTracer enables span emission on the pipeline.
func (p *Pipeline) WithTracer(t *Tracer) *Pipeline {
	p.tracer = t
	return p
}

// Run executes one invocation over a transcript and its diarization.
// Validation failures abort before any computation; once validation passes
// the invocation always produces a complete Result.
func (p *Pipeline) Run(ctx context.Context, asr []transcript.Segment, diar []transcript.SpeakerSegment) (*Result, error) {
	runID := uuid.New().String()
	log := p.log.With(logging.F("run_id", runID))

	if p.tracer != nil {
		var span trace.Span
		ctx, span = p.tracer.StartRunSpan(ctx, runID, len(asr), len(diar))
		defer span.End()
	}

	if err := p.stage(ctx, SpanStageValidate, "validate", func() error {
		return transcript.Validate(asr, diar)
	}); err != nil {
		p.count("invalid")
		log.Error("input rejected", logging.Err(err))
		return nil, fmt.Errorf("validating input: %w", err)
	}
	if p.metrics != nil {
		p.metrics.SegmentsIn.Observe(float64(len(asr)))
	}

	var labeled []transcript.LabeledSegment
	p.stage(ctx, SpanStageAlign, "align", func() error {
		labeled = transcript.Align(asr, diar)
		return nil
	})

	var turns []transcript.Turn
	var speakerMap map[string]string
	p.stage(ctx, SpanStageMerge, "merge", func() error {
		turns = transcript.Merge(labeled, p.cfg.MaxGapSeconds)
		speakerMap = transcript.LabelSpeakers(turns)
		return nil
	})
	if p.metrics != nil {
		p.metrics.TurnsOut.Observe(float64(len(turns)))
	}
	log.Debug("conversation assembled",
		logging.F("segments", len(asr)),
		logging.F("turns", len(turns)),
		logging.F("speakers", len(speakerMap)),
	)

	language := documentLanguage(asr)
	tokenizer := textseg.ForLanguage(language)

	var sentences []textrank.Sentence
	p.stage(ctx, SpanStageSegment, "segment", func() error {
		sentences = p.buildSentences(turns, tokenizer)
		return nil
	})

	result := &Result{
		RunID:        runID,
		Language:     language,
		Conversation: turns,
		SpeakerMap:   speakerMap,
	}
	result.Summary, result.Advisories = p.rank(ctx, sentences, log)

	p.count("ok")
	log.Info("digest complete",
		logging.F("turns", len(turns)),
		logging.F("key_points", len(result.Summary.KeyPoints)),
		logging.F("keywords", len(result.Summary.Keywords)),
	)

	return result, nil
}

// SummaryResult is the output of a text-only summarization.
type SummaryResult struct {
	RunID      string   `json:"run_id"`
	Language   string   `json:"language,omitempty"`
	Summary    Summary  `json:"summary"`
	Advisories []string `json:"advisories,omitempty"`
}

// Summarize produces an extractive summary for free-form text, without
// diarization. Empty text yields an empty summary, not an error.
func (p *Pipeline) Summarize(ctx context.Context, text, language string) (*SummaryResult, error) {
	runID := uuid.New().String()
	log := p.log.With(logging.F("run_id", runID))

	tokenizer := textseg.ForLanguage(language)

	var sentences []textrank.Sentence
	p.stage(ctx, SpanStageSegment, "segment", func() error {
		sentences = p.tokenizeSentences(textseg.SplitSentences(text), tokenizer)
		return nil
	})

	result := &SummaryResult{RunID: runID, Language: language}
	result.Summary, result.Advisories = p.rank(ctx, sentences, log)

	p.count("ok")
	log.Info("summary complete",
		logging.F("sentences", len(sentences)),
		logging.F("key_points", len(result.Summary.KeyPoints)),
		logging.F("keywords", len(result.Summary.Keywords)),
	)

	return result, nil
}

// rank runs sentence and keyword ranking over the tokenized sentences.
func (p *Pipeline) rank(ctx context.Context, sentences []textrank.Sentence, log logging.Logger) (Summary, []string) {
	var summary Summary
	var advisories []string

	p.stage(ctx, SpanStageSentRank, "sentence_rank", func() error {
		graph := textrank.BuildSimilarityGraph(sentences)
		scores, info := textrank.Rank(graph, p.cfg.Damping, p.cfg.MaxIterations, p.cfg.ConvergenceEpsilon)
		p.observeRank("sentence", info, log)
		if !info.Converged {
			advisories = append(advisories,
				fmt.Sprintf("sentence ranking stopped at %d iterations before convergence", info.Iterations))
		}

		summary.KeyPoints = make([]string, 0, p.cfg.SummarySentences)
		for _, s := range textrank.SelectSentences(sentences, scores, p.cfg.SummarySentences) {
			summary.KeyPoints = append(summary.KeyPoints, s.Text)
		}
		return nil
	})

	p.stage(ctx, SpanStageKeywords, "keyword_rank", func() error {
		var stream []string
		for _, s := range sentences {
			stream = append(stream, s.Tokens...)
		}
		keywords, info := textrank.ExtractKeywords(stream,
			p.cfg.KeywordWindow, p.cfg.SummaryKeywords,
			p.cfg.Damping, p.cfg.MaxIterations, p.cfg.ConvergenceEpsilon)
		p.observeRank("keyword", info, log)
		if !info.Converged {
			advisories = append(advisories,
				fmt.Sprintf("keyword ranking stopped at %d iterations before convergence", info.Iterations))
		}

		summary.Keywords = make([]string, 0, len(keywords))
		for _, kw := range keywords {
			summary.Keywords = append(summary.Keywords, kw.Token)
		}
		return nil
	})

	return summary, advisories
}

// buildSentences splits the full conversation text into sentences and
// tokenizes each with the selected strategy. Sentences cut across turn
// boundaries on purpose: summarization works on the document, not on
// speakers.
func (p *Pipeline) buildSentences(turns []transcript.Turn, tokenizer textseg.Tokenizer) []textrank.Sentence {
	var full []byte
	for i, t := range turns {
		if i > 0 {
			full = append(full, ' ')
		}
		full = append(full, t.Text...)
	}

	return p.tokenizeSentences(textseg.SplitSentences(string(full)), tokenizer)
}

// tokenizeSentences turns split sentences into ranking inputs, keeping only
// content tokens.
func (p *Pipeline) tokenizeSentences(raw []string, tokenizer textseg.Tokenizer) []textrank.Sentence {
	sentences := make([]textrank.Sentence, 0, len(raw))
	for i, text := range raw {
		tokens := textseg.ContentTokens(tokenizer.Tokenize(text), p.stop)
		sentences = append(sentences, textrank.Sentence{Index: i, Text: text, Tokens: tokens})
	}
	return sentences
}

// stage runs one pipeline stage under a span and a latency observation.
func (p *Pipeline) stage(ctx context.Context, spanName, stageName string, fn func() error) error {
	if p.tracer != nil {
		_, span := p.tracer.StartStageSpan(ctx, spanName)
		defer span.End()
	}
	start := time.Now()
	err := fn()
	if p.metrics != nil {
		p.metrics.StageSeconds.WithLabelValues(stageName).Observe(time.Since(start).Seconds())
	}
	return err
}

// observeRank records iteration metrics for one ranking run.
func (p *Pipeline) observeRank(graph string, info textrank.RankInfo, log logging.Logger) {
	if p.metrics != nil {
		p.metrics.RankIterations.WithLabelValues(graph).Observe(float64(info.Iterations))
		if !info.Converged {
			p.metrics.NonConvergenceTotal.WithLabelValues(graph).Inc()
		}
	}
	if !info.Converged {
		log.Warn("ranking did not converge",
			logging.F("graph", graph),
			logging.F("iterations", info.Iterations),
		)
	}
}

// count records an invocation outcome.
func (p *Pipeline) count(status string) {
	if p.metrics != nil {
		p.metrics.InvocationsTotal.WithLabelValues(status).Inc()
	}
}

// documentLanguage returns the first language code the recognizer reported.
func documentLanguage(asr []transcript.Segment) string {
	for _, s := range asr {
		if s.Language != "" {
			return s.Language
		}
	}
	return ""
}
