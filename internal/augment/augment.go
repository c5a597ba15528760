// Package augment produces fresh assessment questions from an LLM provider
// and validates them into the question-bank shape. It fails closed: any
// provider, transport, or parse failure yields an error the caller downgrades
// to "proceed with the static pool".
package augment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/aptiq/internal/llm"
	"github.com/abhisek/aptiq/internal/questionbank"
)

// ErrDisabled indicates no provider is configured. This is the normal
// degraded mode when no API key is present, not a failure.
var ErrDisabled = errors.New("question generation disabled: no provider configured")

// bucketWindow is the coarse cache window. Requests for the same category
// within one window reuse the previous batch instead of re-invoking the
// provider; content still refreshes every window for variety.
const bucketWindow = 30 * time.Minute

// Config holds generation knobs, populated from APTIQ_-prefixed env vars
// by ConfigFromEnv.
type Config struct {
	// Timeout bounds one generation call, including retries.
	Timeout time.Duration `env:"GEN_TIMEOUT" envDefault:"45s"`

	// MaxTokens is the response budget passed to the provider.
	MaxTokens int `env:"GEN_MAX_TOKENS" envDefault:"4000"`

	// Temperature for generation. High by default: variety matters more
	// than determinism here.
	Temperature float64 `env:"GEN_TEMPERATURE" envDefault:"0.9"`
}

type cacheKey struct {
	category string
	bucket   int64
}

// Augmenter requests generated questions and validates them. Safe for use
// from a single session controller; the cache is additionally locked so
// concurrent TUI commands cannot race it.
type Augmenter struct {
	provider llm.Provider
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time

	mu    sync.Mutex
	cache map[cacheKey][]questionbank.Question
}

// New creates an Augmenter. provider may be nil, in which case every
// Augment call returns ErrDisabled.
func New(provider llm.Provider, cfg Config, log zerolog.Logger) *Augmenter {
	return &Augmenter{
		provider: provider,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		cache:    map[cacheKey][]questionbank.Question{},
	}
}

// Enabled reports whether a provider is configured.
func (a *Augmenter) Enabled() bool {
	return a != nil && a.provider != nil
}

// Augment returns up to count freshly generated questions for category.
// Categories without a generation profile return an empty batch and no
// error. Results are cached per (category, 30-minute window).
func (a *Augmenter) Augment(ctx context.Context, category string, count int) ([]questionbank.Question, error) {
	if a == nil || a.provider == nil {
		return nil, ErrDisabled
	}

	prof, ok := profileFor(category)
	if !ok {
		return nil, nil
	}

	bucket := a.now().Unix() / int64(bucketWindow.Seconds())
	key := cacheKey{category: category, bucket: bucket}

	a.mu.Lock()
	if batch, hit := a.cache[key]; hit {
		a.mu.Unlock()
		out := make([]questionbank.Question, len(batch))
		copy(out, batch)
		return out, nil
	}
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserPrompt(prof, count, styleForBucket(bucket))},
		},
		Schema:      batchEnvelope,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate %s batch: %w", category, err)
	}

	items, err := parseItems(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parse %s batch: %w", category, err)
	}

	questions := buildQuestions(category, items, a.now(), a.log)
	if len(questions) > count {
		questions = questions[:count]
	}

	a.log.Info().
		Str("category", category).
		Int("accepted", len(questions)).
		Int("parsed", len(items)).
		Msg("generated question batch")

	a.mu.Lock()
	a.cache[key] = questions
	a.mu.Unlock()

	out := make([]questionbank.Question, len(questions))
	copy(out, questions)
	return out, nil
}
