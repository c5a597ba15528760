package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/aptiq/internal/adaptive"
	"github.com/abhisek/aptiq/internal/augment"
	"github.com/abhisek/aptiq/internal/questionbank"
	"github.com/abhisek/aptiq/internal/store"
)

const (
	quickCount        = 5
	quickLimitSeconds = 300

	standardMaxCount = 20

	blendedCount        = 60
	blendedLimitSeconds = (blendedCount - 5) * 60

	// generatedPerSession is how many fresh items the augmenter is asked for.
	generatedPerSession = 5
)

// ErrStartCanceled reports that the session was abandoned while Start was
// still waiting on question generation. The late result is discarded.
var ErrStartCanceled = errors.New("session start canceled")

// Controller owns one assessment attempt at a time plus the persistent
// weight/history document. It is safe for concurrent use: the TUI runs
// Start off its event loop because generation can block, so every public
// method takes the lock.
type Controller struct {
	bank  *questionbank.Bank
	aug   *augment.Augmenter
	store *store.Store
	clock Clock
	rng   *rand.Rand
	log   zerolog.Logger

	mu sync.Mutex

	// doc mirrors the persisted document between saves.
	doc store.Document

	phase  Phase
	sess   *TestSession
	result *store.HistoryRecord

	// startToken invalidates a Start that is still waiting on generation.
	// Abandon bumps it; a stale Start sees the mismatch and aborts instead
	// of flipping a dismissed screen back to active.
	startToken int

	lastCategory string
	lastMode     Mode
}

// New creates a Controller and loads the persisted document. Load failures
// degrade to an empty document; a missing file is the normal first run.
func New(bank *questionbank.Bank, aug *augment.Augmenter, st *store.Store, clock Clock, rng *rand.Rand, log zerolog.Logger) *Controller {
	doc, err := st.Load()
	if err != nil {
		log.Debug().Err(err).Msg("starting from empty progress document")
	}
	return &Controller{
		bank:  bank,
		aug:   aug,
		store: st,
		clock: clock,
		rng:   rng,
		log:   log,
		doc:   doc,
		phase: PhaseIdle,
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Session returns the live session, or nil outside the active phase.
func (c *Controller) Session() *TestSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

// History returns all completed attempts, oldest first.
func (c *Controller) History() []store.HistoryRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]store.HistoryRecord, len(c.doc.History))
	copy(out, c.doc.History)
	return out
}

// CategoryBests returns the best score recorded per category.
func (c *Controller) CategoryBests() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	bests := map[string]int{}
	for _, r := range c.doc.History {
		if r.Score > bests[r.Category] {
			bests[r.Category] = r.Score
		}
	}
	return bests
}

// Configure moves an idle or reviewing controller to the configuring phase.
func (c *Controller) Configure() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configure()
}

func (c *Controller) configure() {
	c.phase = PhaseConfiguring
	c.sess = nil
	c.result = nil
}

// Start assembles the pool, samples the question set, and begins the timed
// active phase. It may block up to the generation timeout when the augmenter
// is enabled and the cache is cold; generation failure of any kind degrades
// to the static pool. Abandon during the wait cancels the start, which then
// returns ErrStartCanceled instead of activating a dismissed session.
func (c *Controller) Start(ctx context.Context, category string, mode Mode) error {
	c.mu.Lock()
	if c.phase == PhaseActive {
		c.mu.Unlock()
		return fmt.Errorf("session already active")
	}
	c.startToken++
	token := c.startToken
	c.mu.Unlock()

	// Generation can block up to its timeout; keep the lock released so
	// Abandon stays responsive while we wait.
	pool := c.bank.Pool(category)
	if gen := c.generated(ctx, category); len(gen) > 0 {
		pool = append(pool, gen...)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.startToken {
		return ErrStartCanceled
	}
	if c.phase == PhaseActive {
		return fmt.Errorf("session already active")
	}

	count := targetCount(category, mode, len(pool))

	// A short pool is not fatal: widen to the rest of the bank.
	if len(pool) < count && category != questionbank.CategoryBlended {
		pool = append(pool, c.bank.Others(category)...)
	}

	questions := adaptive.Sample(c.rng, pool, count, c.doc.Weights)
	if len(questions) == 0 {
		return fmt.Errorf("no questions available for category %q", category)
	}

	c.sess = &TestSession{
		ID:               uuid.NewString(),
		Category:         category,
		Mode:             mode,
		Questions:        questions,
		TimeLimitSeconds: timeLimitSeconds(category, mode, len(questions)),
		StartedAt:        c.clock.Now(),
		Answers:          map[int]int{},
		Flagged:          map[int]bool{},
	}
	c.result = nil
	c.lastCategory = category
	c.lastMode = mode
	c.phase = PhaseActive

	c.log.Info().
		Str("session", c.sess.ID).
		Str("category", category).
		Int("questions", len(questions)).
		Int("time_limit_s", c.sess.TimeLimitSeconds).
		Msg("session started")
	return nil
}

// generated fetches augmenter output, downgrading every failure to an empty
// batch. A disabled augmenter is the quiet normal case.
func (c *Controller) generated(ctx context.Context, category string) []questionbank.Question {
	if c.aug == nil {
		return nil
	}
	gen, err := c.aug.Augment(ctx, category, generatedPerSession)
	if err != nil {
		if errors.Is(err, augment.ErrDisabled) {
			c.log.Debug().Msg("question generation disabled")
		} else {
			c.log.Warn().Err(err).Str("category", category).Msg("question generation failed, using static pool")
		}
		return nil
	}
	return gen
}

func targetCount(category string, mode Mode, poolSize int) int {
	switch {
	case mode == ModeQuick:
		return quickCount
	case category == questionbank.CategoryBlended:
		return blendedCount
	default:
		return min(standardMaxCount, poolSize)
	}
}

func timeLimitSeconds(category string, mode Mode, count int) int {
	switch {
	case mode == ModeQuick:
		return quickLimitSeconds
	case category == questionbank.CategoryBlended:
		return blendedLimitSeconds
	default:
		return max(count-5, 5) * 60
	}
}

// Answer records (or overwrites) the selected option for a question index.
func (c *Controller) Answer(index, choice int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseActive || !c.validIndex(index) {
		return
	}
	if choice < 0 || choice >= len(c.sess.Questions[index].Options) {
		return
	}
	c.sess.Answers[index] = choice
}

// ToggleFlag flips the review marker on a question index.
func (c *Controller) ToggleFlag(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseActive || !c.validIndex(index) {
		return
	}
	if c.sess.Flagged[index] {
		delete(c.sess.Flagged, index)
	} else {
		c.sess.Flagged[index] = true
	}
}

// Navigate moves the current question pointer. It never touches the deadline.
func (c *Controller) Navigate(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseActive || !c.validIndex(index) {
		return
	}
	c.sess.Current = index
}

func (c *Controller) validIndex(index int) bool {
	return c.sess != nil && index >= 0 && index < len(c.sess.Questions)
}

// Remaining returns the seconds left on the clock, never negative.
func (c *Controller) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining()
}

func (c *Controller) remaining() int {
	if c.sess == nil {
		return 0
	}
	elapsed := int(c.clock.Now().Sub(c.sess.StartedAt) / time.Second)
	return max(0, c.sess.TimeLimitSeconds-elapsed)
}

// Tick is the pull-based timer check. The caller invokes it on its own
// render cadence; when the deadline has passed the session is graded as if
// submitted, exactly once. Returns the remaining seconds.
func (c *Controller) Tick() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseActive {
		return 0
	}
	remaining := c.remaining()
	if remaining == 0 {
		c.grade()
	}
	return remaining
}

// Submit grades the active session explicitly.
func (c *Controller) Submit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseActive {
		return
	}
	c.grade()
}

// Abandon discards an in-progress session without grading it, and cancels a
// Start still waiting on generation. Nothing is recorded and the weights are
// untouched.
func (c *Controller) Abandon() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startToken++
	if c.phase != PhaseActive {
		return
	}
	c.log.Info().Str("session", c.sess.ID).Msg("session abandoned")
	c.sess = nil
	c.result = nil
	c.phase = PhaseIdle
}

// grade classifies every answer, writes the history record, runs the weight
// update, and persists best-effort. The controller ends in the reviewing
// phase regardless of persistence outcome.
func (c *Controller) grade() {
	c.phase = PhaseGrading
	sess := c.sess
	now := c.clock.Now()

	var correct, wrong, unanswered int
	for i, q := range sess.Questions {
		choice, answered := sess.Answers[i]
		switch {
		case !answered:
			unanswered++
		case choice == q.CorrectIndex:
			correct++
		default:
			wrong++
		}
	}

	total := len(sess.Questions)
	score := int(math.Round(float64(correct) / float64(total) * 100))

	elapsed := int(now.Sub(sess.StartedAt) / time.Second)
	if elapsed > sess.TimeLimitSeconds {
		elapsed = sess.TimeLimitSeconds
	}

	answers := make(map[int]int, len(sess.Answers))
	for k, v := range sess.Answers {
		answers[k] = v
	}

	record := store.HistoryRecord{
		ID:               sess.ID,
		Category:         sess.Category,
		Score:            score,
		CorrectCount:     correct,
		WrongCount:       wrong,
		UnansweredCount:  unanswered,
		TotalQuestions:   total,
		Timestamp:        now,
		TimeTakenSeconds: elapsed,
		Answers:          answers,
		Questions:        sess.Questions,
	}

	c.doc.History = append(c.doc.History, record)
	c.doc.Weights = adaptive.UpdateWeights(sess.Questions, sess.Answers, c.doc.Weights)

	if err := c.store.Save(c.doc); err != nil {
		c.log.Warn().Err(err).Msg("progress not persisted, continuing in memory")
	}

	c.result = &record
	c.phase = PhaseReviewing

	c.log.Info().
		Str("session", sess.ID).
		Int("score", score).
		Int("correct", correct).
		Int("wrong", wrong).
		Int("unanswered", unanswered).
		Msg("session graded")
}

// Result returns the graded record, or nil before grading completes.
func (c *Controller) Result() *store.HistoryRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Retake starts a fresh attempt of the same category and mode. Question
// selection is independent of the previous attempt, but the just-updated
// weights bias it toward what was missed.
func (c *Controller) Retake(ctx context.Context) error {
	c.mu.Lock()
	if c.phase != PhaseReviewing {
		c.mu.Unlock()
		return fmt.Errorf("no completed session to retake")
	}
	category, mode := c.lastCategory, c.lastMode
	c.configure()
	c.mu.Unlock()
	return c.Start(ctx, category, mode)
}
