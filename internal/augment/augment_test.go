package augment

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/aptiq/internal/llm"
)

func newTestAugmenter(responses ...llm.MockResponse) (*Augmenter, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	a := New(mock, DefaultConfig(), zerolog.Nop())
	a.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return a, mock
}

const validBatch = `[
	{"text": "What is 20% of 150?", "opts": ["20", "30", "40", "25"], "ans": 1, "exp": "150 x 0.2 = 30."},
	{"text": "What is 3/4 as a percentage?", "opts": ["75%", "80%", "70%", "60%"], "ans": 0, "exp": "3/4 = 0.75."}
]`

func TestAugmentDisabledWithoutProvider(t *testing.T) {
	a := New(nil, DefaultConfig(), zerolog.Nop())

	_, err := a.Augment(context.Background(), "numerical", 5)
	assert.ErrorIs(t, err, ErrDisabled)
	assert.False(t, a.Enabled())
}

func TestAugmentCategoryWithoutProfile(t *testing.T) {
	a, mock := newTestAugmenter()

	got, err := a.Augment(context.Background(), "abstract", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, mock.CallCount(), "figure-heavy categories must not invoke the provider")
}

func TestAugmentHappyPath(t *testing.T) {
	a, _ := newTestAugmenter(llm.MockResponse{Content: json.RawMessage(validBatch)})

	got, err := a.Augment(context.Background(), "numerical", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "numerical", got[0].Category)
	assert.Equal(t, "ai_generated", got[0].Subcategory)
	assert.Regexp(t, `^gen-numerical-\d+-0$`, got[0].ID)
	assert.Equal(t, 1, got[0].CorrectIndex)
	assert.Equal(t, "What is 20% of 150?", got[0].Prompt)
}

func TestAugmentRequestsBatchEnvelope(t *testing.T) {
	a, mock := newTestAugmenter(llm.MockResponse{Content: json.RawMessage(validBatch)})

	_, err := a.Augment(context.Background(), "numerical", 5)
	require.NoError(t, err)
	require.Equal(t, 1, mock.CallCount())

	req := mock.Calls[0]
	require.NotNil(t, req.Schema)
	assert.Equal(t, "question-batch", req.Schema.Name)
	assert.Equal(t, "object", req.Schema.Definition["type"])
}

func TestAugmentEnvelopeObjectReply(t *testing.T) {
	wrapped := `{"questions": ` + validBatch + `}`
	a, _ := newTestAugmenter(llm.MockResponse{Content: json.RawMessage(wrapped)})

	got, err := a.Augment(context.Background(), "numerical", 5)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAugmentStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validBatch + "\n```"
	a, _ := newTestAugmenter(llm.MockResponse{Content: json.RawMessage(fenced)})

	got, err := a.Augment(context.Background(), "numerical", 5)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAugmentSurroundingProse(t *testing.T) {
	wrapped := "Here are your questions:\n" + validBatch + "\nHope these help!"
	a, _ := newTestAugmenter(llm.MockResponse{Content: json.RawMessage(wrapped)})

	got, err := a.Augment(context.Background(), "numerical", 5)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAugmentNonJSONBody(t *testing.T) {
	a, _ := newTestAugmenter(llm.MockResponse{Content: json.RawMessage("I cannot help with that.")})

	got, err := a.Augment(context.Background(), "numerical", 5)
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestAugmentProviderError(t *testing.T) {
	a, _ := newTestAugmenter(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	_, err := a.Augment(context.Background(), "numerical", 5)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDisabled)
}

func TestAugmentDropsSingleBadItem(t *testing.T) {
	batch := `[
		{"text": "Good question?", "opts": ["a", "b", "c", "d"], "ans": 2, "exp": "e"},
		{"opts": ["a", "b"], "ans": 0},
		{"text": "Also good?", "opts": ["a", "b", "c", "d"], "ans": 0, "exp": "e"}
	]`
	a, _ := newTestAugmenter(llm.MockResponse{Content: json.RawMessage(batch)})

	got, err := a.Augment(context.Background(), "logical", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Good question?", got[0].Prompt)
	assert.Equal(t, "Also good?", got[1].Prompt)
}

func TestAugmentPadsAndTruncatesOptions(t *testing.T) {
	batch := `[
		{"text": "Two options?", "opts": ["yes", "no"], "ans": 1, "exp": "e"},
		{"text": "Six options?", "opts": ["a", "b", "c", "d", "e", "f"], "ans": 5, "exp": "e"}
	]`
	a, _ := newTestAugmenter(llm.MockResponse{Content: json.RawMessage(batch)})

	got, err := a.Augment(context.Background(), "verbal", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, []string{"yes", "no", placeholderOption, placeholderOption}, got[0].Options)
	assert.Equal(t, 1, got[0].CorrectIndex)

	assert.Len(t, got[1].Options, 4)
	// Truncation pushed the declared answer out of range; fall back to 0.
	assert.Equal(t, 0, got[1].CorrectIndex)
}

func TestAugmentCoercesAnswerIndex(t *testing.T) {
	batch := `[
		{"text": "String index?", "opts": ["a", "b", "c", "d"], "ans": "2", "exp": "e"},
		{"text": "Garbage index?", "opts": ["a", "b", "c", "d"], "ans": "two", "exp": "e"},
		{"text": "Missing index?", "opts": ["a", "b", "c", "d"], "exp": "e"},
		{"text": "Negative index?", "opts": ["a", "b", "c", "d"], "ans": -3, "exp": "e"}
	]`
	a, _ := newTestAugmenter(llm.MockResponse{Content: json.RawMessage(batch)})

	got, err := a.Augment(context.Background(), "iq", 5)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, 2, got[0].CorrectIndex)
	assert.Equal(t, 0, got[1].CorrectIndex)
	assert.Equal(t, 0, got[2].CorrectIndex)
	assert.Equal(t, 0, got[3].CorrectIndex)
}

func TestAugmentCachesPerBucket(t *testing.T) {
	a, mock := newTestAugmenter(
		llm.MockResponse{Content: json.RawMessage(validBatch)},
		llm.MockResponse{Content: json.RawMessage(validBatch)},
	)

	first, err := a.Augment(context.Background(), "numerical", 5)
	require.NoError(t, err)
	second, err := a.Augment(context.Background(), "numerical", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, mock.CallCount(), "same bucket must reuse the cached batch")
	assert.Equal(t, first, second)

	// Advance past the bucket window; the provider is invoked again.
	a.now = func() time.Time { return time.Date(2025, 6, 1, 12, 45, 0, 0, time.UTC) }
	_, err = a.Augment(context.Background(), "numerical", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, mock.CallCount())
}

func TestAugmentTruncatesToRequestedCount(t *testing.T) {
	a, _ := newTestAugmenter(llm.MockResponse{Content: json.RawMessage(validBatch)})

	got, err := a.Augment(context.Background(), "numerical", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
