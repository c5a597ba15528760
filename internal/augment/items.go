package augment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/aptiq/internal/questionbank"
)

// placeholderOption pads short option lists up to the target of four.
const placeholderOption = "Not determinable"

const targetOptions = 4

// itemSchema is the per-item contract: a prompt and at least two option
// strings are mandatory; the answer index is coerced separately because
// providers return it as a number, a numeric string, or not at all.
var itemSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"text", "opts"},
	"properties": map[string]any{
		"text": map[string]any{"type": "string", "minLength": 1},
		"opts": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    map[string]any{"type": "string"},
		},
		"exp": map[string]any{"type": "string"},
	},
}

var (
	itemSchemaOnce sync.Once
	itemSchema     *jsonschema.Schema
	itemSchemaErr  error
)

func compiledItemSchema() (*jsonschema.Schema, error) {
	itemSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://generated-item.json", itemSchemaDef); err != nil {
			itemSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		itemSchema, itemSchemaErr = c.Compile("schema://generated-item.json")
	})
	return itemSchema, itemSchemaErr
}

type rawItem struct {
	Text string   `json:"text"`
	Opts []string `json:"opts"`
	Ans  any      `json:"ans"`
	Exp  string   `json:"exp"`
}

// buildQuestions validates each raw item independently and converts the
// survivors into Question records. A single bad item is dropped and logged;
// it never discards the rest of the batch.
func buildQuestions(category string, items []json.RawMessage, batchTime time.Time, log zerolog.Logger) []questionbank.Question {
	schema, err := compiledItemSchema()
	if err != nil {
		log.Error().Err(err).Msg("compile generated-item schema")
		return nil
	}

	stamp := batchTime.Unix()
	out := make([]questionbank.Question, 0, len(items))

	for i, raw := range items {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			log.Warn().Err(err).Int("item", i).Msg("dropping unparseable generated item")
			continue
		}
		if err := schema.Validate(parsed); err != nil {
			log.Warn().Err(err).Int("item", i).Msg("dropping invalid generated item")
			continue
		}

		var item rawItem
		if err := json.Unmarshal(raw, &item); err != nil {
			log.Warn().Err(err).Int("item", i).Msg("dropping malformed generated item")
			continue
		}

		opts := normalizeOptions(item.Opts)
		out = append(out, questionbank.Question{
			ID:           fmt.Sprintf("gen-%s-%d-%d", category, stamp, len(out)),
			Category:     category,
			Subcategory:  "ai_generated",
			Difficulty:   questionbank.DifficultyMedium,
			Prompt:       strings.TrimSpace(item.Text),
			Options:      opts,
			CorrectIndex: coerceAnswer(item.Ans, len(opts)),
			Explanation:  strings.TrimSpace(item.Exp),
		})
	}
	return out
}

// normalizeOptions truncates to the target of four options, padding short
// lists with a placeholder. The schema guarantees at least two entries.
func normalizeOptions(opts []string) []string {
	if len(opts) > targetOptions {
		opts = opts[:targetOptions]
	}
	out := make([]string, len(opts), targetOptions)
	copy(out, opts)
	for len(out) < targetOptions {
		out = append(out, placeholderOption)
	}
	return out
}

// coerceAnswer converts whatever the provider put in "ans" to a valid
// option index, defaulting to 0 on any conversion failure and clamping to
// the options range.
func coerceAnswer(v any, optionCount int) int {
	var idx int
	switch a := v.(type) {
	case float64:
		idx = int(a)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return 0
		}
		idx = n
	case json.Number:
		n, err := a.Int64()
		if err != nil {
			return 0
		}
		idx = int(n)
	default:
		return 0
	}

	if idx < 0 || idx >= optionCount {
		return 0
	}
	return idx
}
