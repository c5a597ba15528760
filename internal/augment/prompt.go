package augment

import (
	"fmt"
	"strings"

	"github.com/abhisek/aptiq/internal/llm"
)

const systemPrompt = "You are a psychometrician who designs professional aptitude assessment questions " +
	"for graduate and professional hiring. You write precise, unambiguous multiple-choice items with " +
	"exactly one defensible correct answer and a short worked explanation. " +
	`Respond with JSON ONLY — no prose, no markdown, no code fences: an object {"questions": [...]}. ` +
	"Each array element must be an object with keys: " +
	`"text" (the question), "opts" (2 to 4 answer strings), "ans" (zero-based index of the correct option), ` +
	`"exp" (one-sentence explanation).`

// batchEnvelope is the transport-level shape requested from the provider.
// It is deliberately loose — an object holding an array of objects — so a
// single malformed item cannot fail the whole reply at the provider layer;
// per-item strictness lives in buildQuestions, which drops bad items
// individually. The object root keeps OpenAI strict mode happy.
var batchEnvelope = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of generated multiple-choice aptitude questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// styles are reference assessment houses rotated into the prompt so
// consecutive cache windows produce differently flavoured batches.
var styles = []string{
	"SHL",
	"Kenexa",
	"Cubiks",
	"Watson-Glaser",
	"Saville",
	"Talent Q",
}

func styleForBucket(bucket int64) string {
	idx := bucket % int64(len(styles))
	if idx < 0 {
		idx += int64(len(styles))
	}
	return styles[idx]
}

// profile describes how to ask for one category's questions.
type profile struct {
	name    string
	formats []string
}

// profiles covers the text-friendly categories. Figure-heavy categories
// (abstract, spatial, mechanical) have no profile: their items need diagrams
// the generation contract cannot carry.
var profiles = map[string]profile{
	"numerical": {
		name: "numerical reasoning",
		formats: []string{
			"data-table interpretation with a small plain-text table",
			"percentage change and reverse percentage",
			"ratio and proportion",
			"currency conversion with given exchange rates",
			"rates of work, speed, or throughput",
		},
	},
	"verbal": {
		name: "verbal reasoning",
		formats: []string{
			"short passage with a True/False/Cannot Say statement",
			"word analogy",
			"synonym or antonym selection",
			"sentence completion",
		},
	},
	"logical": {
		name: "logical reasoning",
		formats: []string{
			"number or letter sequence continuation",
			"syllogism with a must-be-true conclusion",
			"verbal analogy",
			"seating or ordering deduction puzzle",
			"letter-substitution coding",
		},
	},
	"watson_glaser": {
		name: "Watson-Glaser style critical thinking",
		formats: []string{
			"inference rated True / Probably True / Insufficient Data / Probably False / False",
			"assumption identification (Assumption Made / Not Made)",
			"strict deduction (Conclusion Follows / Does Not Follow)",
			"interpretation of given information",
			"argument evaluation (Strong / Weak Argument)",
		},
	},
	"sjt": {
		name: "situational judgement",
		formats: []string{
			"workplace conflict scenario asking for the best first action",
			"client or stakeholder dilemma",
			"team leadership scenario",
			"professional ethics scenario",
		},
	},
	"iq": {
		name: "general mental ability",
		formats: []string{
			"counter-intuitive arithmetic puzzle",
			"odd one out",
			"transitive ordering logic",
			"disguised sequence (months, alphabets, primes)",
		},
	},
}

func profileFor(category string) (profile, bool) {
	p, ok := profiles[category]
	return p, ok
}

func buildUserPrompt(prof profile, count int, style string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d %s questions in the style of %s assessments.\n", count, prof.name, style)
	b.WriteString("Mix the following sub-formats across the batch:\n")
	for _, f := range prof.formats {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("Difficulty: graduate hiring level. Avoid questions requiring images or drawn figures.\n")
	b.WriteString("Output the JSON only.")
	return b.String()
}
