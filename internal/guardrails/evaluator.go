package guardrails

import "github.com/ncecere/judgment-tools/internal/textmatch"

// Action enumerates evaluator outcomes.
type Action string

const (
	ActionAllow Action = "allow"
	ActionBlock Action = "block"
)

// Category identifies which table produced a block.
type Category string

const (
	CategoryHighStakes  Category = "high_stakes"
	CategoryBestOverall Category = "best_overall"
)

// Result represents the evaluator decision.
type Result struct {
	Action     Action
	Violations []string
	Category   Category
}

// Blocked reports whether the text tripped a table.
func (r Result) Blocked() bool { return r.Action == ActionBlock }

// Evaluator runs the keyword tables against free text.
type Evaluator struct {
	config Config
}

func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{config: cfg}
}

// CheckHighStakes blocks medical, legal, and financial topics.
func (e *Evaluator) CheckHighStakes(text string) Result {
	return check(CategoryHighStakes, e.config.HighStakes, text)
}

// CheckBestOverall blocks multi-criteria optimization requests.
func (e *Evaluator) CheckBestOverall(text string) Result {
	return check(CategoryBestOverall, e.config.BestOverall, text)
}

func check(category Category, keywords []string, text string) Result {
	if violation, ok := textmatch.MatchAny(text, keywords); ok {
		return Result{Action: ActionBlock, Violations: []string{violation}, Category: category}
	}
	return Result{Action: ActionAllow}
}
