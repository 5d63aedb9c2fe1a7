// Package tiebreaker implements the Constraint Tie-Breaker: choose between
// two options using one non-negotiable constraint.
package tiebreaker

import (
	"fmt"
	"strings"

	"github.com/ncecere/judgment-tools/internal/decision"
	"github.com/ncecere/judgment-tools/internal/guardrails"
	"github.com/ncecere/judgment-tools/internal/textmatch"
)

const Slug = "constraint-tie-breaker"

const (
	RuleMissingConstraint decision.Rule = "missing_constraint"
	RuleHighStakes        decision.Rule = "high_stakes"
	RuleBestOverall       decision.Rule = "best_overall"
	RuleOnlyAMeets        decision.Rule = "only_a_meets"
	RuleOnlyBMeets        decision.Rule = "only_b_meets"
	RuleBothMeet          decision.Rule = "both_meet"
	RuleNeitherMeets      decision.Rule = "neither_meets"
)

const (
	refusalMissingConstraint = `Refusal: You must name one non-negotiable constraint (one sentence: "I must..." or "I can’t...").`
	refusalHighStakes        = "Refusal: This appears to be a high-stakes medical/legal/financial decision. Get qualified professional advice."
	refusalBestOverall       = `Refusal: This tool does not optimize for "best overall." Rewrite one must-have constraint (dealbreaker) and rerun.`

	nextStepChoose   = "Choose %s and do one real task with it right now (≤15 minutes)."
	nextStepMiniTest = "Run a 15-minute mini-test: use %s or %s right now for one real task and note friction (time/effort/errors)."
	nextStepRewrite  = "Replace one option or loosen the constraint by one notch (rewrite it), then rerun."

	defaultLabelA = "Option A"
	defaultLabelB = "Option B"
)

// MeetsValue records whether an option meets the constraint.
type MeetsValue string

const (
	MeetsYes     MeetsValue = "yes"
	MeetsNo      MeetsValue = "no"
	MeetsNotSure MeetsValue = "not_sure"
)

// ParseMeetsValue maps form input to a MeetsValue. Anything unrecognized is
// not_sure.
func ParseMeetsValue(raw string) MeetsValue {
	switch MeetsValue(strings.ToLower(strings.TrimSpace(raw))) {
	case MeetsYes:
		return MeetsYes
	case MeetsNo:
		return MeetsNo
	default:
		return MeetsNotSure
	}
}

// Effective collapses the flag to yes/no. An unverified answer counts as no.
func (m MeetsValue) Effective() bool {
	return m == MeetsYes
}

// Input is one tie-breaker submission.
type Input struct {
	OptionA    string
	OptionB    string
	Constraint string
	AMeets     MeetsValue
	BMeets     MeetsValue
}

// Decider evaluates tie-breaker submissions.
type Decider struct {
	guard *guardrails.Evaluator
}

// New returns a Decider using guard for the refusal checks. A nil guard
// falls back to the default keyword tables.
func New(guard *guardrails.Evaluator) *Decider {
	if guard == nil {
		guard = guardrails.NewEvaluator(guardrails.DefaultConfig())
	}
	return &Decider{guard: guard}
}

// Decide runs the cascade. The result is either a refusal or a verdict,
// never both.
func (d *Decider) Decide(in Input) decision.Result {
	a := textmatch.Normalize(in.OptionA)
	b := textmatch.Normalize(in.OptionB)
	c := textmatch.Normalize(in.Constraint)

	if c == "" {
		return decision.Refuse(RuleMissingConstraint, refusalMissingConstraint)
	}

	if d.guard.CheckHighStakes(joinNonEmpty(" | ", a, b, c)).Blocked() {
		return decision.Refuse(RuleHighStakes, refusalHighStakes)
	}

	if d.guard.CheckBestOverall(c).Blocked() {
		return decision.Refuse(RuleBestOverall, refusalBestOverall)
	}

	labelA, labelB := a, b
	if labelA == "" {
		labelA = defaultLabelA
	}
	if labelB == "" {
		labelB = defaultLabelB
	}

	aMeets, bMeets := in.AMeets.Effective(), in.BMeets.Effective()
	switch {
	case aMeets && !bMeets:
		return decision.Decide(RuleOnlyAMeets, decision.VerdictA, c, fmt.Sprintf(nextStepChoose, labelA))
	case bMeets && !aMeets:
		return decision.Decide(RuleOnlyBMeets, decision.VerdictB, c, fmt.Sprintf(nextStepChoose, labelB))
	case aMeets && bMeets:
		return decision.Decide(RuleBothMeet, decision.VerdictTie, c, fmt.Sprintf(nextStepMiniTest, labelA, labelB))
	default:
		return decision.Decide(RuleNeitherMeets, decision.VerdictTie, c, nextStepRewrite)
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
