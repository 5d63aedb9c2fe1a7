// Package validity implements the Constraint Validity Check, a structural
// check that a constraint is phrased as one measurable rule. It does not
// judge meaning or option quality.
package validity

import (
	"github.com/ncecere/judgment-tools/internal/decision"
	"github.com/ncecere/judgment-tools/internal/textmatch"
)

const Slug = "constraint-validity-check"

const (
	RuleMultiSentence     decision.Rule = "multi_sentence"
	RuleMissingLeadIn     decision.Rule = "missing_lead_in"
	RuleNoConcreteNoun    decision.Rule = "no_concrete_noun"
	RuleNoTrigger         decision.Rule = "no_trigger"
	RuleNoConsequenceVerb decision.Rule = "no_consequence_verb"
	RuleValid             decision.Rule = "valid"
)

const (
	RefusalMultiSentence = "Refusal: Each field must be a single sentence."

	NextStepValid   = "Run Constraint Tie-Breaker using this constraint."
	NextStepRewrite = "Rewrite into one measurable rule (time/money/frequency/platform) and rerun."
)

// Input is one validity-check submission.
type Input struct {
	Constraint string
	Scenario   string
	Regret     string
}

// Check runs the cascade. B and TIE share the rewrite guidance; Result.Rule
// tells them apart.
func Check(in Input) decision.Result {
	c := textmatch.Normalize(in.Constraint)
	s := textmatch.Normalize(in.Scenario)
	r := textmatch.Normalize(in.Regret)

	for _, field := range []string{c, s, r} {
		if textmatch.CountSentences(field) > 1 {
			return decision.Refuse(RuleMultiSentence, RefusalMultiSentence)
		}
	}

	if c == "" || s == "" || r == "" ||
		!textmatch.HasLeadIn(c, ConstraintLeadIns...) ||
		!textmatch.HasLeadIn(s, ScenarioLeadIns...) ||
		!textmatch.HasLeadIn(r, RegretLeadIns...) {
		because := c
		if because == "" {
			because = in.Constraint
		}
		return decision.Decide(RuleMissingLeadIn, decision.VerdictTie, because, NextStepRewrite)
	}

	if !HasConcreteNoun(c) {
		return decision.Decide(RuleNoConcreteNoun, decision.VerdictB, c, NextStepRewrite)
	}
	if !HasTrigger(s) {
		return decision.Decide(RuleNoTrigger, decision.VerdictB, c, NextStepRewrite)
	}
	if !HasConsequenceVerb(r) {
		return decision.Decide(RuleNoConsequenceVerb, decision.VerdictB, c, NextStepRewrite)
	}

	return decision.Decide(RuleValid, decision.VerdictA, c, NextStepValid)
}

// HasConcreteNoun reports whether a constraint names something measurable.
func HasConcreteNoun(constraint string) bool {
	return textmatch.HasDigit(constraint) || textmatch.ContainsAny(constraint, ConcreteNouns)
}

// HasTrigger reports whether a scenario has a number or a trigger phrase.
func HasTrigger(scenario string) bool {
	return textmatch.HasDigit(scenario) || textmatch.ContainsAny(scenario, TriggerPhrases)
}

// HasConsequenceVerb reports whether a regret test names a concrete loss.
func HasConsequenceVerb(regret string) bool {
	return textmatch.ContainsAny(regret, ConsequenceVerbs)
}
