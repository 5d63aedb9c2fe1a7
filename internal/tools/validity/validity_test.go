package validity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ncecere/judgment-tools/internal/decision"
)

func validInput() Input {
	return Input{
		Constraint: "I must sync offline on iPhone.",
		Scenario:   "When I travel, I need offline access within 5 minutes.",
		Regret:     "If it fails, I will miss a deadline.",
	}
}

func TestCheckValid(t *testing.T) {
	res := Check(validInput())
	require.False(t, res.Refused())
	require.Equal(t, RuleValid, res.Rule)
	require.Equal(t, decision.Output{
		Verdict:           decision.VerdictA,
		BecauseConstraint: "I must sync offline on iPhone.",
		NextStep:          NextStepValid,
	}, *res.Output)
}

func TestCheckRefusesMultipleSentences(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{name: "constraint", in: Input{Constraint: "I must work offline. Always."}},
		{name: "scenario", in: Input{Constraint: "I must sync.", Scenario: "When I travel. When I commute."}},
		{name: "regret beats lead-in", in: Input{Constraint: "We must.", Regret: "If it fails! I lose."}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.in)
			require.True(t, res.Refused())
			require.Nil(t, res.Output)
			require.Equal(t, RuleMultiSentence, res.Rule)
		})
	}
}

func TestCheckMissingLeadIn(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		because string
	}{
		{
			name:    "constraint without i must",
			mutate:  func(in *Input) { in.Constraint = "we must sync offline on iPhone." },
			because: "we must sync offline on iPhone.",
		},
		{
			name:    "scenario without when",
			mutate:  func(in *Input) { in.Scenario = "While I travel, I need access within 5 minutes." },
			because: "I must sync offline on iPhone.",
		},
		{
			name:    "regret without if",
			mutate:  func(in *Input) { in.Regret = "Then I will miss a deadline." },
			because: "I must sync offline on iPhone.",
		},
		{
			name:    "empty scenario",
			mutate:  func(in *Input) { in.Scenario = "" },
			because: "I must sync offline on iPhone.",
		},
		{
			name:    "blank constraint echoed verbatim",
			mutate:  func(in *Input) { in.Constraint = "   " },
			because: "   ",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			res := Check(in)
			require.False(t, res.Refused())
			require.Equal(t, RuleMissingLeadIn, res.Rule)
			require.Equal(t, decision.VerdictTie, res.Output.Verdict)
			require.Equal(t, tt.because, res.Output.BecauseConstraint)
			require.Equal(t, NextStepRewrite, res.Output.NextStep)
		})
	}
}

func TestCheckAcceptsCantLeadIns(t *testing.T) {
	for _, constraint := range []string{"I can't pay more than 10 dollars.", "I can’t work past 6pm."} {
		in := validInput()
		in.Constraint = constraint
		if res := Check(in); res.Rule != RuleValid {
			t.Fatalf("expected %q to be valid, got rule %s", constraint, res.Rule)
		}
	}
}

func TestCheckStructuralRulesFireIndependently(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		rule   decision.Rule
	}{
		{name: "no concrete noun", mutate: func(in *Input) { in.Constraint = "I must stay relaxed." }, rule: RuleNoConcreteNoun},
		{name: "no trigger", mutate: func(in *Input) { in.Scenario = "When I travel, I need offline access." }, rule: RuleNoTrigger},
		{name: "no consequence verb", mutate: func(in *Input) { in.Regret = "If it stops, I will be sad." }, rule: RuleNoConsequenceVerb},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			res := Check(in)
			require.Equal(t, tt.rule, res.Rule)
			require.Equal(t, decision.VerdictB, res.Output.Verdict)
			require.Equal(t, NextStepRewrite, res.Output.NextStep)
		})
	}
}

func TestCheckStructuralRuleOrder(t *testing.T) {
	in := Input{
		Constraint: "I must stay relaxed.",
		Scenario:   "When I travel.",
		Regret:     "If it stops.",
	}
	require.Equal(t, RuleNoConcreteNoun, Check(in).Rule)

	in.Constraint = "I must stay relaxed for 2 weeks."
	require.Equal(t, RuleNoTrigger, Check(in).Rule)

	in.Scenario = "When I travel after work."
	require.Equal(t, RuleNoConsequenceVerb, Check(in).Rule)
}

func TestCheckRewriteOutputsMatchAcrossRules(t *testing.T) {
	noNoun := validInput()
	noNoun.Constraint = "I must stay relaxed."
	wrongLeadIn := noNoun
	wrongLeadIn.Scenario = "Sometimes I travel within 5 minutes."

	a, b := Check(noNoun), Check(wrongLeadIn)
	require.Equal(t, a.Output.NextStep, b.Output.NextStep)
	require.Equal(t, a.Output.BecauseConstraint, b.Output.BecauseConstraint)
	require.NotEqual(t, a.Rule, b.Rule)
	require.NotEqual(t, a.Output.Verdict, b.Output.Verdict)
}

func TestCheckIsDeterministic(t *testing.T) {
	in := validInput()
	first := Check(in)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Check(in))
	}
}

func TestStateResetAfterVerdict(t *testing.T) {
	var state State
	state.Form = Form{
		Constraint: "I must sync offline on iPhone.",
		Scenario:   "When I travel, I need offline access within 5 minutes.",
		Regret:     "If it fails, I will miss a deadline.",
	}
	res := state.Submit()
	require.Equal(t, RuleValid, res.Rule)
	require.NotNil(t, state.Result)

	state.Reset()
	require.Equal(t, State{}, state)
}
