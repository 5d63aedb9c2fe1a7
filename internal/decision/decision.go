package decision

import "fmt"

// Verdict enumerates tool decisions.
type Verdict string

const (
	VerdictA   Verdict = "A"
	VerdictB   Verdict = "B"
	VerdictTie Verdict = "TIE"
)

// Rule names the cascade step that produced a result.
type Rule string

// Output is the three-field verdict block shown to the user.
type Output struct {
	Verdict           Verdict `json:"verdict"`
	BecauseConstraint string  `json:"because_constraint"`
	NextStep          string  `json:"next_step"`
}

// String renders the output in its display format.
func (o Output) String() string {
	return fmt.Sprintf("Verdict: %s\nBecause: %s\nNext step: %s", o.Verdict, o.BecauseConstraint, o.NextStep)
}

// Refusal signals that no verdict was produced.
type Refusal struct {
	Reason string `json:"reason"`
}

// Result carries exactly one of Output or Refusal.
type Result struct {
	Rule    Rule     `json:"rule"`
	Output  *Output  `json:"output,omitempty"`
	Refusal *Refusal `json:"refusal,omitempty"`
}

func Refuse(rule Rule, reason string) Result {
	return Result{Rule: rule, Refusal: &Refusal{Reason: reason}}
}

func Decide(rule Rule, verdict Verdict, because, nextStep string) Result {
	return Result{Rule: rule, Output: &Output{
		Verdict:           verdict,
		BecauseConstraint: because,
		NextStep:          nextStep,
	}}
}

// Refused reports whether the result is a refusal.
func (r Result) Refused() bool { return r.Refusal != nil }

// Outcome returns "refusal" or the verdict, for logs and metric labels.
func (r Result) Outcome() string {
	switch {
	case r.Refusal != nil:
		return "refusal"
	case r.Output != nil:
		return string(r.Output.Verdict)
	default:
		return ""
	}
}
