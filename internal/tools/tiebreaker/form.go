package tiebreaker

import "github.com/ncecere/judgment-tools/internal/decision"

// Form holds the raw field values of the tie-breaker page.
type Form struct {
	OptionA    string
	OptionB    string
	Constraint string
	AMeets     MeetsValue
	BMeets     MeetsValue
}

// NewForm returns the initial empty form.
func NewForm() Form {
	return Form{AMeets: MeetsNotSure, BMeets: MeetsNotSure}
}

func (f Form) Input() Input {
	return Input{
		OptionA:    f.OptionA,
		OptionB:    f.OptionB,
		Constraint: f.Constraint,
		AMeets:     f.AMeets,
		BMeets:     f.BMeets,
	}
}

// State is the page state for one interaction: the form and the last result.
type State struct {
	Form   Form
	Result *decision.Result
}

func NewState() State {
	return State{Form: NewForm()}
}

// Submit evaluates the current form and replaces any previous result.
func (s *State) Submit(d *Decider) decision.Result {
	res := d.Decide(s.Form.Input())
	s.Result = &res
	return res
}

// Reset clears all fields and the result.
func (s *State) Reset() {
	*s = NewState()
}
