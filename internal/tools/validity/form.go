package validity

import "github.com/ncecere/judgment-tools/internal/decision"

// Form holds the raw field values of the validity-check page.
type Form struct {
	Constraint string
	Scenario   string
	Regret     string
}

func (f Form) Input() Input {
	return Input{Constraint: f.Constraint, Scenario: f.Scenario, Regret: f.Regret}
}

// State is the page state for one interaction.
type State struct {
	Form   Form
	Result *decision.Result
}

// Submit evaluates the current form and replaces any previous result.
func (s *State) Submit() decision.Result {
	res := Check(s.Form.Input())
	s.Result = &res
	return res
}

// Reset clears all fields and the result.
func (s *State) Reset() {
	*s = State{}
}
