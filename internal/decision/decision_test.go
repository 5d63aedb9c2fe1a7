package decision

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputString(t *testing.T) {
	out := Output{Verdict: VerdictTie, BecauseConstraint: "I must work offline.", NextStep: "Rerun."}
	want := "Verdict: TIE\nBecause: I must work offline.\nNext step: Rerun."
	if got := out.String(); got != want {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestResultIsExclusive(t *testing.T) {
	refused := Refuse("missing", "no")
	require.True(t, refused.Refused())
	require.Nil(t, refused.Output)
	require.Equal(t, "refusal", refused.Outcome())

	decided := Decide("only_a", VerdictA, "c", "n")
	require.False(t, decided.Refused())
	require.NotNil(t, decided.Output)
	require.Equal(t, "A", decided.Outcome())
}

func TestResultJSONOmitsAbsentBranch(t *testing.T) {
	payload, err := json.Marshal(Refuse("multi_sentence", "Refusal"))
	require.NoError(t, err)
	require.JSONEq(t, `{"rule":"multi_sentence","refusal":{"reason":"Refusal"}}`, string(payload))
}
