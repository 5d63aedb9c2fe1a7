package site

import (
	"github.com/ncecere/judgment-tools/internal/catalog"
	"github.com/ncecere/judgment-tools/internal/decision"
	"github.com/ncecere/judgment-tools/internal/tools/tiebreaker"
	"github.com/ncecere/judgment-tools/internal/tools/validity"
)

// pageData is the binding for every template, layout included.
type pageData struct {
	Title        string
	Description  string
	CanonicalURL string
	SiteName     string
	ContactEmail string
	Tools        []catalog.Tool
	FirstTool    *catalog.Tool
	ActiveSlug   string
	ShowSidebar  bool
	Notice       string
	Tool         catalog.Tool
	TieBreaker   *tieBreakerView
	Validity     *validityView
}

type selectOption struct {
	Value    string
	Label    string
	Selected bool
}

type tieBreakerView struct {
	Form         tiebreaker.Form
	Result       *decision.Result
	AMeetsChoice []selectOption
	BMeetsChoice []selectOption
}

func newTieBreakerView(state tiebreaker.State) *tieBreakerView {
	return &tieBreakerView{
		Form:         state.Form,
		Result:       state.Result,
		AMeetsChoice: meetsOptions(state.Form.AMeets),
		BMeetsChoice: meetsOptions(state.Form.BMeets),
	}
}

func meetsOptions(selected tiebreaker.MeetsValue) []selectOption {
	choices := []struct {
		value tiebreaker.MeetsValue
		label string
	}{
		{tiebreaker.MeetsYes, "Yes"},
		{tiebreaker.MeetsNo, "No"},
		{tiebreaker.MeetsNotSure, "Not sure"},
	}
	out := make([]selectOption, 0, len(choices))
	for _, ch := range choices {
		out = append(out, selectOption{Value: string(ch.value), Label: ch.label, Selected: ch.value == selected})
	}
	return out
}

type validityView struct {
	Form   validity.Form
	Result *decision.Result
}
