package site

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ncecere/judgment-tools/internal/app"
	"github.com/ncecere/judgment-tools/internal/tools/tiebreaker"
	"github.com/ncecere/judgment-tools/internal/tools/validity"
)

const formActionReset = "reset"

// isReset reports whether the posted form asks for a reset. Resets are not
// submissions and skip the limiter.
func isReset(c *fiber.Ctx) bool {
	return c.FormValue("action") == formActionReset
}

// toolPage renders one tool's form. Every registered tool needs one.
type toolPage interface {
	// blank fills data with the initial empty form.
	blank(data *pageData)
	// submit evaluates the posted form, or resets it, and fills data.
	submit(c *fiber.Ctx, data *pageData)
	// restore fills data with the posted values without evaluating them.
	restore(c *fiber.Ctx, data *pageData)
}

func toolPages(container *app.Container) map[string]toolPage {
	return map[string]toolPage{
		tiebreaker.Slug: tieBreakerPage{container: container},
		validity.Slug:   validityPage{container: container},
	}
}

type tieBreakerPage struct {
	container *app.Container
}

func (p tieBreakerPage) posted(c *fiber.Ctx) tiebreaker.State {
	state := tiebreaker.NewState()
	state.Form = tiebreaker.Form{
		OptionA:    c.FormValue("optionA"),
		OptionB:    c.FormValue("optionB"),
		Constraint: c.FormValue("constraint"),
		AMeets:     tiebreaker.ParseMeetsValue(c.FormValue("aMeets")),
		BMeets:     tiebreaker.ParseMeetsValue(c.FormValue("bMeets")),
	}
	return state
}

func (p tieBreakerPage) blank(data *pageData) {
	data.TieBreaker = newTieBreakerView(tiebreaker.NewState())
}

func (p tieBreakerPage) submit(c *fiber.Ctx, data *pageData) {
	state := p.posted(c)
	if isReset(c) {
		state.Reset()
	} else {
		_, res := p.container.DecideTieBreaker(c.UserContext(), state.Form.Input())
		state.Result = &res
	}
	data.TieBreaker = newTieBreakerView(state)
}

func (p tieBreakerPage) restore(c *fiber.Ctx, data *pageData) {
	data.TieBreaker = newTieBreakerView(p.posted(c))
}

type validityPage struct {
	container *app.Container
}

func (p validityPage) posted(c *fiber.Ctx) validity.State {
	return validity.State{Form: validity.Form{
		Constraint: c.FormValue("constraint"),
		Scenario:   c.FormValue("scenario"),
		Regret:     c.FormValue("regret"),
	}}
}

func (p validityPage) blank(data *pageData) {
	data.Validity = &validityView{}
}

func (p validityPage) submit(c *fiber.Ctx, data *pageData) {
	state := p.posted(c)
	if isReset(c) {
		state.Reset()
	} else {
		_, res := p.container.CheckValidity(c.UserContext(), state.Form.Input())
		state.Result = &res
	}
	data.Validity = &validityView{Form: state.Form, Result: state.Result}
}

func (p validityPage) restore(c *fiber.Ctx, data *pageData) {
	state := p.posted(c)
	data.Validity = &validityView{Form: state.Form}
}
