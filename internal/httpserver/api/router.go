package api

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ncecere/judgment-tools/internal/app"
	"github.com/ncecere/judgment-tools/internal/catalog"
	"github.com/ncecere/judgment-tools/internal/decision"
	"github.com/ncecere/judgment-tools/internal/httpserver/httputil"
	"github.com/ncecere/judgment-tools/internal/tools/tiebreaker"
	"github.com/ncecere/judgment-tools/internal/tools/validity"
)

// Register mounts the JSON endpoints under /api.
func Register(router fiber.Router, container *app.Container) {
	group := router.Group("/api")
	group.Get("/tools", listToolsHandler(container))

	submit := httputil.LimitSubmissions(container)
	group.Post("/tools/"+tiebreaker.Slug+"/decide", submit, decideHandler(container))
	group.Post("/tools/"+validity.Slug+"/validate", submit, validateHandler(container))
}

type toolsResponse struct {
	Tools []catalog.Tool `json:"tools"`
}

type decideRequest struct {
	OptionA    string `json:"option_a"`
	OptionB    string `json:"option_b"`
	Constraint string `json:"constraint"`
	AMeets     string `json:"a_meets"`
	BMeets     string `json:"b_meets"`
}

type validateRequest struct {
	Constraint string `json:"constraint"`
	Scenario   string `json:"scenario"`
	Regret     string `json:"regret"`
}

type submissionResponse struct {
	SubmissionID string            `json:"submission_id"`
	Tool         string            `json:"tool"`
	Rule         decision.Rule     `json:"rule"`
	Output       *decision.Output  `json:"output,omitempty"`
	Refusal      *decision.Refusal `json:"refusal,omitempty"`
}

func newSubmissionResponse(id, tool string, res decision.Result) submissionResponse {
	return submissionResponse{
		SubmissionID: id,
		Tool:         tool,
		Rule:         res.Rule,
		Output:       res.Output,
		Refusal:      res.Refusal,
	}
}

func listToolsHandler(container *app.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(toolsResponse{Tools: container.Tools.All()})
	}
}

func decideHandler(container *app.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req decideRequest
		if err := c.BodyParser(&req); err != nil {
			return httputil.WriteError(c, fiber.StatusBadRequest, "invalid JSON payload")
		}
		in := tiebreaker.Input{
			OptionA:    req.OptionA,
			OptionB:    req.OptionB,
			Constraint: req.Constraint,
			AMeets:     tiebreaker.ParseMeetsValue(req.AMeets),
			BMeets:     tiebreaker.ParseMeetsValue(req.BMeets),
		}
		return respond(c, container, tiebreaker.Slug, func() submissionResponse {
			id, res := container.DecideTieBreaker(c.UserContext(), in)
			return newSubmissionResponse(id, tiebreaker.Slug, res)
		})
	}
}

func validateHandler(container *app.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req validateRequest
		if err := c.BodyParser(&req); err != nil {
			return httputil.WriteError(c, fiber.StatusBadRequest, "invalid JSON payload")
		}
		in := validity.Input{Constraint: req.Constraint, Scenario: req.Scenario, Regret: req.Regret}
		return respond(c, container, validity.Slug, func() submissionResponse {
			id, res := container.CheckValidity(c.UserContext(), in)
			return newSubmissionResponse(id, validity.Slug, res)
		})
	}
}

// respond replays the stored response for a repeated Idempotency-Key, or
// evaluates the submission and stores its response.
func respond(c *fiber.Ctx, container *app.Container, tool string, evaluate func() submissionResponse) error {
	ctx := c.UserContext()
	key := strings.TrimSpace(c.Get("Idempotency-Key"))
	if key != "" {
		if data, ok := container.Idempotency.Get(ctx, tool, key); ok {
			c.Set("Content-Type", "application/json")
			c.Set("Idempotent-Replayed", "true")
			return c.Send(data)
		}
	}

	resp := evaluate()
	if key != "" {
		if payload, err := json.Marshal(resp); err == nil {
			container.Idempotency.Set(ctx, tool, key, payload)
		}
	}
	return c.JSON(resp)
}
