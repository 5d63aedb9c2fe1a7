package catalog

import (
	"fmt"
	"strings"
)

// Status labels a tool's maturity.
type Status string

const (
	StatusProbe     Status = "Probe"
	StatusCandidate Status = "Candidate"
	StatusMachine   Status = "Machine"
)

// Tool describes one entry in the tool index.
type Tool struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	OneLiner string `json:"one_liner"`
	Status   Status `json:"status,omitempty"`
}

// Path returns the tool page route.
func (t Tool) Path() string {
	return "/tools/" + t.Slug
}

// DefaultTools is the shipped tool index, in presentation order.
var DefaultTools = []Tool{
	{
		Slug:     "constraint-tie-breaker",
		Name:     "Constraint Tie-Breaker",
		OneLiner: "Choose between two options using one non-negotiable constraint.",
		Status:   StatusProbe,
	},
	{
		Slug:     "constraint-validity-check",
		Name:     "Constraint Validity Check",
		OneLiner: "Check that a constraint is one measurable rule before you use it.",
		Status:   StatusProbe,
	},
}

// Registry is the read-only, ordered tool index.
type Registry struct {
	tools  []Tool
	bySlug map[string]int
}

// NewRegistry validates tools and freezes their order.
func NewRegistry(tools []Tool) (*Registry, error) {
	reg := &Registry{
		tools:  make([]Tool, 0, len(tools)),
		bySlug: make(map[string]int, len(tools)),
	}
	for i, tool := range tools {
		slug := NormalizeSlug(tool.Slug)
		if slug == "" {
			return nil, fmt.Errorf("tools[%d].slug must be provided", i)
		}
		if _, dup := reg.bySlug[slug]; dup {
			return nil, fmt.Errorf("tools[%d].slug %q is duplicated", i, slug)
		}
		if strings.TrimSpace(tool.Name) == "" {
			return nil, fmt.Errorf("tools[%d].name must be provided", i)
		}
		switch tool.Status {
		case "", StatusProbe, StatusCandidate, StatusMachine:
		default:
			return nil, fmt.Errorf("tools[%d].status must be Probe, Candidate, or Machine", i)
		}
		tool.Slug = slug
		reg.bySlug[slug] = len(reg.tools)
		reg.tools = append(reg.tools, tool)
	}
	return reg, nil
}

// MustDefaultRegistry builds the registry from DefaultTools.
func MustDefaultRegistry() *Registry {
	reg, err := NewRegistry(DefaultTools)
	if err != nil {
		panic(err)
	}
	return reg
}

// All returns a copy of the tools in presentation order.
func (r *Registry) All() []Tool {
	if r == nil {
		return nil
	}
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Lookup finds a tool by slug.
func (r *Registry) Lookup(slug string) (Tool, bool) {
	if r == nil {
		return Tool{}, false
	}
	idx, ok := r.bySlug[NormalizeSlug(slug)]
	if !ok {
		return Tool{}, false
	}
	return r.tools[idx], true
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tools)
}
