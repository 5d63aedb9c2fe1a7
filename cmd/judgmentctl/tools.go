package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ncecere/judgment-tools/internal/catalog"
	"github.com/ncecere/judgment-tools/internal/decision"
	"github.com/ncecere/judgment-tools/internal/tools/tiebreaker"
	"github.com/ncecere/judgment-tools/internal/tools/validity"
)

func newDecideCmd(opts *rootOptions) *cobra.Command {
	var (
		optionA, optionB, constraint string
		aMeets, bMeets               string
	)
	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Run the Constraint Tie-Breaker",
		Example: `  judgmentctl decide --a Notion --b "Apple Notes" \
    --constraint "I must be able to use it offline." --a-meets yes --b-meets no`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := tiebreaker.New(nil).Decide(tiebreaker.Input{
				OptionA:    optionA,
				OptionB:    optionB,
				Constraint: constraint,
				AMeets:     tiebreaker.ParseMeetsValue(aMeets),
				BMeets:     tiebreaker.ParseMeetsValue(bMeets),
			})
			return printResult(cmd.OutOrStdout(), tiebreaker.Slug, res, opts.jsonOutput)
		},
	}
	cmd.Flags().StringVar(&optionA, "a", "", "Option A label")
	cmd.Flags().StringVar(&optionB, "b", "", "Option B label")
	cmd.Flags().StringVar(&constraint, "constraint", "", `One deciding constraint ("I must..." or "I can't...")`)
	cmd.Flags().StringVar(&aMeets, "a-meets", string(tiebreaker.MeetsNotSure), "Does option A meet the constraint: yes, no, not_sure")
	cmd.Flags().StringVar(&bMeets, "b-meets", string(tiebreaker.MeetsNotSure), "Does option B meet the constraint: yes, no, not_sure")
	return cmd
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var in validity.Input
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the Constraint Validity Check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printResult(cmd.OutOrStdout(), validity.Slug, validity.Check(in), opts.jsonOutput)
		},
	}
	cmd.Flags().StringVar(&in.Constraint, "constraint", "", `Constraint sentence starting with "I must" or "I can't"`)
	cmd.Flags().StringVar(&in.Scenario, "scenario", "", `Scenario sentence starting with "When"`)
	cmd.Flags().StringVar(&in.Regret, "regret", "", `Regret test sentence starting with "If"`)
	return cmd
}

func newToolsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the registered tools in presentation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tools := catalog.MustDefaultRegistry().All()
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, tools)
			}
			for _, t := range tools {
				status := string(t.Status)
				if status == "" {
					status = "-"
				}
				fmt.Fprintf(out, "%-28s %-10s %s\n", t.Slug, status, t.OneLiner)
			}
			return nil
		},
	}
}

type resultJSON struct {
	Tool    string            `json:"tool"`
	Rule    decision.Rule     `json:"rule"`
	Output  *decision.Output  `json:"output,omitempty"`
	Refusal *decision.Refusal `json:"refusal,omitempty"`
}

func printResult(w io.Writer, tool string, res decision.Result, asJSON bool) error {
	if asJSON {
		return writeJSON(w, resultJSON{Tool: tool, Rule: res.Rule, Output: res.Output, Refusal: res.Refusal})
	}
	if res.Refused() {
		_, err := fmt.Fprintln(w, res.Refusal.Reason)
		return err
	}
	_, err := fmt.Fprintln(w, res.Output.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
