package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nlstn/go-rexp"
)

func newExprCmd(a *app) *cobra.Command {
	var (
		flatten bool
		infix   bool
	)

	cmd := &cobra.Command{
		Use:   "expr EXPRESSION",
		Short: "Translate an R expression",
		Long: `Translate an R expression into an expression tree.

In text mode the tree is printed in functional form, e.g.
  rexpr expr "(1.0 + log(A / B)) ^ 2"
prints
  pow(+(1.0, ln(/(A, B))), 2)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := a.translator.TranslateExpression(cmd.Context(), args[0], flatten)
			if err != nil {
				return err
			}
			text := rexp.FormatApply(node)
			if infix {
				text = node.String()
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, text, rexp.Describe(node))
		},
	}

	cmd.Flags().BoolVar(&flatten, "flatten", false, "Collect chains of the same logical operator into one node")
	cmd.Flags().BoolVar(&infix, "infix", false, "Print the tree back in R syntax instead of functional form")
	return cmd
}

func newIntervalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interval INTERVAL",
		Short: "Parse an interval literal such as (0, 1]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interval, err := a.translator.TranslateInterval(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			text := fmt.Sprintf("%s %s", interval.Closure(), interval.String())
			return render(cmd.OutOrStdout(), a.cfg.Output, text, rexp.Describe(interval))
		},
	}
}

func newSplitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "split TERM",
		Short: "Split a formula interaction term such as A:B into variable names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.translator.SplitInteractionTerm(cmd.Context(), args[0])
			return render(cmd.OutOrStdout(), a.cfg.Output, strings.Join(names, "\n"), names)
		},
	}
}

func newTypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "type CLASS",
		Short: "Show the data type used for an R column class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.translator.DataTypeOf(args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, dt.String(), map[string]string{
				"class": args[0],
				"type":  dt.String(),
			})
		},
	}
}

type tokenRow struct {
	Pos   int    `json:"pos" yaml:"pos"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens EXPRESSION",
		Short: "Show the tokens of an R expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := rexp.Tokenize(args[0])
			if err != nil {
				return err
			}

			rows := make([]tokenRow, 0, len(tokens))
			t := table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Pos", "Type", "Value"})
			for _, tok := range tokens {
				row := tokenRow{Pos: tok.Pos, Type: tok.Type.String(), Value: tok.Value}
				rows = append(rows, row)
				t.AppendRow(table.Row{row.Pos, row.Type, row.Value})
			}

			return render(cmd.OutOrStdout(), a.cfg.Output, t.Render(), rows)
		},
	}
}
