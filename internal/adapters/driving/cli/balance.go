package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
)

var (
	balanceJSON    bool
	balanceExplain bool
)

var balanceCmd = &cobra.Command{
	Use:   "balance <equation>",
	Short: "Balance a chemical equation",
	Long: `Balances a chemical equation and prints it with minimal positive integer
coefficients.

Arguments are joined with spaces, so quoting is optional unless the equation
uses '->':

  chembalance balance H2 + O2 = H2O
  chembalance balance "CH4 + O2 -> CO2 + H2O"

Use --explain to print the element matrix, its reduced row-echelon form and
the null-space basis the coefficients are derived from.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().BoolVar(&balanceJSON, "json", false, "output as JSON")
	balanceCmd.Flags().BoolVar(&balanceExplain, "explain", false, "show the intermediate linear algebra")
	rootCmd.AddCommand(balanceCmd)
}

// balanceOutput is the --json shape of a balanced equation.
type balanceOutput struct {
	Original     string  `json:"original"`
	Balanced     string  `json:"balanced"`
	Coefficients []int64 `json:"coefficients"`
	Nullity      int     `json:"nullity"`
}

// explainOutput is the --json --explain shape.
type explainOutput struct {
	Elements []string   `json:"elements"`
	Columns  []string   `json:"compounds"`
	Matrix   [][]int64  `json:"matrix"`
	Reduced  [][]string `json:"reduced"`
	Pivots   []int      `json:"pivot_columns"`
	Free     []int      `json:"free_columns"`
	Basis    [][]string `json:"basis"`
	Balanced string     `json:"balanced,omitempty"`
}

func runBalance(cmd *cobra.Command, args []string) error {
	if balanceService == nil {
		return errors.New("balance service not configured")
	}
	equation := strings.Join(args, " ")

	if balanceExplain {
		return runExplain(cmd, equation)
	}

	result, err := balanceService.Balance(cmd.Context(), equation)
	if err != nil {
		return err
	}

	if balanceJSON {
		return printJSON(cmd, balanceOutput{
			Original:     result.Original,
			Balanced:     result.Text,
			Coefficients: result.Coefficients(),
			Nullity:      result.Nullity,
		})
	}

	cmd.Println(result.Text)
	if result.Ambiguous() {
		cmd.PrintErrf("warning: %d independent balancings exist; showing one of them\n", result.Nullity)
	}
	return nil
}

func runExplain(cmd *cobra.Command, equation string) error {
	exp, err := balanceService.Explain(cmd.Context(), equation)
	if err != nil {
		return err
	}

	out := explainOutput{
		Elements: exp.Matrix.Elements,
		Columns:  exp.Matrix.Columns,
		Matrix:   exp.Matrix.Entries,
		Reduced:  ratRows(exp.Reduced),
		Pivots:   exp.PivotColumns,
		Free:     exp.FreeColumns,
		Basis:    ratRows(exp.Basis),
	}

	// The explanation is printed even when balancing fails.
	result, balanceErr := balanceService.Balance(cmd.Context(), equation)
	if balanceErr == nil {
		out.Balanced = result.Text
	}

	if balanceJSON {
		if err := printJSON(cmd, out); err != nil {
			return err
		}
		return balanceErr
	}

	cmd.Println("Matrix (rows: elements, columns: compounds; products negated)")
	printTable(cmd, out.Elements, out.Columns, formatInts(out.Matrix))
	cmd.Println()
	cmd.Println("Reduced row-echelon form")
	printTable(cmd, nil, out.Columns, out.Reduced)
	cmd.Println()
	cmd.Printf("Rank: %d  Nullity: %d\n", len(out.Pivots), len(out.Free))
	for i, v := range out.Basis {
		cmd.Printf("Basis %d: (%s)\n", i+1, strings.Join(v, ", "))
	}
	if balanceErr != nil {
		return balanceErr
	}

	cmd.Println()
	cmd.Println(out.Balanced)
	return nil
}

// printTable prints rows under column headers, optionally labelled.
func printTable(cmd *cobra.Command, labels, headers []string, rows [][]string) {
	width := 0
	for _, h := range headers {
		width = max(width, len(h))
	}
	for _, row := range rows {
		for _, cell := range row {
			width = max(width, len(cell))
		}
	}
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, len(l))
	}

	line := func(label string, cells []string) {
		var b strings.Builder
		if labels != nil {
			fmt.Fprintf(&b, "  %-*s", labelWidth, label)
		}
		for _, c := range cells {
			fmt.Fprintf(&b, "  %*s", width, c)
		}
		cmd.Println(strings.TrimRight(b.String(), " "))
	}

	line("", headers)
	for i, row := range rows {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		line(label, row)
	}
}

func formatInts(rows [][]int64) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = fmt.Sprint(v)
		}
	}
	return out
}

func ratRows(rows [][]*big.Rat) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, q := range row {
			out[i][j] = q.RatString()
		}
	}
	return out
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
