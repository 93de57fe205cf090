package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show balanced equations",
	Long: `Lists the equations balanced by this process, oldest first.

History lives for the lifetime of the process, so it is mainly useful from
the long-running commands (serve, mcp serve, tui) and their interfaces.`,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the history",
	RunE:  runHistoryClear,
}

// historyEntryOutput is the --json shape of one history entry.
type historyEntryOutput struct {
	ID        string    `json:"id"`
	Original  string    `json:"original"`
	Balanced  string    `json:"balanced"`
	CreatedAt time.Time `json:"created_at"`
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	entries, err := historyService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		out := make([]historyEntryOutput, len(entries))
		for i, e := range entries {
			out[i] = historyEntryOutput{ID: e.ID, Original: e.Original, Balanced: e.Balanced, CreatedAt: e.CreatedAt}
		}
		return printJSON(cmd, out)
	}

	if len(entries) == 0 {
		cmd.Println("No equations balanced yet.")
		return nil
	}
	for i, e := range entries {
		cmd.Printf("  [%d] %s\n", i+1, e.Balanced)
		cmd.Printf("      %s  %s\n", e.CreatedAt.Local().Format(time.DateTime), e.Original)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}
