package main

import (
	"fmt"
	"strconv"

	"vocabulaire/internal/service"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the terms missed most often",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.History.Enabled {
				return fmt.Errorf("quiz history is disabled, set HISTORY_ENABLED=true")
			}

			repo, err := a.openHistory()
			if err != nil {
				return err
			}

			stats, err := service.NewStatsService(repo, a.cfg.History.RetentionDays, a.logger).MostMissed(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(out, "No mistakes recorded yet.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Term", "Misses", "Last missed")
			for _, s := range stats {
				t.Row(s.Term, strconv.Itoa(s.Misses), s.LastMiss.Local().Format("2006-01-02 15:04"))
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of terms to show")
	return cmd
}
