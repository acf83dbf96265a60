package cmd

import (
	"fmt"

	"github.com/abhisek/lingo/internal/progress"
	"github.com/abhisek/lingo/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		prog := progress.New()
		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			prog = progress.FromData(snap.Data.Progress)
		}

		fmt.Printf("XP:                %d\n", prog.XP)
		fmt.Printf("Hearts:            %d\n", prog.Hearts)
		fmt.Printf("Streak:            %d day(s)\n", prog.Streak)
		fmt.Printf("Lessons completed: %d\n", prog.CompletedCount())

		total, correct, err := st.EventRepo().AnswerStats(ctx)
		if err != nil {
			return fmt.Errorf("answer stats: %w", err)
		}
		fmt.Printf("Answers graded:    %d\n", total)
		if total > 0 {
			fmt.Printf("Accuracy:          %.0f%%\n", float64(correct)/float64(total)*100)
		}
		return nil
	},
}
