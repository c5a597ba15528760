package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/aptiq/internal/questionbank"
	"github.com/abhisek/aptiq/internal/session"
	"github.com/abhisek/aptiq/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show assessment statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath, err := resolveDataPath(cmd)
		if err != nil {
			return err
		}

		doc, err := store.New(dataPath).Load()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "progress file unreadable, showing empty stats:", err)
		}
		if len(doc.History) == 0 {
			fmt.Println("No tests completed yet.")
			return nil
		}

		var sum, best int
		perCategory := map[string][]store.HistoryRecord{}
		for _, r := range doc.History {
			sum += r.Score
			if r.Score > best {
				best = r.Score
			}
			perCategory[r.Category] = append(perCategory[r.Category], r)
		}

		fmt.Printf("Tests completed:  %d\n", len(doc.History))
		fmt.Printf("Average score:    %d%%\n", sum/len(doc.History))
		fmt.Printf("Best score:       %d%% (%s)\n\n", best, session.GradeLabel(best))

		bank := questionbank.NewBank()
		for _, key := range append([]string{questionbank.CategoryBlended}, bank.Categories()...) {
			records := perCategory[key]
			if len(records) == 0 {
				continue
			}
			catBest := 0
			for _, r := range records {
				if r.Score > catBest {
					catBest = r.Score
				}
			}
			last := records[len(records)-1]
			fmt.Printf("%-28s %2d attempts   best %3d%%   last %3d%%\n",
				bank.Info(key).Name, len(records), catBest, last.Score)
		}
		return nil
	},
}
