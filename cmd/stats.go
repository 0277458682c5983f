package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayaka/kotoba/internal/store"
	"github.com/ayaka/kotoba/internal/taxonomy"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		byTopic, err := repo.AnswersByTopic(ctx)
		if err != nil {
			return fmt.Errorf("query topic stats: %w", err)
		}
		if len(byTopic) == 0 {
			fmt.Println("No practice recorded yet.")
			return nil
		}

		fmt.Println("Accuracy by Topic")
		printAnswerStats(byTopic, topicLabel)

		byCategory, err := repo.AnswersByCategory(ctx)
		if err != nil {
			return fmt.Errorf("query category stats: %w", err)
		}

		fmt.Println()
		fmt.Println("Accuracy by Error Category")
		printAnswerStats(byCategory, categoryLabel)

		sources, err := repo.RoundsBySource(ctx)
		if err != nil {
			return fmt.Errorf("query round sources: %w", err)
		}

		if len(sources) > 0 {
			fmt.Println()
			fmt.Println("Round Sources")
			fmt.Println(strings.Repeat("─", 40))
			for _, src := range sources {
				fmt.Printf("%-16s  %6d\n", src.Source, src.Rounds)
			}
		}

		return nil
	},
}

func printAnswerStats(stats []store.AnswerStat, label func(string) string) {
	fmt.Println(strings.Repeat("─", 56))
	fmt.Printf("%-28s  %8s  %8s  %6s\n", "", "Answers", "Correct", "Acc")
	fmt.Println(strings.Repeat("─", 56))

	var totalAnswers, totalCorrect int
	for _, st := range stats {
		acc := 0.0
		if st.Answers > 0 {
			acc = float64(st.Correct) / float64(st.Answers) * 100
		}
		fmt.Printf("%-28s  %8d  %8d  %5.0f%%\n", label(st.Key), st.Answers, st.Correct, acc)
		totalAnswers += st.Answers
		totalCorrect += st.Correct
	}

	fmt.Println(strings.Repeat("─", 56))
	totalAcc := 0.0
	if totalAnswers > 0 {
		totalAcc = float64(totalCorrect) / float64(totalAnswers) * 100
	}
	fmt.Printf("%-28s  %8d  %8d  %5.0f%%\n", "TOTAL", totalAnswers, totalCorrect, totalAcc)
}

func topicLabel(id string) string {
	if t, ok := taxonomy.TopicByID(id); ok {
		return t.Name
	}
	return id
}

func categoryLabel(id string) string {
	if c, ok := taxonomy.CategoryByID(id); ok {
		return c.Name
	}
	return id
}
