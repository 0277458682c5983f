package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ayaka/kotoba/internal/llm"
	"github.com/ayaka/kotoba/internal/quiz"
	"github.com/ayaka/kotoba/internal/quizgen"
	"github.com/ayaka/kotoba/internal/store"
	"github.com/ayaka/kotoba/internal/tui"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	engine, err := buildEngine(context.Background(), st)
	if err != nil {
		return err
	}

	return tui.Run(engine)
}

// buildEngine wires the generator, session store and event log into a
// quiz engine. Works without an LLM provider: the engine then serves
// template sentences only.
func buildEngine(ctx context.Context, st *store.Store) (*quiz.Engine, error) {
	var generator quizgen.Generator
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to template sentences.")
	} else {
		generator = quizgen.New(provider, quizgen.DefaultConfig())
	}

	return quiz.NewEngine(generator, quiz.NewSessionStore(), st.EventRepo()), nil
}
