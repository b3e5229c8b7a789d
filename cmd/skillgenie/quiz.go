package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillgenie/skillgenie/internal/content"
	"github.com/skillgenie/skillgenie/internal/fallback"
	"github.com/skillgenie/skillgenie/internal/types"
)

var (
	quizChapter string
	quizSkill   string
	quizServer  string
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Fetch a quiz from the content service, with offline fallback",
	Long:  `Fetch the quiz for a chapter of a skill. When the remote call fails, a deterministic local quiz is synthesized instead.`,
	RunE:  runQuiz,
}

func init() {
	quizCmd.Flags().StringVar(&quizChapter, "chapter", "", "Chapter title")
	quizCmd.Flags().StringVar(&quizSkill, "skill", "", "Skill name")
	quizCmd.Flags().StringVar(&quizServer, "server", "", "Content service base URL (default $SKILLGENIE_SERVER_URL)")
	_ = quizCmd.MarkFlagRequired("chapter")
	_ = quizCmd.MarkFlagRequired("skill")
	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, _ []string) error {
	baseURL := quizServer
	if baseURL == "" {
		baseURL = os.Getenv("SKILLGENIE_SERVER_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Two-step pipeline: attempt the remote fetch, then explicitly fall
	// back. The two steps stay separate so each is testable on its own.
	quiz, err := fetchQuiz(cmd, baseURL)
	if err != nil {
		var contentErr *content.Error
		if errors.As(err, &contentErr) {
			fmt.Fprintf(os.Stderr, "Remote quiz unavailable (%s); using offline questions.\n", contentErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Remote quiz unavailable; using offline questions.\n")
		}
		quiz = fallback.Quiz(quizSkill, quizChapter)
	}

	return printJSON(quiz)
}

func fetchQuiz(cmd *cobra.Command, baseURL string) (*types.Quiz, error) {
	client := content.NewClient(baseURL)
	return client.FetchQuiz(cmd.Context(), quizChapter, quizSkill)
}
