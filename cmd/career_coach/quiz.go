package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/quiz"
	"github.com/jonathan/career-coach/internal/types"
)

var (
	quizSkills     string
	quizBio        string
	quizCheck      bool
	quizConfigPath string
)

var quizCmd = &cobra.Command{
	Use:   "quiz <industry>",
	Short: "Generate a quiz batch ad hoc",
	Long:  "Generate a 10-question quiz for an industry and print it. With --check the batch is scored against its own answer key, which must grade 100%, as a sanity pass over the scoring engine.",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuiz,
}

func init() {
	quizCmd.Flags().StringVar(&quizSkills, "skills", "", "Comma-separated skills to tailor questions to")
	quizCmd.Flags().StringVar(&quizBio, "bio", "", "Short professional bio for question tailoring")
	quizCmd.Flags().BoolVar(&quizCheck, "check", false, "Score the batch against its own answer key and print the result")
	quizCmd.Flags().StringVar(&quizConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(quizCmd)
}

func runQuiz(_ *cobra.Command, args []string) error {
	cfg, err := resolveConfig(quizConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := newCompletionClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var skills []string
	if quizSkills != "" {
		for _, s := range strings.Split(quizSkills, ",") {
			skills = append(skills, strings.TrimSpace(s))
		}
	}

	questions, err := quiz.Generate(ctx, client, quiz.GenerateParams{
		Industry: args[0],
		Skills:   skills,
		Bio:      quizBio,
	})
	if err != nil {
		return fmt.Errorf("failed to generate quiz: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintQuizQuestions(questions)

	if quizCheck {
		result, err := quiz.Score(questions, answerKey(questions))
		if err != nil {
			return fmt.Errorf("failed to score batch: %w", err)
		}
		printer.PrintQuizResult(result, quiz.PerfectScoreTip)
		if result.Score != 100 {
			return fmt.Errorf("answer-key self check scored %.1f%%, expected 100%%", result.Score)
		}
	}

	return nil
}

// answerKey builds the answer map that selects every question's own
// correctAnswer.
func answerKey(questions []types.QuizQuestion) map[int]string {
	answers := make(map[int]string, len(questions))
	for i, q := range questions {
		answers[i] = q.CorrectAnswer
	}
	return answers
}
