package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillgenie/skillgenie/internal/prefs"
	"github.com/skillgenie/skillgenie/internal/resolver"
	"github.com/skillgenie/skillgenie/internal/types"
)

var (
	questionnaireFile string
	questionnaireDir  string
)

var questionnaireCmd = &cobra.Command{
	Use:   "questionnaire",
	Short: "Manage the local questionnaire record",
}

var questionnaireSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a questionnaire from a JSON file, replacing any prior record",
	RunE:  runQuestionnaireSave,
}

var questionnaireShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored questionnaire",
	RunE:  runQuestionnaireShow,
}

var questionnaireClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored questionnaire",
	RunE:  runQuestionnaireClear,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print personalized recommendations derived from the stored questionnaire",
	RunE:  runRecommend,
}

func init() {
	questionnaireCmd.PersistentFlags().StringVar(&questionnaireDir, "prefs-dir", "", "Directory holding the questionnaire file")
	questionnaireSaveCmd.Flags().StringVar(&questionnaireFile, "file", "", "Path to the questionnaire JSON file")
	_ = questionnaireSaveCmd.MarkFlagRequired("file")

	questionnaireCmd.AddCommand(questionnaireSaveCmd, questionnaireShowCmd, questionnaireClearCmd)
	recommendCmd.Flags().StringVar(&questionnaireDir, "prefs-dir", "", "Directory holding the questionnaire file")
	rootCmd.AddCommand(questionnaireCmd, recommendCmd)
}

func localStore() *prefs.FileStore {
	dir := questionnaireDir
	if dir == "" {
		dir = os.Getenv("SKILLGENIE_PREFS_DIR")
	}
	if dir == "" {
		dir = prefs.DefaultDir()
	}
	return prefs.NewFileStore(dir)
}

func runQuestionnaireSave(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(questionnaireFile)
	if err != nil {
		return fmt.Errorf("failed to read questionnaire file: %w", err)
	}

	var record types.QuestionnaireRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse questionnaire JSON: %w", err)
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid questionnaire: %w", err)
	}

	stored, err := localStore().Save(cmd.Context(), record)
	if err != nil {
		return err
	}
	return printJSON(stored)
}

func runQuestionnaireShow(cmd *cobra.Command, _ []string) error {
	stored, err := localStore().Load(cmd.Context())
	if err != nil {
		if prefs.IsAbsent(err) {
			fmt.Println("No questionnaire stored. Defaults will be used for recommendations.")
			return nil
		}
		return err
	}
	return printJSON(stored)
}

func runQuestionnaireClear(cmd *cobra.Command, _ []string) error {
	if err := localStore().Clear(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Questionnaire cleared.")
	return nil
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	r := resolver.New(localStore())
	bundle := r.PersonalizedRecommendations(cmd.Context())
	if bundle == nil {
		fmt.Println("No questionnaire stored. Run 'skillgenie questionnaire save' first.")
		return nil
	}
	return printJSON(bundle)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
