package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/interview-pilot/interview-pilot/internal/assessment"
	"github.com/interview-pilot/interview-pilot/internal/interview"
	"github.com/interview-pilot/interview-pilot/internal/logger"
)

const (
	PromptShowBreakdown = "Show per-answer breakdown"
	PromptDumpSession   = "Dump session to file"
	PromptExit          = "Exit"
)

var errExit = errors.New("exit requested")

var afterReportPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowBreakdown, PromptDumpSession, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full scored practice interview on the projects from a resume",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// run is the main command for the cli.
func run(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the interview-pilot", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	text, err := readResume(config)
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err),
			zap.String("hint", "pass --resume or set the 'resume' key in the configuration file"),
		)
	}

	pipe, err := newPipeline(ctx, config, logger)
	if err != nil {
		logger.Fatal("building pipeline", zap.Error(err))
	}

	projects := pipe.extractor.Extract(ctx, text)
	if projects.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no projects found in resume"))
		return
	}

	logger.Info("projects ready", zap.Any("titles", projects.Titles()))

	questions := pipe.synthesizer.Generate(ctx, projects)
	logger.Info("questions ready", zap.Int("count", len(questions)))

	session := interview.NewSession()
	logger.Info("starting interview session", zap.String("session_id", session.ID()))

	for i, question := range questions {
		fmt.Printf("\n[%d/%d] (%s) %s\n", i+1, len(questions), question.Category, question.QuestionText)

		answer, err := askAnswer()
		if err != nil {
			logger.Fatal("reading answer", zap.Error(err))
		}

		analysis := pipe.scorer.Score(ctx, question, answer, projects.FindByTitle(question.ProjectTitle))
		session.Record(analysis)

		logger.Info("answer scored",
			zap.String("question_id", question.ID),
			zap.Int("score", analysis.Score),
			zap.String("complexity", analysis.Complexity),
		)
	}

	metrics := session.Metrics()
	skill := assessment.AssessSkill(projects)
	comparisons := assessment.IndustryComparison(meanScore(session))
	report := assessment.ComposeFeedback(metrics, comparisons, skill, projects)

	fmt.Println("\n" + report)

	for {
		if err := handleAction(session, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func askAnswer() (string, error) {
	prompt := promptui.Prompt{
		Label: "Your answer",
	}
	return prompt.Run()
}

func handleAction(session *interview.Session, logger *zap.Logger) error {
	_, action, err := afterReportPrompt.Run()
	if err != nil {
		return err
	}

	switch action {
	case PromptShowBreakdown:
		pretty, _ := json.MarshalIndent(session.Analyses(), "", "  ")
		fmt.Println(string(pretty))
		return nil
	case PromptDumpSession:
		filename, err := dumpSession(session)
		if err != nil {
			return fmt.Errorf("dump session to file: %w", err)
		}
		logger.Info("dumping session to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func dumpSession(session *interview.Session) (string, error) {
	file, err := os.CreateTemp("", "interview_session_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	out := struct {
		Metrics  *interview.Metrics          `json:"metrics"`
		Analyses []*interview.AnswerAnalysis `json:"analyses"`
	}{
		Metrics:  session.Metrics(),
		Analyses: session.Analyses(),
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func meanScore(session *interview.Session) int {
	analyses := session.Analyses()
	if len(analyses) == 0 {
		return 0
	}

	total := 0
	for _, a := range analyses {
		total += a.Score
	}
	return total / len(analyses)
}
