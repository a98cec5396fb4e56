package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/interview-pilot/interview-pilot/internal/assessment"
	"github.com/interview-pilot/interview-pilot/internal/logger"
	"github.com/interview-pilot/interview-pilot/internal/resume"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured projects from a resume and print them with a skill assessment",
	Run: func(cmd *cobra.Command, _ []string) {
		extract(cmd)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func extract(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

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
	skill := assessment.AssessSkill(projects)

	out := struct {
		Projects   []*resume.Project           `json:"projects"`
		Assessment *assessment.SkillAssessment `json:"assessment"`
	}{
		Projects:   projects.Items,
		Assessment: skill,
	}

	pretty, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Fatal("encoding output", zap.Error(err))
	}

	fmt.Println(string(pretty))
}

// readResume loads the resume text from the configured path or the --resume
// flag.
func readResume(config *Config) (string, error) {
	path := strings.TrimSpace(viper.GetString("resume"))
	if path == "" && config != nil {
		path = strings.TrimSpace(config.Resume)
	}
	if path == "" {
		return "", fmt.Errorf("resume file is not configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading resume file %q: %w", path, err)
	}
	return string(data), nil
}
