package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/interview-pilot/interview-pilot/internal/logger"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions for the projects found in a resume",
	Run: func(cmd *cobra.Command, _ []string) {
		questions(cmd)
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)
}

func questions(_ *cobra.Command) {
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
		logger.Fatal("reading resume", zap.Error(err))
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

	generated := pipe.synthesizer.Generate(ctx, projects)

	pretty, err := json.MarshalIndent(generated, "", "  ")
	if err != nil {
		logger.Fatal("encoding output", zap.Error(err))
	}

	fmt.Println(string(pretty))
}
