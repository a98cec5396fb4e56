package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/interview-pilot/interview-pilot/internal/ai"
	"github.com/interview-pilot/interview-pilot/internal/ai/gemini"
	"github.com/interview-pilot/interview-pilot/internal/ai/huggingface"
	"github.com/interview-pilot/interview-pilot/internal/interview"
	"github.com/interview-pilot/interview-pilot/internal/logger"
	"github.com/interview-pilot/interview-pilot/internal/resume"
	"github.com/interview-pilot/interview-pilot/internal/secrets"
)

const (
	app = "interview-pilot"

	providerHuggingFace = "huggingface"
	providerGemini      = "gemini"
)

type Config struct {
	Resume string    `mapstructure:"resume"`
	AI     *AIConfig `mapstructure:"ai"`
}

type AIConfig struct {
	Enabled     bool               `mapstructure:"enabled"`
	Provider    string             `mapstructure:"provider"`
	HuggingFace *HuggingFaceConfig `mapstructure:"huggingface"`
	Gemini      *GeminiConfig      `mapstructure:"gemini"`
}

type HuggingFaceConfig struct {
	APIKeyFile    string `mapstructure:"api-key-file"`
	Model         string `mapstructure:"model"`
	AnalysisModel string `mapstructure:"analysis-model"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "interview-pilot extracts projects from a resume and runs scored practice interviews on them",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interview-pilot.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("resume", "r", "", "path to the resume text file")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("resume", rootCmd.PersistentFlags().Lookup("resume"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// We can't proceed if an explicitly given config file parsed with error.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// The default config file is optional: every command works with flags
	// and built-in defaults alone.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	return config, nil
}

// pipeline bundles the configured core components shared by the commands.
type pipeline struct {
	extractor   *resume.Extractor
	synthesizer *interview.Synthesizer
	scorer      *interview.Scorer
}

// newPipeline wires the extraction and scoring components according to the
// configuration. With no AI section (the default) every component runs on its
// deterministic local strategies.
func newPipeline(ctx context.Context, config *Config, log *zap.Logger) (*pipeline, error) {
	generator, classifier, err := newProviders(ctx, config.AI, log)
	if err != nil {
		return nil, err
	}

	tiers := []resume.Tier{}
	if generator != nil {
		tiers = append(tiers, resume.NewInferenceTier(generator, log))
	}
	tiers = append(tiers, resume.NewPatternTier(), resume.NewEmergencyTier())

	return &pipeline{
		extractor:   resume.NewExtractor(tiers, log),
		synthesizer: interview.NewSynthesizer(generator, log),
		scorer:      interview.NewScorer(classifier, log),
	}, nil
}

func newProviders(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Generator, ai.SentimentClassifier, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	switch provider {
	case "", providerHuggingFace:
		hfCfg := cfg.HuggingFace
		if hfCfg == nil {
			hfCfg = &HuggingFaceConfig{}
		}

		token, err := secrets.Load(secrets.Source{
			Name: "huggingface api key",
			File: hfCfg.APIKeyFile,
			Env:  "HF_API_KEY",
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%w (set ai.huggingface.api-key-file or HF_API_KEY)", err)
		}

		client := huggingface.New(token, hfCfg.Model, hfCfg.AnalysisModel,
			logger.WithCommonFields(log, providerHuggingFace, hfCfg.Model))
		return client, client, nil

	case providerGemini:
		gemCfg := cfg.Gemini
		if gemCfg == nil {
			gemCfg = &GeminiConfig{}
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: gemCfg.APIKeyFile,
			Env:  "GEMINI_API_KEY",
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
		}

		generator, err := gemini.NewGenerator(ctx, apiKey, gemCfg.Model, gemCfg.MaxRetries,
			logger.WithCommonFields(log, providerGemini, gemCfg.Model))
		if err != nil {
			return nil, nil, err
		}

		// Sentiment classification is HuggingFace-only; scoring falls back
		// to the neutral default with this provider.
		return generator, nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}
