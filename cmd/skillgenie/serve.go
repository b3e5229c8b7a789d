package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/skillgenie/skillgenie/internal/config"
	"github.com/skillgenie/skillgenie/internal/db"
	"github.com/skillgenie/skillgenie/internal/llm"
	"github.com/skillgenie/skillgenie/internal/prefs"
	"github.com/skillgenie/skillgenie/internal/server"
	"github.com/skillgenie/skillgenie/internal/videos"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the roadmap, analytics, quiz, video and questionnaire endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	deps := server.Deps{}

	// Storage: Postgres when configured, otherwise the local file store.
	// Authentication requires the database and is enabled with it.
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		deps.Store = db.NewQuestionnaireStore(database, "")

		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return fmt.Errorf("failed to create JWT config: %w", err)
		}
		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			return fmt.Errorf("failed to create password config: %w", err)
		}
		deps.Auth = server.NewAuthService(database, passwordConfig, server.NewJWTService(jwtConfig))
	} else {
		deps.Store = prefs.NewFileStore(prefsDir(cfg))
		log.Println("DATABASE_URL not set: using the local file store, authentication disabled")
	}

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, nil, cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer func() { _ = client.Close() }()
		deps.Generator = llm.NewGenerator(client)
	} else {
		log.Println("GEMINI_API_KEY not set: content endpoints will serve fallback payloads")
	}

	if cfg.YouTubeAPIKey != "" {
		videoClient, err := videos.NewClient(ctx, cfg.YouTubeAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create YouTube client: %w", err)
		}
		deps.Videos = videoClient
	} else {
		log.Println("YOUTUBE_API_KEY not set: video recommendations disabled")
	}

	srv, err := server.New(server.Config{Port: cfg.Port}, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}

// loadConfig merges the optional config file over environment defaults.
func loadConfig() (config.Config, error) {
	defaults := config.FromEnv()
	if serveConfigPath == "" {
		merged := defaults.MergeWithDefaults(config.Config{})
		return merged, merged.Validate()
	}

	fileCfg, err := config.LoadConfig(serveConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	merged := fileCfg.MergeWithDefaults(defaults)
	if merged.Port == 0 {
		merged.Port = 8080
	}
	return merged, merged.Validate()
}

func prefsDir(cfg config.Config) string {
	if cfg.PrefsDir != "" {
		return cfg.PrefsDir
	}
	return prefs.DefaultDir()
}
