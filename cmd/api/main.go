// Package main is the entry point for the ACD annotator service. It loads
// configuration, builds the configured annotator, runs its startup hook and
// serves the process and status endpoints until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/internal/annotators"
	"github.com/acd-annotator/acd-annotator-go/internal/config"
	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/server"
	"github.com/acd-annotator/acd-annotator-go/internal/service"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
)

// Version information is set during build time through linker flags.
var (
	// version represents the release version of the application.
	version = "dev"

	// commit is the git commit hash from which the application was built.
	commit = "none"

	// buildDate is the timestamp when the application was built.
	buildDate = "unknown"
)

// init loads environment variables from a .env file if present.
func init() {
	// Configuration may come from the environment or the config file instead.
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found or couldn't be loaded")
	}
}

func main() {
	var (
		configPath  string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "./configs/config.yaml", "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("ACD Annotator Service\nVersion: %s\nCommit: %s\nBuild Date: %s\n", version, commit, buildDate)
		os.Exit(0)
	}

	// Bootstrap logger until the configured one is in place
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	utils.InitLogger(cfg)

	log.Info().
		Str("name", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Str(constants.LogKeyAnnotator, cfg.Annotator.Kind).
		Str("log_level", utils.GetLogLevel()).
		Msg("Starting ACD annotator service")

	ann, err := annotators.New(&cfg.Annotator)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create annotator")
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultStartupTimeout)
	err = service.StartAnnotator(ctx, ann)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start annotator")
	}

	srv, err := server.NewServer(cfg, ann)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	// Blocks until the server stops or a shutdown signal arrives
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
