package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/server"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/config"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/extract"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/ocr"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/reports"
)

var (
	seedsPath string
	ocrPath   string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the quarterly report extraction API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&seedsPath, "seeds", "s", "",
		"Path to the report seed registry (ini); built-in seeds are used when omitted")
	rootCmd.Flags().StringVarP(&ocrPath, "ocr-config", "c", "",
		"Path to the OCR service config file (yaml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	ocrCfg, err := config.LoadOCRConfig(ocrPath)
	if err != nil {
		return fmt.Errorf("failed to load ocr config: %w", err)
	}

	seeds := reports.DefaultSeeds()
	if seedsPath != "" {
		registry, err := config.NewRegistry(seedsPath)
		if err != nil {
			return fmt.Errorf("failed to open seed registry: %w", err)
		}
		seeds, err = registry.GetReports(ctx)
		if err != nil {
			return fmt.Errorf("failed to load seed registry: %w", err)
		}
		logger.Info().Msgf("Seed registry at `%s` successfully loaded.", seedsPath)
	}
	for _, seed := range seeds {
		logger.Info().Msgf("Registered report: `%s` (%d images)", seed.Key(), len(seed.ImageRefs))
	}

	controller := reports.NewController(
		reports.NewStore(seeds...),
		ocr.NewOrchestrator(ocr.NewClient(ocrCfg)),
		extract.NewEngine(),
	)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Reports: controller,
		},
	})

	return api.Start()
}
