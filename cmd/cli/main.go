package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/runtime/terminal"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/config"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/extract"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/ocr"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/reports"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	ocrCfg, err := config.LoadOCRConfig(os.Getenv("OCR_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seeds := reports.DefaultSeeds()
	if path := os.Getenv("REPORT_SEEDS"); path != "" {
		registry, err := config.NewRegistry(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if seeds, err = registry.GetReports(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cli := terminal.NewCLI(terminal.Options{
		Controller: reports.NewController(
			reports.NewStore(seeds...),
			ocr.NewOrchestrator(ocr.NewClient(ocrCfg)),
			extract.NewEngine(),
		),
		Output: os.Stdout,
	})

	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
