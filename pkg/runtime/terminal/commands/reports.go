package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/runtime/terminal/export"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/reports"
)

func NewListCmd(controller reports.Controller, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available quarterly reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reporter.HandleKeys(controller.ListAvailable(cmd.Context()))
		},
	}
}

type ProcessCmd struct {
	quarter    string
	year       int
	force      bool
	raw        bool
	controller reports.Controller
	reporter   *export.Reporter
}

func NewProcessCmd(controller reports.Controller, reporter *export.Reporter) *cobra.Command {
	pc := &ProcessCmd{controller: controller, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Extract financial metrics for one quarter",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.quarter, "quarter", "", "Quarter to process (Q1..Q4)")
	cmd.Flags().IntVar(&pc.year, "year", 0, "Reporting year")
	cmd.Flags().BoolVar(&pc.force, "force", false, "Re-run OCR even when a cached result exists")
	cmd.Flags().BoolVar(&pc.raw, "raw", false, "Print the raw OCR text after the metrics")

	_ = cmd.MarkFlagRequired("quarter")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func (pc *ProcessCmd) run(cmd *cobra.Command, _ []string) error {
	quarter, err := domain.ParseQuarter(pc.quarter)
	if err != nil {
		return err
	}

	// OCR for one report fans out over several images; give the whole run
	// generous room rather than relying only on per-image deadlines.
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	report, ok := pc.controller.ProcessReport(ctx, quarter, pc.year, pc.force)
	if !ok {
		return fmt.Errorf("no report registered for %d%s", pc.year, quarter)
	}

	return pc.reporter.Handle(report, pc.raw)
}
