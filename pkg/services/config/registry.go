// Package config loads the engine's two configuration inputs: the report
// seed registry (which periods exist and which page images belong to them)
// and the OCR service settings.
package config

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

// Registry reads pre-seeded report definitions from an ini file with one
// section per period:
//
//	[2024Q4]
//	images      = https://.../page-1.png, https://.../page-2.png
//	revenue     = 326141.20
//	expenses    = 125189.30
//	net_income  = 200951.90
//
// The figure keys are optional; when present the report starts out with
// pre-computed data and processing it is a no-op unless forced.
type Registry interface {
	GetReports(ctx context.Context) ([]domain.Report, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

var sectionNamePattern = regexp.MustCompile(`^(\d{4})(Q[1-4])$`)

func (r *iniRegistry) GetReports(_ context.Context) ([]domain.Report, error) {
	var out []domain.Report
	for _, section := range r.cfg.Sections() {
		m := sectionNamePattern.FindStringSubmatch(section.Name())
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[1])
		quarter, err := domain.ParseQuarter(m[2])
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", section.Name(), err)
		}

		report := domain.Report{
			Quarter:   quarter,
			Year:      year,
			ImageRefs: splitImages(section.Key("images").String()),
		}
		if len(report.ImageRefs) == 0 {
			return nil, fmt.Errorf("section %q has no images", section.Name())
		}

		if data, err := precomputedData(section); err != nil {
			return nil, fmt.Errorf("section %q: %w", section.Name(), err)
		} else if data != nil {
			report.Extracted = data
		}

		out = append(out, report)
	}
	return out, nil
}

func splitImages(raw string) []string {
	var refs []string
	for _, part := range strings.Split(raw, ",") {
		if ref := strings.TrimSpace(part); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// precomputedData reads the optional seeded figures. Returns nil when the
// section carries none, leaving the report unextracted.
func precomputedData(section *ini.Section) (*domain.ExtractedData, error) {
	fields := map[string]**float64{}
	data := &domain.ExtractedData{
		CustomMetrics: make(map[string]float64),
		Sources:       make(map[string]string),
	}
	fields["revenue"] = &data.Revenue
	fields["expenses"] = &data.Expenses
	fields["net_income"] = &data.NetIncome
	fields["assets"] = &data.Assets
	fields["liabilities"] = &data.Liabilities
	fields["equity"] = &data.Equity

	seeded := false
	for key, dst := range fields {
		if !section.HasKey(key) {
			continue
		}
		v, err := section.Key(key).Float64()
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		value := v
		*dst = &value
		data.Sources[key] = "seed"
		seeded = true
	}
	if !seeded {
		return nil, nil
	}
	return data, nil
}
