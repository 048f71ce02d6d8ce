package reports

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/extract"
)

// Recognizer is the OCR phase as seen by the controller: one report's images
// in, one text blob out.
type Recognizer interface {
	RecognizeAll(ctx context.Context, imageRefs []string) string
}

// Controller exposes the engine's three public operations. A false return
// means "unknown report", which is not an error: the caller asked for a
// period the registry has never heard of.
type Controller interface {
	ListAvailable(ctx context.Context) []domain.ReportKey
	GetReport(ctx context.Context, quarter domain.Quarter, year int) (domain.Report, bool)
	ProcessReport(ctx context.Context, quarter domain.Quarter, year int, forceRefresh bool) (domain.Report, bool)
}

type controller struct {
	store  Store
	ocr    Recognizer
	engine *extract.Engine
}

func NewController(store Store, recognizer Recognizer, engine *extract.Engine) Controller {
	return &controller{
		store:  store,
		ocr:    recognizer,
		engine: engine,
	}
}

func (c *controller) ListAvailable(_ context.Context) []domain.ReportKey {
	return c.store.List()
}

func (c *controller) GetReport(_ context.Context, quarter domain.Quarter, year int) (domain.Report, bool) {
	return c.store.Get(domain.ReportKey{Year: year, Quarter: quarter})
}

// ProcessReport runs the extraction pipeline for one period and caches the
// result on the store entry. A cached result short-circuits the whole
// pipeline unless forceRefresh is set; the second call for a key is free.
func (c *controller) ProcessReport(
	ctx context.Context,
	quarter domain.Quarter,
	year int,
	forceRefresh bool,
) (domain.Report, bool) {
	logger := zerolog.Ctx(ctx).With().
		Int("year", year).
		Str("quarter", string(quarter)).
		Logger()
	ctx = logger.WithContext(ctx)

	report, ok := c.store.Get(domain.ReportKey{Year: year, Quarter: quarter})
	if !ok {
		logger.Debug().Msg("unknown report requested")
		return domain.Report{}, false
	}

	if report.Extracted != nil && !forceRefresh {
		logger.Debug().Msg("returning cached extraction")
		return report, true
	}

	logger.Info().Int("images", len(report.ImageRefs)).Msg("running extraction pipeline")
	text := c.ocr.RecognizeAll(ctx, report.ImageRefs)
	report.Extracted = c.engine.Extract(ctx, text)
	c.store.Put(report)

	return report, true
}
