package ocr

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// imageTimeout bounds one image end to end, measured from dispatch. The
// client's own request timeout is tighter; this outer deadline only matters
// if the client hangs after the response has started.
const imageTimeout = 15 * time.Second

// Orchestrator fans one report's images out to the OCR client concurrently
// and joins the results back into a single blob.
type Orchestrator struct {
	client  Client
	timeout time.Duration
}

func NewOrchestrator(client Client) *Orchestrator {
	return &Orchestrator{client: client, timeout: imageTimeout}
}

// RecognizeAll OCRs every image of a report in parallel. A failed or
// timed-out image contributes an empty string instead of failing the report:
// losing one page degrades recall, not correctness. Results are joined with
// "\n\n" in the original image order, not completion order, so a table
// spanning multiple pages keeps its column semantics deterministic.
func (o *Orchestrator) RecognizeAll(ctx context.Context, imageRefs []string) string {
	logger := zerolog.Ctx(ctx)

	results := make([]string, len(imageRefs))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range imageRefs {
		i, ref := i, ref
		g.Go(func() error {
			imgCtx, cancel := context.WithTimeout(gctx, o.timeout)
			defer cancel()

			text, err := o.client.Recognize(imgCtx, ref)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("image", ref).
					Msg("ocr failed for image, contributing empty text")
				return nil
			}
			results[i] = text
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point here.
	_ = g.Wait()

	return strings.Join(results, "\n\n")
}
