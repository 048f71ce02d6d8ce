package reports

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/adapters"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/api"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/reports"
)

type Handler struct {
	controller reports.Controller
}

func NewHandler(controller reports.Controller) *Handler {
	return &Handler{controller: controller}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	keys := h.controller.ListAvailable(ctx)
	response := make([]api.ReportKey, 0, len(keys))
	for _, key := range keys {
		response = append(response, adapters.MapDomainReportKeyToAPI(key))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode report list")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	quarter, year, ok := periodParams(w, r)
	if !ok {
		return
	}

	report, found := h.controller.GetReport(ctx, quarter, year)
	if !found {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapDomainReportToAPI(report, false)); err != nil {
		logger.Error().Err(err).Int("year", year).Msg("failed to encode report")
	}
}

func (h *Handler) ProcessReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	quarter, year, ok := periodParams(w, r)
	if !ok {
		return
	}
	force := r.URL.Query().Get("force") == "true"

	report, found := h.controller.ProcessReport(ctx, quarter, year, force)
	if !found {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapDomainReportToAPI(report, true)); err != nil {
		logger.Error().Err(err).Int("year", year).Msg("failed to encode processed report")
	}
}

func periodParams(w http.ResponseWriter, r *http.Request) (domain.Quarter, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return "", 0, false
	}
	quarter, err := domain.ParseQuarter(chi.URLParam(r, "quarter"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", 0, false
	}
	return quarter, year, true
}
