package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/fleet-tools/fleet-atlas/pkg/adapters"
	"github.com/fleet-tools/fleet-atlas/pkg/models/api"
	"github.com/fleet-tools/fleet-atlas/pkg/services/report"
)

// UserIDHeader identifies the account a report is scoped to. The
// engine trusts the value; authentication happens upstream.
const UserIDHeader = "X-User-Id"

type Handler struct {
	reports report.Service
}

func NewHandler(reports report.Service) *Handler {
	return &Handler{reports: reports}
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	templates := h.reports.Templates(ctx)
	response := make([]api.ReportTemplate, 0, len(templates))
	for _, t := range templates {
		response = append(response, adapters.MapReportTemplateDomainToApi(t))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode report templates")
	}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	userID := r.Header.Get(UserIDHeader)

	var req api.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, err := h.reports.Generate(ctx, userID, req.Template, adapters.MapReportConfigApiToDomain(req.Config))
	if err != nil {
		logger.Error().Err(err).Str("template", req.Template).Msg("report generation failed")
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDataDomainToApi(data)); err != nil {
		logger.Error().Err(err).Str("template", req.Template).Msg("failed to encode report")
	}
}

func (h *Handler) GenerateCustom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	userID := r.Header.Get(UserIDHeader)

	var req api.CustomReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, err := h.reports.GenerateCustom(ctx, userID, adapters.MapCustomReportRequestApiToDomain(req))
	if err != nil {
		logger.Error().Err(err).Str("report", req.Name).Msg("custom report generation failed")
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDataDomainToApi(data)); err != nil {
		logger.Error().Err(err).Str("report", req.Name).Msg("failed to encode custom report")
	}
}

// statusFor maps engine errors to HTTP statuses. Generation failures
// wrap their cause, so unwrapping finds the caller-facing category.
func statusFor(err error) int {
	var validation *report.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	var notFound *report.TemplateNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
