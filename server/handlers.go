package server

import (
	"context"
	"errors"
	"io"
	"net/http"

	"code.cloudfoundry.org/app-perfmon/helpers"
	"code.cloudfoundry.org/app-perfmon/helpers/auth"
	"code.cloudfoundry.org/app-perfmon/helpers/handlers"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/app-perfmon/monitor"
	"code.cloudfoundry.org/lager/v3"
)

const maxSampleBytes = 1 << 20

type PerfmonService interface {
	Submit(ctx context.Context, raw []byte) (*models.IngestResponse, error)
	Query(ctx context.Context, q monitor.Query) (*models.QueryResponse, error)
}

type MetricsHandler struct {
	service PerfmonService
	logger  lager.Logger
}

func NewMetricsHandler(service PerfmonService, logger lager.Logger) *MetricsHandler {
	return &MetricsHandler{
		service: service,
		logger:  logger,
	}
}

func (mh *MetricsHandler) PostMetrics(w http.ResponseWriter, r *http.Request) {
	logger := mh.logger.Session("post-metrics", helpers.AddTraceID(r.Context(), principalData(r.Context())))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSampleBytes))
	if err != nil {
		logger.Error("error-reading-request-body", err)
		handlers.WriteErrorResponse(w, http.StatusBadRequest, "Error reading request body")
		return
	}

	resp, err := mh.service.Submit(r.Context(), body)
	if err != nil {
		mh.writeError(w, logger, "submit-sample", err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, resp)
}

func (mh *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	logger := mh.logger.Session("get-metrics", helpers.AddTraceID(r.Context(), principalData(r.Context())))

	query, err := monitor.ParseQuery(r.URL.Query())
	if err != nil {
		mh.writeError(w, logger, "parse-query", err)
		return
	}

	resp, err := mh.service.Query(r.Context(), query)
	if err != nil {
		mh.writeError(w, logger, "query", err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, resp)
}

func (mh *MetricsHandler) writeError(w http.ResponseWriter, logger lager.Logger, action string, err error) {
	var validationErrs models.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Info("invalid-request", lager.Data{"action": action, "fields": validationErrs.Fields()})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ValidationErrorResponse{
			ErrorResponse: models.ErrorResponse{
				Code:    handlers.ErrorCode(http.StatusBadRequest),
				Message: "Invalid request: " + validationErrs.Error()},
			Errors: validationErrs,
		})
		return
	}

	logger.Error("failed-to-"+action, err)
	message := "Internal server error"
	var storageErr *models.StorageError
	if errors.As(err, &storageErr) {
		message = "Error accessing storage"
	}
	handlers.WriteErrorResponse(w, http.StatusInternalServerError, message)
}

func principalData(ctx context.Context) lager.Data {
	data := lager.Data{}
	if principal, ok := auth.PrincipalFromContext(ctx); ok {
		data["subject"] = principal.Subject
		data["role"] = principal.Role
	}
	return data
}
