package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/lager/v3"
)

var responseLogger = newResponseLogger()

func newResponseLogger() lager.Logger {
	logger := lager.NewLogger("http-response")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.ERROR))
	return logger
}

// WriteJSONResponse encodes body before touching w so a marshalling failure
// still produces a clean 500.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	jsonBytes, err := json.Marshal(body)
	if err != nil {
		responseLogger.Error("failed-to-marshal-response", err, lager.Data{"status": statusCode})
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(jsonBytes)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(jsonBytes); err != nil {
		responseLogger.Error("failed-to-write-response", err, lager.Data{"status": statusCode})
	}
}

// WriteErrorResponse writes models.ErrorResponse with a code derived from the
// status, e.g. 429 becomes "Too-Many-Requests".
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	WriteJSONResponse(w, statusCode, models.ErrorResponse{Code: ErrorCode(statusCode), Message: message})
}

func ErrorCode(statusCode int) string {
	return strings.ReplaceAll(http.StatusText(statusCode), " ", "-")
}
