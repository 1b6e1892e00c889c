package handlers

import (
	"errors"
	"net/http"

	"github.com/username/sellerprofit/src/export"
	"github.com/username/sellerprofit/src/logger"
	"github.com/username/sellerprofit/src/parsers"
	"github.com/username/sellerprofit/src/processors"
	"github.com/username/sellerprofit/src/services"
	"github.com/username/sellerprofit/src/utils"
)

// statusFor maps pipeline and session errors to an HTTP status. Zero means an internal error.
func statusFor(err error) int {
	var (
		sourceErr     *parsers.SourceFormatError
		schemaErr     *parsers.SchemaError
		numericErr    *parsers.NumericFormatError
		keyErr        *parsers.MatchKeyError
		unresolvedErr *processors.UnresolvedCostError
	)
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, parsers.ErrUnknownVariant), errors.Is(err, export.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.As(err, &sourceErr):
		return http.StatusBadRequest
	case errors.As(err, &schemaErr), errors.As(err, &numericErr), errors.As(err, &keyErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unresolvedErr):
		return http.StatusConflict
	default:
		return 0
	}
}

func sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if status := statusFor(err); status != 0 {
		utils.SendJSONError(w, err.Error(), status)
		return
	}
	logger.FromContext(r.Context()).Error("Internal error handling request", "method", r.Method, "path", r.URL.Path, "error", err)
	utils.SendJSONError(w, "An internal error occurred. Please try again later.", http.StatusInternalServerError)
}
