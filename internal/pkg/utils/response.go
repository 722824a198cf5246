package utils

import (
	"errors"
	"fmt"
	"net/http"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildPaginationResponse(total, page, pageSize int, baseURL string) *responses.Pagination {
	pagination := &responses.Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	if page*pageSize < total {
		pagination.NextURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page+1, pageSize)
	}
	if page > 1 {
		pagination.PrevURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page-1, pageSize)
	}

	return pagination
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{Success: true, Message: message, Data: data})
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{Success: true, Message: message, Data: data, Pagination: pagination})
}

type errorResponse struct {
	StatusCode    int                   `json:"status_code"`
	Success       bool                  `json:"success"`
	ClientMessage string                `json:"message"`
	DevMessage    string                `json:"dev_message,omitempty"`
	Locations     []exceptions.Location `json:"locations,omitempty"`
}

// BuildErrorResponse maps err to its HTTP status. Anything that is not a
// CustomError is reported as a 500 with the generic client message. Dev
// details are only written outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := errorResponse{
		StatusCode:    constvars.StatusInternalServerError,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	switch {
	case errors.As(err, &customErr):
		response.StatusCode = customErr.StatusCode
		response.ClientMessage = customErr.ClientMessage
		logCustomError(log, customErr)
		if GetEnvString("APP_ENV", "development") != "production" {
			response.DevMessage = customErr.DevMessage
			response.Locations = customErr.Locations
		}
	case err != nil:
		log.Error(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode))
	}

	writeJSON(w, response.StatusCode, response)
}

// logCustomError logs client faults at warn and server faults at error.
func logCustomError(log *zap.Logger, customErr *exceptions.CustomError) {
	fields := []zap.Field{zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode)}
	if len(customErr.Locations) > 0 {
		origin := customErr.Locations[0]
		fields = append(fields,
			zap.String("file", origin.File),
			zap.Int("line", origin.Line),
			zap.String("function_name", origin.FunctionName),
		)
	}

	if customErr.StatusCode >= constvars.StatusInternalServerError {
		log.Error(customErr.DevMessage, fields...)
		return
	}
	log.Warn(customErr.DevMessage, fields...)
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
