package controllers

import (
	"context"
	"errors"
	"net/http"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const usecaseTimeout = 10 * time.Second

// decodeAndValidate parses a JSON body into request, runs sanitize when given and
// then the validator tags.
func decodeAndValidate[T any](r *http.Request, request *T, sanitize func(*T)) error {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if sanitize != nil {
		sanitize(request)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// urlParam reads a chi path parameter and checks it with validate.
func urlParam(r *http.Request, name string, validate func(string) error) (string, error) {
	value := chi.URLParam(r, name)
	if err := validate(value); err != nil {
		return "", exceptions.ErrURLParamIDValidation(err, name)
	}
	return value, nil
}

func withUsecaseTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), usecaseTimeout)
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, r *http.Request, operation string, err error) {
	log.Error(operation+" error",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
