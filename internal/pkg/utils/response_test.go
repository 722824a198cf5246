package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"telecare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildPaginationResponse(t *testing.T) {
	p := BuildPaginationResponse(45, 2, 20, "/api/v1/doctors")
	assert.Equal(t, "/api/v1/doctors?page=3&page_size=20", p.NextURL)
	assert.Equal(t, "/api/v1/doctors?page=1&page_size=20", p.PrevURL)

	last := BuildPaginationResponse(40, 2, 20, "/api/v1/doctors")
	assert.Empty(t, last.NextURL)
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("custom error keeps status and client message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrTimeSlotAlreadyBooked(nil, "online"))

		assert.Equal(t, http.StatusConflict, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Time slot is already booked for online appointments", body["message"])
	})

	t.Run("plain error becomes internal server error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("production hides dev details", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrTimeSlotAlreadyBooked(nil, "online"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotContains(t, body, "dev_message")
		assert.NotContains(t, body, "locations")
	})
}

func TestBuildSuccessResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	BuildSuccessResponse(rec, http.StatusCreated, "created", map[string]string{"id": "x"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"created","data":{"id":"x"}}`, rec.Body.String())
}
