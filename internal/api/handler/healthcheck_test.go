package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dish-ranking-api/internal/usecases/ranking/mocks"
	"go.uber.org/mock/gomock"
)

func TestHealthcheckHandler(t *testing.T) {
	rec := httptest.NewRecorder()

	HealthcheckHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockRankingService(ctrl)
	handler := ReadinessHandler(mockService)

	t.Run("Pronto", func(t *testing.T) {
		mockService.EXPECT().Ping(gomock.Any()).Return(nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readiness", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
	})

	t.Run("Record Store indisponível", func(t *testing.T) {
		mockService.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readiness", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"SRV_004"`)
	})
}
