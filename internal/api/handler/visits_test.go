package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	visitingmocks "github.com/vfg2006/pharma-sfe-api/internal/usecases/visiting/mocks"
	"github.com/vfg2006/pharma-sfe-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func returnIndexRequest(t *testing.T, target string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	claims := &domain.Claims{UserID: 7, UserRoleID: domain.RoleDelegate}
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func TestGetReturnIndex_ReferenceDate(t *testing.T) {
	t.Run("data informada é repassada ao serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := visitingmocks.NewMockComplianceEvaluator(ctrl)
		mockService.EXPECT().
			BuildReturnIndex(7, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)).
			Return([]*domain.ReturnIndexEntry{}, nil)

		rec := httptest.NewRecorder()
		GetReturnIndex(mockService)(rec, returnIndexRequest(t, "/v1/me/return-index?date=2024-03-10"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("sem parâmetro usa a data corrente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := visitingmocks.NewMockComplianceEvaluator(ctrl)
		mockService.EXPECT().
			BuildReturnIndex(7, gomock.Any()).
			DoAndReturn(func(_ int, at time.Time) ([]*domain.ReturnIndexEntry, error) {
				assert.WithinDuration(t, time.Now(), at, time.Minute)
				return []*domain.ReturnIndexEntry{}, nil
			})

		rec := httptest.NewRecorder()
		GetReturnIndex(mockService)(rec, returnIndexRequest(t, "/v1/me/return-index"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("data malformada é rejeitada sem consultar o serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := visitingmocks.NewMockComplianceEvaluator(ctrl)

		rec := httptest.NewRecorder()
		GetReturnIndex(mockService)(rec, returnIndexRequest(t, "/v1/me/return-index?date=10-03-2024"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDoctorsNeedingVisit_ReferenceDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := visitingmocks.NewMockComplianceEvaluator(ctrl)
	mockService.EXPECT().
		DoctorsNeedingVisit(7, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)).
		Return([]*domain.ReturnIndexEntry{}, nil)

	rec := httptest.NewRecorder()
	GetDoctorsNeedingVisit(mockService)(rec, returnIndexRequest(t, "/v1/me/doctors/needing-visit?date=2024-05-20"))

	assert.Equal(t, http.StatusOK, rec.Code)
}
