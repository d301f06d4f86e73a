package visiting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/internal/metrics"
	"go.uber.org/mock/gomock"
)

func TestService_BuildReturnIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := mocks.NewMockVisitPlanRepository(ctrl)
	mockVisitRepo := mocks.NewMockVisitRepository(ctrl)
	mockDoctorRepo := mocks.NewMockDoctorRepository(ctrl)

	service := &Service{
		visitPlanRepo: mockPlanRepo,
		visitRepo:     mockVisitRepo,
		doctorRepo:    mockDoctorRepo,
	}

	delegateID := 7
	at := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	plan := &domain.VisitPlan{
		ID:             "VP0001",
		DoctorID:       "DOC001",
		DelegateID:     delegateID,
		VisitFrequency: 2,
	}

	doctor := &domain.Doctor{
		ID:        "DOC001",
		Name:      "Dra. Maria Fontes",
		Specialty: domain.SpecialtyCardiologist,
	}

	// Frequência 2/mês, visitas em 15/01, 10/02 e 20/02; em março o
	// acumulado do ano é 3 de 4 esperadas
	visits := []*domain.Visit{
		{ID: "V1", VisitPlanID: "VP0001", VisitDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "V2", VisitPlanID: "VP0001", VisitDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "V3", VisitPlanID: "VP0001", VisitDate: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)},
	}

	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	mockPlanRepo.EXPECT().
		ListByDelegate(delegateID).
		Return([]*domain.VisitPlan{plan}, nil)

	mockVisitRepo.EXPECT().
		ListByDelegateAndPeriod(delegateID, windowStart, windowEnd).
		Return(visits, nil)

	mockDoctorRepo.EXPECT().
		ListByIDs([]string{"DOC001"}).
		Return([]*domain.Doctor{doctor}, nil)

	entries, err := service.BuildReturnIndex(delegateID, at)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, doctor, entry.Doctor)
	assert.Equal(t, 3, entry.VisitsCompletedYTD)
	assert.Equal(t, 4, entry.VisitsExpectedYTD)
	assert.Equal(t, 75, entry.Percentage)

	// Fevereiro teve visitas, então o semáforo fica verde mesmo com o
	// percentual abaixo de 100
	assert.Equal(t, metrics.StatusGreen, entry.Status)
	assert.Equal(t, 2, entry.VisitsLastMonth)
	assert.Equal(t, 1, entry.VisitsMonthBeforeLast)

	// Março ainda sem visitas: cota inteira pendente
	assert.Equal(t, 0, entry.VisitsThisMonth)
	assert.Equal(t, 2, entry.VisitsRemainingMonth)
	assert.True(t, entry.NeedsVisit())
}

func TestService_BuildReturnIndex_JanuaryWindowCrossesYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := mocks.NewMockVisitPlanRepository(ctrl)
	mockVisitRepo := mocks.NewMockVisitRepository(ctrl)
	mockDoctorRepo := mocks.NewMockDoctorRepository(ctrl)

	service := &Service{
		visitPlanRepo: mockPlanRepo,
		visitRepo:     mockVisitRepo,
		doctorRepo:    mockDoctorRepo,
	}

	delegateID := 7
	at := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)

	plan := &domain.VisitPlan{
		ID:             "VP0001",
		DoctorID:       "DOC001",
		DelegateID:     delegateID,
		VisitFrequency: 1,
	}

	// A janela de status alcança novembro e dezembro do ano anterior e já
	// cobre todo o acumulado do ano; uma única busca basta
	windowStart := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	decemberVisit := []*domain.Visit{
		{ID: "V1", VisitPlanID: "VP0001", VisitDate: time.Date(2023, 12, 12, 0, 0, 0, 0, time.UTC)},
	}

	mockPlanRepo.EXPECT().
		ListByDelegate(delegateID).
		Return([]*domain.VisitPlan{plan}, nil)

	mockVisitRepo.EXPECT().
		ListByDelegateAndPeriod(delegateID, windowStart, windowEnd).
		Return(decemberVisit, nil)

	mockDoctorRepo.EXPECT().
		ListByIDs([]string{"DOC001"}).
		Return([]*domain.Doctor{{ID: "DOC001"}}, nil)

	entries, err := service.BuildReturnIndex(delegateID, at)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]

	// Janeiro: nada esperado ainda, percentual zero sem divisão por zero
	assert.Equal(t, 0, entry.VisitsExpectedYTD)
	assert.Equal(t, 0, entry.Percentage)

	// Dezembro teve visita, então o semáforo considera o histórico do ano
	// anterior
	assert.Equal(t, 1, entry.VisitsLastMonth)
	assert.Equal(t, metrics.StatusGreen, entry.Status)
}

func TestService_BuildReturnIndex_YTDBeyondStatusWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := mocks.NewMockVisitPlanRepository(ctrl)
	mockVisitRepo := mocks.NewMockVisitRepository(ctrl)
	mockDoctorRepo := mocks.NewMockDoctorRepository(ctrl)

	service := &Service{
		visitPlanRepo: mockPlanRepo,
		visitRepo:     mockVisitRepo,
		doctorRepo:    mockDoctorRepo,
	}

	delegateID := 7
	at := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

	plan := &domain.VisitPlan{
		ID:             "VP0001",
		DoctorID:       "DOC001",
		DelegateID:     delegateID,
		VisitFrequency: 1,
	}

	janVisit := &domain.Visit{ID: "V1", VisitPlanID: "VP0001", VisitDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}
	aprVisit := &domain.Visit{ID: "V2", VisitPlanID: "VP0001", VisitDate: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)}
	mayVisit := &domain.Visit{ID: "V3", VisitPlanID: "VP0001", VisitDate: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)}

	windowStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	yearStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mockPlanRepo.EXPECT().
		ListByDelegate(delegateID).
		Return([]*domain.VisitPlan{plan}, nil)

	// A janela de status só enxerga abril e maio; a visita de janeiro vem
	// da busca do acumulado do ano
	mockVisitRepo.EXPECT().
		ListByDelegateAndPeriod(delegateID, windowStart, windowEnd).
		Return([]*domain.Visit{aprVisit, mayVisit}, nil)

	mockVisitRepo.EXPECT().
		ListByDelegateAndPeriod(delegateID, yearStart, windowEnd).
		Return([]*domain.Visit{janVisit, aprVisit, mayVisit}, nil)

	mockDoctorRepo.EXPECT().
		ListByIDs([]string{"DOC001"}).
		Return([]*domain.Doctor{{ID: "DOC001"}}, nil)

	entries, err := service.BuildReturnIndex(delegateID, at)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]

	// Janeiro conta no acumulado mesmo estando fora da janela de status
	assert.Equal(t, 3, entry.VisitsCompletedYTD)
	assert.Equal(t, 5, entry.VisitsExpectedYTD)
	assert.Equal(t, 60, entry.Percentage)

	assert.Equal(t, 1, entry.VisitsLastMonth)
	assert.Equal(t, 1, entry.VisitsMonthBeforeLast)
	assert.Equal(t, metrics.StatusGreen, entry.Status)
	assert.Equal(t, 0, entry.VisitsThisMonth)
}

func TestService_DoctorsNeedingVisit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := mocks.NewMockVisitPlanRepository(ctrl)
	mockVisitRepo := mocks.NewMockVisitRepository(ctrl)
	mockDoctorRepo := mocks.NewMockDoctorRepository(ctrl)

	service := &Service{
		visitPlanRepo: mockPlanRepo,
		visitRepo:     mockVisitRepo,
		doctorRepo:    mockDoctorRepo,
	}

	delegateID := 3
	at := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	plans := []*domain.VisitPlan{
		{ID: "VP0001", DoctorID: "DOC001", DelegateID: delegateID, VisitFrequency: 1},
		{ID: "VP0002", DoctorID: "DOC002", DelegateID: delegateID, VisitFrequency: 2},
	}

	// DOC001 já cumpriu a cota do mês; DOC002 só tem metade
	visits := []*domain.Visit{
		{ID: "V1", VisitPlanID: "VP0001", VisitDate: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
		{ID: "V2", VisitPlanID: "VP0002", VisitDate: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)},
	}

	mockPlanRepo.EXPECT().
		ListByDelegate(delegateID).
		Return(plans, nil)

	// Janela de status e acumulado do ano
	mockVisitRepo.EXPECT().
		ListByDelegateAndPeriod(delegateID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)).
		Return(visits, nil)
	mockVisitRepo.EXPECT().
		ListByDelegateAndPeriod(delegateID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)).
		Return(visits, nil)

	mockDoctorRepo.EXPECT().
		ListByIDs([]string{"DOC001", "DOC002"}).
		Return([]*domain.Doctor{{ID: "DOC001"}, {ID: "DOC002"}}, nil)

	needing, err := service.DoctorsNeedingVisit(delegateID, at)
	require.NoError(t, err)

	require.Len(t, needing, 1)
	assert.Equal(t, "VP0002", needing[0].VisitPlanID)
	assert.Equal(t, 1, needing[0].VisitsRemainingMonth)
}

func TestService_RecordVisit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := mocks.NewMockVisitPlanRepository(ctrl)
	mockVisitRepo := mocks.NewMockVisitRepository(ctrl)
	mockDoctorRepo := mocks.NewMockDoctorRepository(ctrl)

	service := &Service{
		visitPlanRepo: mockPlanRepo,
		visitRepo:     mockVisitRepo,
		doctorRepo:    mockDoctorRepo,
	}

	t.Run("grava a visita com data civil truncada", func(t *testing.T) {
		plan := &domain.VisitPlan{ID: "VP0001", DoctorID: "DOC001", DelegateID: 3, VisitFrequency: 2}

		mockPlanRepo.EXPECT().
			GetByDoctorAndDelegate("DOC001", 3).
			Return(plan, nil)

		mockVisitRepo.EXPECT().
			Insert(gomock.Any()).
			DoAndReturn(func(visit *domain.Visit) error {
				assert.NotEmpty(t, visit.ID)
				assert.Equal(t, "VP0001", visit.VisitPlanID)
				assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), visit.VisitDate)
				return nil
			})

		visit, err := service.RecordVisit("DOC001", 3, time.Date(2024, 3, 10, 17, 45, 12, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "VP0001", visit.VisitPlanID)
	})

	t.Run("doutor fora do plano de visitas", func(t *testing.T) {
		mockPlanRepo.EXPECT().
			GetByDoctorAndDelegate("DOC999", 3).
			Return(nil, nil)

		visit, err := service.RecordVisit("DOC999", 3, time.Now())
		assert.Nil(t, visit)
		assert.ErrorIs(t, err, ErrVisitPlanNotFound)
	})
}
