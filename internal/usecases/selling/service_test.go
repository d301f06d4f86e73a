package selling

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/internal/metrics"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockSalesPlanRepository, *mocks.MockSalesRepository, *mocks.MockProductRepository, *mocks.MockBrickRepository) {
	mockPlanRepo := mocks.NewMockSalesPlanRepository(ctrl)
	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockBrickRepo := mocks.NewMockBrickRepository(ctrl)

	service := &Service{
		salesPlanRepo: mockPlanRepo,
		salesRepo:     mockSalesRepo,
		productRepo:   mockProductRepo,
		brickRepo:     mockBrickRepo,
	}

	return service, mockPlanRepo, mockSalesRepo, mockProductRepo, mockBrickRepo
}

func yearOf(values ...float64) []float64 {
	padded := make([]float64, domain.MonthsInYear)
	copy(padded, values)
	return padded
}

func TestService_BuildSalesPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlanRepo, mockSalesRepo, mockProductRepo, mockBrickRepo := newTestService(ctrl)

	delegateID := 5
	year := 2024
	at := time.Date(2024, 4, 15, 11, 0, 0, 0, time.UTC)

	plans := []*domain.SalesPlan{
		{ID: "SP0001", DelegateID: delegateID, ProductID: "PRD001", BrickID: "BRK001"},
		{ID: "SP0002", DelegateID: delegateID, ProductID: "PRD002", BrickID: "BRK001"},
		{ID: "SP0003", DelegateID: delegateID, ProductID: "PRD003", BrickID: "BRK002"},
	}

	// SP0001: objetivo mensal plano de 100, realizações abaixo do ritmo
	// SP0003: objetivo definido apenas em fevereiro
	salesByPlan := map[string]*domain.Sales{
		"SP0001": {
			ID:           "S1",
			SalesPlanID:  "SP0001",
			Year:         year,
			Targets:      yearOf(100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100),
			Achievements: yearOf(40, 60, 50),
		},
		"SP0003": {
			ID:           "S3",
			SalesPlanID:  "SP0003",
			Year:         year,
			Targets:      yearOf(0, 200, 0),
			Achievements: yearOf(50, 100, 70),
		},
	}

	mockPlanRepo.EXPECT().ListByDelegate(delegateID).Return(plans, nil)
	mockSalesRepo.EXPECT().ListByDelegateAndYear(delegateID, year).Return(salesByPlan, nil)

	mockProductRepo.EXPECT().GetByID("PRD001").Return(&domain.Product{ID: "PRD001", Name: "Cardiozen"}, nil)
	mockProductRepo.EXPECT().GetByID("PRD002").Return(nil, errors.New("produto indisponível"))
	mockProductRepo.EXPECT().GetByID("PRD003").Return(&domain.Product{ID: "PRD003"}, nil)
	mockBrickRepo.EXPECT().GetByID("BRK001").Return(&domain.Brick{ID: "BRK001", Name: "Lisboa Norte"}, nil).Times(2)
	mockBrickRepo.EXPECT().GetByID("BRK002").Return(&domain.Brick{ID: "BRK002"}, nil)

	rows, err := service.BuildSalesPerformance(delegateID, year, at)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// SP0001: três meses fechados, média de 50 contra objetivo mensal de 100.
	// Recuperação distribuída com peso triangular pelos nove meses restantes.
	first := rows[0]
	assert.Equal(t, "Cardiozen", first.Product.Name)
	assert.Equal(t, 300.0, first.TargetYTD)
	assert.Equal(t, 150.0, first.AchievementYTD)
	require.NotNil(t, first.RecruitmentRhythm)
	assert.Equal(t, 13, *first.RecruitmentRhythm)
	require.NotNil(t, first.SalesRate)
	assert.Equal(t, 50.0, *first.SalesRate)
	assert.Equal(t, metrics.StatusRed, first.SalesRateStatus)

	// SP0002: sem registro de vendas no ano, todas as métricas indefinidas
	second := rows[1]
	assert.Nil(t, second.Product)
	assert.Equal(t, 0.0, second.TargetYTD)
	assert.Nil(t, second.RecruitmentRhythm)
	assert.Nil(t, second.SalesRate)
	assert.Equal(t, metrics.StatusNone, second.SalesRateStatus)

	// SP0003: janeiro e março sem objetivo ficam fora da média; só fevereiro
	// conta (100/200 = 50%)
	third := rows[2]
	require.NotNil(t, third.SalesRate)
	assert.Equal(t, 50.0, *third.SalesRate)
	assert.Equal(t, metrics.StatusRed, third.SalesRateStatus)

	// Realização média acima do objetivo mensal diluído: ritmo zera, nunca
	// fica negativo
	require.NotNil(t, third.RecruitmentRhythm)
	assert.Equal(t, 0, *third.RecruitmentRhythm)
}

func TestService_BuildSalesPerformance_PastYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlanRepo, mockSalesRepo, mockProductRepo, mockBrickRepo := newTestService(ctrl)

	delegateID := 5
	at := time.Date(2024, 4, 15, 11, 0, 0, 0, time.UTC)

	plans := []*domain.SalesPlan{
		{ID: "SP0001", DelegateID: delegateID, ProductID: "PRD001", BrickID: "BRK001"},
	}

	sales := &domain.Sales{
		ID:          "S1",
		SalesPlanID: "SP0001",
		Year:        2023,
		Targets: yearOf(
			100, 100, 100, 100, 100, 100,
			100, 100, 100, 100, 100, 100,
		),
		Achievements: yearOf(
			110, 110, 110, 110, 110, 110,
			110, 110, 110, 110, 110, 110,
		),
	}

	mockPlanRepo.EXPECT().ListByDelegate(delegateID).Return(plans, nil)
	mockSalesRepo.EXPECT().ListByDelegateAndYear(delegateID, 2023).
		Return(map[string]*domain.Sales{"SP0001": sales}, nil)
	mockProductRepo.EXPECT().GetByID("PRD001").Return(&domain.Product{ID: "PRD001"}, nil)
	mockBrickRepo.EXPECT().GetByID("BRK001").Return(&domain.Brick{ID: "BRK001"}, nil)

	rows, err := service.BuildSalesPerformance(delegateID, 2023, at)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Ano fechado: os 12 meses contam e a taxa cobre o ano inteiro
	row := rows[0]
	assert.Equal(t, 1200.0, row.TargetYTD)
	assert.Equal(t, 1320.0, row.AchievementYTD)
	require.NotNil(t, row.SalesRate)
	assert.Equal(t, 110.0, *row.SalesRate)
	assert.Equal(t, metrics.StatusGreen, row.SalesRateStatus)

	// Não restam meses para recuperar em ano encerrado
	assert.Nil(t, row.RecruitmentRhythm)
}

func TestService_SaveSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockSalesRepo, _, _ := newTestService(ctrl)

	t.Run("gera identificador para registro novo", func(t *testing.T) {
		mockSalesRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(sales *domain.Sales) error {
				assert.NotEmpty(t, sales.ID)
				return nil
			})

		err := service.SaveSales(&domain.Sales{SalesPlanID: "SP0001", Year: 2024})
		require.NoError(t, err)
	})

	t.Run("preserva identificador existente", func(t *testing.T) {
		mockSalesRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(sales *domain.Sales) error {
				assert.Equal(t, "S1", sales.ID)
				return nil
			})

		err := service.SaveSales(&domain.Sales{ID: "S1", SalesPlanID: "SP0001", Year: 2024})
		require.NoError(t, err)
	})
}
