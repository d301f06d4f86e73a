package selling

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/internal/metrics"
	"github.com/vfg2006/pharma-sfe-api/pkg/utils"
)

// PerformanceService calcula o desempenho de vendas por plano: taxa de
// realização, ritmo de recrutamento e acumulados do ano
type PerformanceService interface {
	BuildSalesPerformance(delegateID, year int, at time.Time) ([]*domain.SalesPerformance, error)
	SaveSales(sales *domain.Sales) error
}

type Service struct {
	salesPlanRepo repository.SalesPlanRepository
	salesRepo     repository.SalesRepository
	productRepo   repository.ProductRepository
	brickRepo     repository.BrickRepository
}

func NewService(
	salesPlanRepo repository.SalesPlanRepository,
	salesRepo repository.SalesRepository,
	productRepo repository.ProductRepository,
	brickRepo repository.BrickRepository,
) PerformanceService {
	return &Service{
		salesPlanRepo: salesPlanRepo,
		salesRepo:     salesRepo,
		productRepo:   productRepo,
		brickRepo:     brickRepo,
	}
}

func (s *Service) BuildSalesPerformance(delegateID, year int, at time.Time) ([]*domain.SalesPerformance, error) {
	plans, err := s.salesPlanRepo.ListByDelegate(delegateID)
	if err != nil {
		return nil, err
	}

	if len(plans) == 0 {
		return []*domain.SalesPerformance{}, nil
	}

	salesByPlan, err := s.salesRepo.ListByDelegateAndYear(delegateID, year)
	if err != nil {
		return nil, err
	}

	// Apenas meses fechados entram nas fórmulas quando o ano consultado é
	// o ano corrente; anos passados são avaliados com os 12 meses
	currentMonth := 13
	if year == at.Year() {
		currentMonth = int(at.Month())
	}
	pastMonths := currentMonth - 1
	if pastMonths > domain.MonthsInYear {
		pastMonths = domain.MonthsInYear
	}

	rows := make([]*domain.SalesPerformance, 0, len(plans))
	for _, plan := range plans {
		row := &domain.SalesPerformance{
			SalesPlan: plan,
			Year:      year,
		}

		if product, err := s.productRepo.GetByID(plan.ProductID); err != nil {
			logrus.WithError(err).WithField("product_id", plan.ProductID).Warn("erro ao buscar produto do plano de vendas")
		} else {
			row.Product = product
		}

		if brick, err := s.brickRepo.GetByID(plan.BrickID); err != nil {
			logrus.WithError(err).WithField("brick_id", plan.BrickID).Warn("erro ao buscar brick do plano de vendas")
		} else {
			row.Brick = brick
		}

		sales := salesByPlan[plan.ID]
		if sales == nil {
			// Sem registro de vendas no ano: todas as métricas indefinidas
			row.SalesRateStatus = metrics.StatusNone
			rows = append(rows, row)
			continue
		}

		pastAchievements := sales.Achievements[:pastMonths]
		pastTargets := sales.Targets[:pastMonths]

		for i := 0; i < pastMonths; i++ {
			row.TargetYTD += sales.Targets[i]
			row.AchievementYTD += sales.Achievements[i]
		}
		row.TargetYTD = utils.RoundWithTwoDecimalPlace(row.TargetYTD)
		row.AchievementYTD = utils.RoundWithTwoDecimalPlace(row.AchievementYTD)

		// O ritmo assume objetivo mensal plano: o objetivo anual
		// distribuído pelos 12 meses
		monthlyTarget := yearTotal(sales.Targets) / domain.MonthsInYear

		if rhythm, ok := metrics.RecruitmentRhythm(pastAchievements, monthlyTarget, currentMonth); ok {
			row.RecruitmentRhythm = &rhythm
		}

		rate, ok := metrics.SalesRate(pastAchievements, pastTargets)
		if ok {
			rounded := utils.RoundWithTwoDecimalPlace(rate)
			row.SalesRate = &rounded
		}
		row.SalesRateStatus = metrics.SalesRateStatus(rate, ok)

		rows = append(rows, row)
	}

	return rows, nil
}

func (s *Service) SaveSales(sales *domain.Sales) error {
	if sales.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		sales.ID = id
	}
	return s.salesRepo.SaveOrUpdate(sales)
}

func yearTotal(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
