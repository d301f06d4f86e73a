package domain

import (
	"time"

	"github.com/vfg2006/pharma-sfe-api/internal/metrics"
)

const MonthsInYear = 12

// SalesPlan liga um delegado, um produto e um brick. Cada plano tem no
// máximo um registro de vendas por ano civil.
type SalesPlan struct {
	ID         string    `json:"id"`
	DelegateID int       `json:"delegate_id"`
	ProductID  string    `json:"product_id"`
	BrickID    string    `json:"brick_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Sales guarda os objetivos e realizações mensais de um plano de vendas.
// Os dois arrays têm sempre 12 posições (índice 0 = janeiro); posições
// ausentes na origem são lidas como 0.
type Sales struct {
	ID           string     `json:"id"`
	SalesPlanID  string     `json:"sales_plan_id"`
	Year         int        `json:"year"`
	Targets      []float64  `json:"targets"`
	Achievements []float64  `json:"achievements"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// NormalizeArrays garante os 12 meses nos dois arrays, completando com zero
func (s *Sales) NormalizeArrays() {
	s.Targets = padToYear(s.Targets)
	s.Achievements = padToYear(s.Achievements)
}

func padToYear(values []float64) []float64 {
	if len(values) >= MonthsInYear {
		return values[:MonthsInYear]
	}
	padded := make([]float64, MonthsInYear)
	copy(padded, values)
	return padded
}

// SalesPerformance é a linha derivada exibida no painel de vendas do
// delegado. Campos ponteiro nulos representam métrica indefinida (render
// como "–", nunca como 0).
type SalesPerformance struct {
	SalesPlan         *SalesPlan     `json:"sales_plan"`
	Product           *Product       `json:"product,omitempty"`
	Brick             *Brick         `json:"brick,omitempty"`
	Year              int            `json:"year"`
	TargetYTD         float64        `json:"target_ytd"`
	AchievementYTD    float64        `json:"achievement_ytd"`
	RecruitmentRhythm *int           `json:"recruitment_rhythm"`
	SalesRate         *float64       `json:"sales_rate"`
	SalesRateStatus   metrics.Status `json:"sales_rate_status"`
}
