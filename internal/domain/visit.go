package domain

import (
	"time"

	"github.com/vfg2006/pharma-sfe-api/internal/metrics"
)

// VisitPlan liga um doutor a um delegado com a frequência mensal de visitas
// acordada. Existe no máximo um plano por par (doutor, delegado).
type VisitPlan struct {
	ID             string    `json:"id"`
	DoctorID       string    `json:"doctor_id"`
	DelegateID     int       `json:"delegate_id"`
	VisitFrequency int       `json:"visit_frequency"`
	CreatedAt      time.Time `json:"created_at"`
}

// Visit é um evento único e imutável de visita a um doutor. Nunca é
// atualizada; apenas o admin pode removê-la.
type Visit struct {
	ID          string    `json:"id"`
	VisitPlanID string    `json:"visit_plan_id"`
	VisitDate   time.Time `json:"visit_date"`
}

// ReturnIndexEntry é o índice de retorno calculado por doutor para o mês
// corrente. Nunca é persistido pelo fluxo de leitura; é recalculado a cada
// consulta a partir das visitas registradas.
type ReturnIndexEntry struct {
	Doctor                *Doctor        `json:"doctor"`
	VisitPlanID           string         `json:"visit_plan_id"`
	VisitFrequency        int            `json:"visit_frequency"`
	VisitsCompletedYTD    int            `json:"visits_completed_ytd"`
	VisitsExpectedYTD     int            `json:"visits_expected_ytd"`
	Percentage            int            `json:"percentage"`
	Status                metrics.Status `json:"status"`
	VisitsThisMonth       int            `json:"visits_this_month"`
	VisitsRemainingMonth  int            `json:"visits_remaining_month"`
	VisitsLastMonth       int            `json:"visits_last_month"`
	VisitsMonthBeforeLast int            `json:"visits_month_before_last"`
}

// NeedsVisit indica se o doutor ainda deve aparecer na lista acionável do
// mês: a cota mensal de visitas ainda não foi cumprida.
func (e *ReturnIndexEntry) NeedsVisit() bool {
	return e.VisitsThisMonth < e.VisitFrequency
}
