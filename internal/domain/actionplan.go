package domain

import "time"

// ApprovalStatus é o estado de aprovação de um dos dois campos
// independentes de um plano de ação
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Terminal indica que o estado não admite mais transições
func (s ApprovalStatus) Terminal() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

func (s ApprovalStatus) Valid() bool {
	return s == ApprovalPending || s == ApprovalApproved || s == ApprovalRejected
}

// ActionPlan é um pedido de plano de ação sujeito a aprovação em dois
// estágios independentes: supervisor e diretor de vendas. O plano é criado
// uma única vez pelo autor; depois disso apenas os dois campos de status
// mudam, cada um somente enquanto estiver pendente.
type ActionPlan struct {
	ID                     string         `json:"id"`
	Title                  string         `json:"title"`
	Note                   string         `json:"note,omitempty"`
	CreatorID              int            `json:"creator_id"`
	CreatorRole            Role           `json:"creator_role"`
	TargetedDelegates      []int          `json:"targeted_delegates"`
	TargetedSupervisors    []int          `json:"targeted_supervisors"`
	TargetedSalesDirectors []int          `json:"targeted_sales_directors"`
	TargetedProducts       []string       `json:"targeted_products"`
	TargetedBricks         []string       `json:"targeted_bricks"`
	TargetedDoctors        []string       `json:"targeted_doctors"`
	SupervisorStatus       ApprovalStatus `json:"supervisor_status"`
	SalesDirectorStatus    ApprovalStatus `json:"sales_director_status"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

// TargetsDelegate indica se o delegado está na audiência do plano
func (p *ActionPlan) TargetsDelegate(id int) bool {
	return containsInt(p.TargetedDelegates, id)
}

// TargetsSupervisor indica se o supervisor está na audiência do plano
func (p *ActionPlan) TargetsSupervisor(id int) bool {
	return containsInt(p.TargetedSupervisors, id)
}

// TargetsSalesDirector indica se o diretor de vendas está na audiência do plano
func (p *ActionPlan) TargetsSalesDirector(id int) bool {
	return containsInt(p.TargetedSalesDirectors, id)
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// ActionPlanBuckets agrupa os planos visíveis por categoria para o
// principal corrente. Cada plano aparece em no máximo um bucket.
type ActionPlanBuckets struct {
	Own                      []*ActionPlan `json:"own"`
	SupervisorInvolvingMe    []*ActionPlan `json:"supervisor_involving_me,omitempty"`
	SalesDirectorInvolvingMe []*ActionPlan `json:"sales_director_involving_me,omitempty"`
	NeedingMyApproval        []*ActionPlan `json:"needing_my_approval,omitempty"`
	InvolvingMe              []*ActionPlan `json:"involving_me,omitempty"`
	Delegate                 []*ActionPlan `json:"delegate,omitempty"`
	Supervisor               []*ActionPlan `json:"supervisor,omitempty"`
	SalesDirector            []*ActionPlan `json:"sales_director,omitempty"`
	All                      []*ActionPlan `json:"all,omitempty"`
}
