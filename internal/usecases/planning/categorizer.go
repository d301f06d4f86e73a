package planning

import "github.com/vfg2006/pharma-sfe-api/internal/domain"

// Bucket identifica a categoria de exibição de um plano de ação para o
// principal corrente
type Bucket string

const (
	BucketOwn                      Bucket = "own"
	BucketSupervisorInvolvingMe    Bucket = "supervisor_involving_me"
	BucketSalesDirectorInvolvingMe Bucket = "sales_director_involving_me"
	BucketNeedingMyApproval        Bucket = "needing_my_approval"
	BucketInvolvingMe              Bucket = "involving_me"
	BucketDelegate                 Bucket = "delegate"
	BucketSupervisor               Bucket = "supervisor"
	BucketSalesDirector            Bucket = "sales_director"
	// BucketNone: o plano não interessa ao principal e é descartado
	BucketNone Bucket = ""
)

// ClassifyPlan aplica a tabela de decisão de categorização, de cima para
// baixo, primeira regra válida vence. Cada plano cai em no máximo um
// bucket.
func ClassifyPlan(plan *domain.ActionPlan, principal domain.Principal) Bucket {
	if plan.CreatorID == principal.ID {
		return BucketOwn
	}

	switch principal.Role {
	case domain.RoleDelegate:
		if plan.CreatorRole == domain.RoleSupervisor && plan.TargetsDelegate(principal.ID) {
			return BucketSupervisorInvolvingMe
		}
		if plan.CreatorRole == domain.RoleSalesDirector && plan.TargetsDelegate(principal.ID) {
			return BucketSalesDirectorInvolvingMe
		}

	case domain.RoleSupervisor:
		if plan.CreatorRole == domain.RoleDelegate && plan.SupervisorStatus == domain.ApprovalPending {
			return BucketNeedingMyApproval
		}
		if plan.CreatorRole == domain.RoleSalesDirector && plan.TargetsSupervisor(principal.ID) {
			return BucketInvolvingMe
		}
		if plan.CreatorRole == domain.RoleDelegate {
			return BucketDelegate
		}
		if plan.CreatorRole == domain.RoleSalesDirector {
			return BucketSalesDirector
		}

	case domain.RoleSalesDirector:
		if (plan.CreatorRole == domain.RoleSupervisor || plan.CreatorRole == domain.RoleDelegate) &&
			plan.SalesDirectorStatus == domain.ApprovalPending {
			return BucketNeedingMyApproval
		}
		if plan.CreatorRole == domain.RoleSupervisor {
			return BucketSupervisor
		}
		if plan.CreatorRole == domain.RoleDelegate {
			return BucketDelegate
		}
	}

	return BucketNone
}

// Categorize distribui a lista de planos visíveis nos buckets do principal.
// Admin e gerente de marketing enxergam tudo sem categorização.
func Categorize(plans []*domain.ActionPlan, principal domain.Principal) *domain.ActionPlanBuckets {
	buckets := &domain.ActionPlanBuckets{
		Own: []*domain.ActionPlan{},
	}

	if principal.Role == domain.RoleAdmin || principal.Role == domain.RoleMarketingManager {
		buckets.All = plans
		return buckets
	}

	for _, plan := range plans {
		switch ClassifyPlan(plan, principal) {
		case BucketOwn:
			buckets.Own = append(buckets.Own, plan)
		case BucketSupervisorInvolvingMe:
			buckets.SupervisorInvolvingMe = append(buckets.SupervisorInvolvingMe, plan)
		case BucketSalesDirectorInvolvingMe:
			buckets.SalesDirectorInvolvingMe = append(buckets.SalesDirectorInvolvingMe, plan)
		case BucketNeedingMyApproval:
			buckets.NeedingMyApproval = append(buckets.NeedingMyApproval, plan)
		case BucketInvolvingMe:
			buckets.InvolvingMe = append(buckets.InvolvingMe, plan)
		case BucketDelegate:
			buckets.Delegate = append(buckets.Delegate, plan)
		case BucketSupervisor:
			buckets.Supervisor = append(buckets.Supervisor, plan)
		case BucketSalesDirector:
			buckets.SalesDirector = append(buckets.SalesDirector, plan)
		}
	}

	return buckets
}
