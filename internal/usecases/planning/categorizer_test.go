package planning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
)

func TestClassifyPlan(t *testing.T) {
	supervisor := domain.Principal{ID: 20, Role: domain.RoleSupervisor}
	delegate := domain.Principal{ID: 10, Role: domain.RoleDelegate}
	director := domain.Principal{ID: 30, Role: domain.RoleSalesDirector}

	tests := []struct {
		name      string
		plan      *domain.ActionPlan
		principal domain.Principal
		want      Bucket
	}{
		{
			name: "plano próprio vence qualquer outra regra",
			plan: &domain.ActionPlan{
				CreatorID:        20,
				CreatorRole:      domain.RoleSupervisor,
				SupervisorStatus: domain.ApprovalPending,
			},
			principal: supervisor,
			want:      BucketOwn,
		},
		{
			name: "delegado vê plano do supervisor que o envolve",
			plan: &domain.ActionPlan{
				CreatorID:         20,
				CreatorRole:       domain.RoleSupervisor,
				TargetedDelegates: []int{10},
			},
			principal: delegate,
			want:      BucketSupervisorInvolvingMe,
		},
		{
			name: "delegado vê plano do diretor que o envolve",
			plan: &domain.ActionPlan{
				CreatorID:         30,
				CreatorRole:       domain.RoleSalesDirector,
				TargetedDelegates: []int{10},
			},
			principal: delegate,
			want:      BucketSalesDirectorInvolvingMe,
		},
		{
			name: "delegado não vê plano que não o envolve",
			plan: &domain.ActionPlan{
				CreatorID:         20,
				CreatorRole:       domain.RoleSupervisor,
				TargetedDelegates: []int{11},
			},
			principal: delegate,
			want:      BucketNone,
		},
		{
			name: "supervisor vê plano de delegado pendente como aprovação",
			plan: &domain.ActionPlan{
				CreatorID:        10,
				CreatorRole:      domain.RoleDelegate,
				SupervisorStatus: domain.ApprovalPending,
			},
			principal: supervisor,
			want:      BucketNeedingMyApproval,
		},
		{
			name: "supervisor vê plano de delegado já decidido no bucket geral",
			plan: &domain.ActionPlan{
				CreatorID:        10,
				CreatorRole:      domain.RoleDelegate,
				SupervisorStatus: domain.ApprovalApproved,
			},
			principal: supervisor,
			want:      BucketDelegate,
		},
		{
			name: "supervisor envolvido em plano do diretor",
			plan: &domain.ActionPlan{
				CreatorID:           30,
				CreatorRole:         domain.RoleSalesDirector,
				TargetedSupervisors: []int{20},
			},
			principal: supervisor,
			want:      BucketInvolvingMe,
		},
		{
			name: "diretor vê plano de supervisor pendente como aprovação",
			plan: &domain.ActionPlan{
				CreatorID:           20,
				CreatorRole:         domain.RoleSupervisor,
				SalesDirectorStatus: domain.ApprovalPending,
			},
			principal: director,
			want:      BucketNeedingMyApproval,
		},
		{
			name: "diretor vê plano de supervisor decidido no bucket geral",
			plan: &domain.ActionPlan{
				CreatorID:           20,
				CreatorRole:         domain.RoleSupervisor,
				SalesDirectorStatus: domain.ApprovalRejected,
			},
			principal: director,
			want:      BucketSupervisor,
		},
		{
			name: "diretor vê plano de delegado decidido no bucket geral",
			plan: &domain.ActionPlan{
				CreatorID:           10,
				CreatorRole:         domain.RoleDelegate,
				SalesDirectorStatus: domain.ApprovalApproved,
			},
			principal: director,
			want:      BucketDelegate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPlan(tt.plan, tt.principal))
		})
	}
}

// Cada plano visível cai em exatamente um bucket, para qualquer combinação
// de papel do criador, papel do principal, envolvimento e status
func TestCategorize_BucketsAreExclusive(t *testing.T) {
	creatorRoles := []domain.Role{domain.RoleDelegate, domain.RoleSupervisor, domain.RoleSalesDirector}
	principalRoles := []domain.Role{domain.RoleDelegate, domain.RoleSupervisor, domain.RoleSalesDirector}
	statuses := []domain.ApprovalStatus{domain.ApprovalPending, domain.ApprovalApproved, domain.ApprovalRejected}

	principalID := 50

	for _, creatorRole := range creatorRoles {
		for _, principalRole := range principalRoles {
			for _, supervisorStatus := range statuses {
				for _, directorStatus := range statuses {
					for _, targeted := range []bool{true, false} {
						for _, own := range []bool{true, false} {
							plan := &domain.ActionPlan{
								ID:                  "PL0001",
								Title:               "Plano de teste",
								CreatorID:           99,
								CreatorRole:         creatorRole,
								SupervisorStatus:    supervisorStatus,
								SalesDirectorStatus: directorStatus,
							}
							if own {
								plan.CreatorID = principalID
							}
							if targeted {
								plan.TargetedDelegates = []int{principalID}
								plan.TargetedSupervisors = []int{principalID}
								plan.TargetedSalesDirectors = []int{principalID}
							}

							principal := domain.Principal{ID: principalID, Role: principalRole}
							buckets := Categorize([]*domain.ActionPlan{plan}, principal)

							total := len(buckets.Own) +
								len(buckets.SupervisorInvolvingMe) +
								len(buckets.SalesDirectorInvolvingMe) +
								len(buckets.NeedingMyApproval) +
								len(buckets.InvolvingMe) +
								len(buckets.Delegate) +
								len(buckets.Supervisor) +
								len(buckets.SalesDirector)

							label := fmt.Sprintf(
								"creator=%s principal=%s sup=%s dir=%s targeted=%v own=%v",
								creatorRole, principalRole, supervisorStatus, directorStatus, targeted, own,
							)
							assert.LessOrEqual(t, total, 1, label)
						}
					}
				}
			}
		}
	}
}

// Admin e gerente de marketing recebem a lista completa sem categorização
func TestCategorize_AdminSeesEverything(t *testing.T) {
	plans := []*domain.ActionPlan{
		{ID: "PL0001", CreatorID: 10, CreatorRole: domain.RoleDelegate},
		{ID: "PL0002", CreatorID: 20, CreatorRole: domain.RoleSupervisor},
	}

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleMarketingManager} {
		buckets := Categorize(plans, domain.Principal{ID: 1, Role: role})
		require.Len(t, buckets.All, 2, role.String())
		assert.Empty(t, buckets.Own)
	}
}
