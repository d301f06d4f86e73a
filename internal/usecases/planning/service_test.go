package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreatePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := mocks.NewMockActionPlanRepository(ctrl)
	service := &Service{planRepo: mockPlanRepo}

	creator := domain.Principal{ID: 10, Role: domain.RoleDelegate}

	t.Run("novo plano nasce com os dois estágios pendentes", func(t *testing.T) {
		mockPlanRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(plan *domain.ActionPlan) (*domain.ActionPlan, error) {
				assert.NotEmpty(t, plan.ID)
				assert.Equal(t, 10, plan.CreatorID)
				assert.Equal(t, domain.RoleDelegate, plan.CreatorRole)
				assert.Equal(t, domain.ApprovalPending, plan.SupervisorStatus)
				assert.Equal(t, domain.ApprovalPending, plan.SalesDirectorStatus)
				return plan, nil
			})

		created, err := service.CreatePlan(&domain.ActionPlan{
			Title: "Reforçar visitas em Lisboa",
			// Valores do cliente são ignorados na criação
			SupervisorStatus:    domain.ApprovalApproved,
			SalesDirectorStatus: domain.ApprovalRejected,
		}, creator)

		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalPending, created.SupervisorStatus)
		assert.Equal(t, domain.ApprovalPending, created.SalesDirectorStatus)
	})

	t.Run("título é obrigatório", func(t *testing.T) {
		created, err := service.CreatePlan(&domain.ActionPlan{}, creator)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_Transition(t *testing.T) {
	supervisor := domain.Principal{ID: 20, Role: domain.RoleSupervisor}
	director := domain.Principal{ID: 30, Role: domain.RoleSalesDirector}

	delegatePlan := func() *domain.ActionPlan {
		return &domain.ActionPlan{
			ID:                  "PL0001",
			Title:               "Plano do delegado",
			CreatorID:           10,
			CreatorRole:         domain.RoleDelegate,
			SupervisorStatus:    domain.ApprovalPending,
			SalesDirectorStatus: domain.ApprovalPending,
		}
	}

	t.Run("supervisor aprova plano de delegado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPlanRepo := mocks.NewMockActionPlanRepository(ctrl)
		service := &Service{planRepo: mockPlanRepo}

		approved := delegatePlan()
		approved.SupervisorStatus = domain.ApprovalApproved

		gomock.InOrder(
			mockPlanRepo.EXPECT().GetByID("PL0001").Return(delegatePlan(), nil),
			mockPlanRepo.EXPECT().UpdateSupervisorStatus("PL0001", domain.ApprovalApproved).Return(int64(1), nil),
			mockPlanRepo.EXPECT().GetByID("PL0001").Return(approved, nil),
		)

		plan, err := service.Transition("PL0001", FieldSupervisorStatus, domain.ApprovalApproved, supervisor)
		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalApproved, plan.SupervisorStatus)

		// O outro estágio permanece intocado
		assert.Equal(t, domain.ApprovalPending, plan.SalesDirectorStatus)
	})

	t.Run("voltar para pendente não é transição válida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPlanRepo := mocks.NewMockActionPlanRepository(ctrl)
		service := &Service{planRepo: mockPlanRepo}

		plan, err := service.Transition("PL0001", FieldSupervisorStatus, domain.ApprovalPending, supervisor)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("plano inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPlanRepo := mocks.NewMockActionPlanRepository(ctrl)
		service := &Service{planRepo: mockPlanRepo}

		mockPlanRepo.EXPECT().GetByID("PL0404").Return(nil, nil)

		plan, err := service.Transition("PL0404", FieldSupervisorStatus, domain.ApprovalApproved, supervisor)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, ErrPlanNotFound)

		var planErr *PlanError
		require.ErrorAs(t, err, &planErr)
		assert.Equal(t, "PL0404", planErr.PlanID)
	})

	t.Run("delegado não decide nenhum dos estágios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPlanRepo := mocks.NewMockActionPlanRepository(ctrl)
		service := &Service{planRepo: mockPlanRepo}

		delegate := domain.Principal{ID: 11, Role: domain.RoleDelegate}

		mockPlanRepo.EXPECT().GetByID("PL0001").Return(delegatePlan(), nil)

		plan, err := service.Transition("PL0001", FieldSupervisorStatus, domain.ApprovalApproved, delegate)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, ErrNotLegitimateApprover)
	})

	t.Run("supervisor sem vínculo com plano de diretor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPlanRepo := mocks.NewMockActionPlanRepository(ctrl)
		service := &Service{planRepo: mockPlanRepo}

		directorPlan := &domain.ActionPlan{
			ID:                  "PL0002",
			CreatorID:           30,
			CreatorRole:         domain.RoleSalesDirector,
			TargetedSupervisors: []int{21},
			SupervisorStatus:    domain.ApprovalPending,
		}
		mockPlanRepo.EXPECT().GetByID("PL0002").Return(directorPlan, nil)

		plan, err := service.Transition("PL0002", FieldSupervisorStatus, domain.ApprovalRejected, supervisor)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, ErrNotLegitimateApprover)
	})

	t.Run("estágio já decidido rejeita nova transição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPlanRepo := mocks.NewMockActionPlanRepository(ctrl)
		service := &Service{planRepo: mockPlanRepo}

		decided := delegatePlan()
		decided.SupervisorStatus = domain.ApprovalRejected

		// A guarda de estado pendente vive na query; zero linhas afetadas
		// sinaliza estágio terminal
		gomock.InOrder(
			mockPlanRepo.EXPECT().GetByID("PL0001").Return(decided, nil),
			mockPlanRepo.EXPECT().UpdateSupervisorStatus("PL0001", domain.ApprovalApproved).Return(int64(0), nil),
		)

		plan, err := service.Transition("PL0001", FieldSupervisorStatus, domain.ApprovalApproved, supervisor)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("diretor decide o próprio estágio independente do supervisor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPlanRepo := mocks.NewMockActionPlanRepository(ctrl)
		service := &Service{planRepo: mockPlanRepo}

		current := delegatePlan()
		current.SupervisorStatus = domain.ApprovalRejected

		decided := delegatePlan()
		decided.SupervisorStatus = domain.ApprovalRejected
		decided.SalesDirectorStatus = domain.ApprovalApproved

		gomock.InOrder(
			mockPlanRepo.EXPECT().GetByID("PL0001").Return(current, nil),
			mockPlanRepo.EXPECT().UpdateSalesDirectorStatus("PL0001", domain.ApprovalApproved).Return(int64(1), nil),
			mockPlanRepo.EXPECT().GetByID("PL0001").Return(decided, nil),
		)

		plan, err := service.Transition("PL0001", FieldSalesDirectorStatus, domain.ApprovalApproved, director)
		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalApproved, plan.SalesDirectorStatus)
		assert.Equal(t, domain.ApprovalRejected, plan.SupervisorStatus)
	})
}
