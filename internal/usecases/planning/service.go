package planning

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/pkg/apiErrors"
	"github.com/vfg2006/pharma-sfe-api/pkg/utils"
)

// ApprovalField identifica qual dos dois campos independentes de status
// está sendo transicionado
type ApprovalField string

const (
	FieldSupervisorStatus    ApprovalField = "supervisor_status"
	FieldSalesDirectorStatus ApprovalField = "sales_director_status"
)

type PlanService interface {
	// ListForPrincipal retorna os planos visíveis já categorizados
	ListForPrincipal(principal domain.Principal) (*domain.ActionPlanBuckets, error)

	// CreatePlan cria um plano com os dois campos de aprovação pendentes
	CreatePlan(plan *domain.ActionPlan, creator domain.Principal) (*domain.ActionPlan, error)

	// Transition aplica pendente→aprovado ou pendente→rejeitado no campo
	// indicado, validando papel e legitimidade do principal
	Transition(planID string, field ApprovalField, status domain.ApprovalStatus, principal domain.Principal) (*domain.ActionPlan, error)
}

type Service struct {
	planRepo repository.ActionPlanRepository
}

func NewService(planRepo repository.ActionPlanRepository) PlanService {
	return &Service{
		planRepo: planRepo,
	}
}

func (s *Service) ListForPrincipal(principal domain.Principal) (*domain.ActionPlanBuckets, error) {
	plans, err := s.planRepo.ListAll()
	if err != nil {
		return nil, err
	}

	return Categorize(plans, principal), nil
}

func (s *Service) CreatePlan(plan *domain.ActionPlan, creator domain.Principal) (*domain.ActionPlan, error) {
	if plan.Title == "" {
		return nil, NewPlanError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	plan.ID = id
	plan.CreatorID = creator.ID
	plan.CreatorRole = creator.Role
	// Estado inicial dos dois estágios de aprovação
	plan.SupervisorStatus = domain.ApprovalPending
	plan.SalesDirectorStatus = domain.ApprovalPending

	created, err := s.planRepo.Create(plan)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"plan_id":      created.ID,
		"creator_id":   creator.ID,
		"creator_role": creator.Role.String(),
	}).Info("plano de ação criado")

	return created, nil
}

func (s *Service) Transition(
	planID string,
	field ApprovalField,
	status domain.ApprovalStatus,
	principal domain.Principal,
) (*domain.ActionPlan, error) {
	// Somente aprovado ou rejeitado são destinos válidos; voltar para
	// pendente não é suportado
	if !status.Valid() || status == domain.ApprovalPending {
		return nil, NewPlanError(ErrInvalidState, apiErrors.ErrInvalidStateTransition, planID)
	}

	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		return nil, err
	}

	if plan == nil {
		return nil, NewPlanError(ErrPlanNotFound, apiErrors.ErrResourceNotFound, planID)
	}

	if !s.isLegitimateApprover(plan, field, principal) {
		return nil, NewPlanError(ErrNotLegitimateApprover, apiErrors.ErrNotLegitimateApprover, planID)
	}

	var rowsAffected int64
	switch field {
	case FieldSupervisorStatus:
		rowsAffected, err = s.planRepo.UpdateSupervisorStatus(planID, status)
	case FieldSalesDirectorStatus:
		rowsAffected, err = s.planRepo.UpdateSalesDirectorStatus(planID, status)
	default:
		return nil, NewPlanError(ErrInvalidState, apiErrors.ErrInvalidStateTransition, planID)
	}
	if err != nil {
		return nil, err
	}

	// A pré-condição de estado pendente vive na própria query; zero linhas
	// afetadas significa campo já em estado terminal
	if rowsAffected == 0 {
		return nil, NewPlanError(ErrInvalidState, apiErrors.ErrInvalidStateTransition, planID)
	}

	logrus.WithFields(logrus.Fields{
		"plan_id":      planID,
		"field":        string(field),
		"status":       string(status),
		"principal_id": principal.ID,
	}).Info("status do plano de ação atualizado")

	return s.planRepo.GetByID(planID)
}

// isLegitimateApprover valida papel e vínculo do principal com o plano: o
// criador é subordinado na hierarquia ou o principal está na audiência
func (s *Service) isLegitimateApprover(plan *domain.ActionPlan, field ApprovalField, principal domain.Principal) bool {
	switch field {
	case FieldSupervisorStatus:
		if principal.Role != domain.RoleSupervisor {
			return false
		}
		return plan.CreatorRole == domain.RoleDelegate || plan.TargetsSupervisor(principal.ID)

	case FieldSalesDirectorStatus:
		if principal.Role != domain.RoleSalesDirector {
			return false
		}
		return plan.CreatorRole == domain.RoleDelegate ||
			plan.CreatorRole == domain.RoleSupervisor ||
			plan.TargetsSalesDirector(principal.ID)
	}

	return false
}
