package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/planning"
	"github.com/vfg2006/pharma-sfe-api/pkg/apiErrors"
	"github.com/vfg2006/pharma-sfe-api/pkg/middleware"
)

type UpdateApprovalStatusRequest struct {
	Status domain.ApprovalStatus `json:"status"`
}

// ListActionPlans retorna os planos de ação visíveis ao usuário logado,
// categorizados conforme o papel dele
func ListActionPlans(service planning.PlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		buckets, err := service.ListForPrincipal(domain.PrincipalFromClaims(userClaims))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar planos de ação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(buckets)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateActionPlan cria um plano de ação com os dois estágios de aprovação
// pendentes
func CreateActionPlan(service planning.PlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateActionPlan")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var plan domain.ActionPlan
		if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreatePlan(&plan, domain.PrincipalFromClaims(userClaims))
		if err != nil {
			handlePlanError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(created)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateSupervisorStatus aplica a transição do estágio do supervisor
func UpdateSupervisorStatus(service planning.PlanService) http.HandlerFunc {
	return updateApprovalStatus(service, planning.FieldSupervisorStatus)
}

// UpdateSalesDirectorStatus aplica a transição do estágio do diretor de vendas
func UpdateSalesDirectorStatus(service planning.PlanService) http.HandlerFunc {
	return updateApprovalStatus(service, planning.FieldSalesDirectorStatus)
}

func updateApprovalStatus(service planning.PlanService, field planning.ApprovalField) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		planID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if planID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do plano não fornecido", nil)
			return
		}

		var req UpdateApprovalStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		plan, err := service.Transition(planID, field, req.Status, domain.PrincipalFromClaims(userClaims))
		if err != nil {
			handlePlanError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(plan)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handlePlanError traduz os erros de negócio de planos de ação para a
// resposta padronizada da API
func handlePlanError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var planErr *planning.PlanError
	if errors.As(err, &planErr) {
		apiErrors.WriteError(w, planErr.Code, planErr.Error(), map[string]any{
			"plan_id": planErr.PlanID,
		})
		return
	}

	switch {
	case errors.Is(err, planning.ErrPlanNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Plano de ação não encontrado", nil)

	case errors.Is(err, planning.ErrInvalidState):
		apiErrors.WriteError(w, apiErrors.ErrInvalidStateTransition, "Transição de status não permitida", nil)

	case errors.Is(err, planning.ErrNotLegitimateApprover):
		apiErrors.WriteError(w, apiErrors.ErrNotLegitimateApprover, "Usuário não é aprovador legítimo deste plano", nil)

	case errors.Is(err, planning.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título do plano é obrigatório", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar plano de ação", nil)
	}
}
