package planning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de planos de ação
var (
	ErrPlanNotFound = errors.New("action plan not found")
	// ErrInvalidState: transição a partir de estado terminal ou para um
	// status inválido; rejeitada antes de qualquer escrita
	ErrInvalidState = errors.New("approval status transition not allowed")
	// ErrNotLegitimateApprover: o principal não tem o papel do campo ou
	// não é aprovador legítimo do criador do plano
	ErrNotLegitimateApprover = errors.New("principal is not a legitimate approver for this plan")
	ErrMissingRequiredData   = errors.New("title is required")
)

// PlanError é um erro com contexto adicional para planos de ação
type PlanError struct {
	Err    error
	Code   string
	PlanID string
}

func (e *PlanError) Error() string {
	if e.PlanID != "" {
		return fmt.Sprintf("%s: plan %s", e.Err.Error(), e.PlanID)
	}
	return e.Err.Error()
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

func NewPlanError(err error, code, planID string) *PlanError {
	return &PlanError{
		Err:    err,
		Code:   code,
		PlanID: planID,
	}
}
