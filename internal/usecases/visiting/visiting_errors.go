package visiting

import "errors"

// Erros específicos para o contexto de visitas
var (
	// ErrVisitPlanNotFound indica que não existe plano de visita para o
	// par (doutor, delegado); nenhuma escrita parcial acontece
	ErrVisitPlanNotFound = errors.New("visit plan not found for doctor and delegate")
	ErrDoctorNotFound    = errors.New("doctor not found")
)
