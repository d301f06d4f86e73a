package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/visiting"
	"github.com/vfg2006/pharma-sfe-api/pkg/apiErrors"
	"github.com/vfg2006/pharma-sfe-api/pkg/middleware"
	"github.com/vfg2006/pharma-sfe-api/pkg/utils"
)

type RecordVisitRequest struct {
	DoctorID string `json:"doctor_id"`
}

// referenceDate resolve a data de referência do relatório: hoje, ou a data
// informada no parâmetro ?date=YYYY-MM-DD para consultar meses passados
func referenceDate(r *http.Request) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return time.Now(), nil
	}

	parsed, err := utils.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return *parsed, nil
}

// GetReturnIndex retorna o índice de retorno completo do delegado logado:
// percentual do ano, semáforo de status e contadores do mês por doutor
func GetReturnIndex(service visiting.ComplianceEvaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		at, err := referenceDate(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de referência inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		entries, err := service.BuildReturnIndex(userClaims.UserID, at)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular índice de retorno", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(entries)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetDoctorsNeedingVisit retorna apenas os doutores cuja cota de visitas do
// mês corrente ainda não foi cumprida
func GetDoctorsNeedingVisit(service visiting.ComplianceEvaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		at, err := referenceDate(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de referência inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		entries, err := service.DoctorsNeedingVisit(userClaims.UserID, at)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar doutores pendentes de visita", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(entries)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// RecordVisit registra uma visita do delegado logado, datada de hoje
func RecordVisit(service visiting.ComplianceEvaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecordVisit")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req RecordVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.DoctorID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do doutor não fornecido", nil)
			return
		}

		visit, err := service.RecordVisit(req.DoctorID, userClaims.UserID, time.Now())
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, visiting.ErrVisitPlanNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Doutor não faz parte do plano de visitas do delegado", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar visita", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(visit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
