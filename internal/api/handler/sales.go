package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/selling"
	"github.com/vfg2006/pharma-sfe-api/pkg/apiErrors"
	"github.com/vfg2006/pharma-sfe-api/pkg/middleware"
)

// GetSalesPerformance retorna o desempenho de vendas do delegado logado:
// taxa de realização e ritmo de recrutamento por plano de vendas. O ano pode
// ser informado via query string; o padrão é o ano corrente.
func GetSalesPerformance(service selling.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		now := time.Now()
		year := now.Year()

		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			parsed, err := strconv.Atoi(yearStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			year = parsed
		}

		performances, err := service.BuildSalesPerformance(userClaims.UserID, year, now)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular desempenho de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(performances)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// SaveSales grava os objetivos e realizações mensais de um plano de vendas.
// Operação administrativa usada na carga dos números oficiais.
func SaveSales(service selling.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveSales")

		var sales domain.Sales
		if err := json.NewDecoder(r.Body).Decode(&sales); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if sales.SalesPlanID == "" || sales.Year == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Plano de vendas e ano são obrigatórios", nil)
			return
		}

		if err := service.SaveSales(&sales); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}
