package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos papéis
// allowedRoles é a lista de papéis com permissão para acessar a rota
func RoleMiddleware(allowedRoles []domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Obter claims do usuário do contexto
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			// Verificar se o papel do usuário está na lista de papéis permitidos
			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			// Se tiver permissão, continua para o próximo handler
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin})
}

// FieldForce permite acesso aos papéis da força de campo (delegados e a
// cadeia de supervisão), além de administradores
func FieldForce() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{
		domain.RoleAdmin,
		domain.RoleSalesDirector,
		domain.RoleSupervisor,
		domain.RoleDelegate,
	})
}

// Approvers permite acesso aos papéis que aprovam planos de ação
func Approvers() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleSalesDirector, domain.RoleSupervisor})
}

// AllRoles permite acesso para qualquer papel autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{
		domain.RoleAdmin,
		domain.RoleSalesDirector,
		domain.RoleSupervisor,
		domain.RoleDelegate,
		domain.RoleMarketingManager,
	})
}
