package handler

import (
	"net/http"

	"github.com/vfg2006/pharma-sfe-api/internal/api/handler/router"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/authenticating"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/planning"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/reference"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/selling"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/visiting"
	"github.com/vfg2006/pharma-sfe-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Visits expõe o índice de retorno e o registro de visitas do delegado logado
func Visits(service visiting.ComplianceEvaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/return-index",
			Method:      http.MethodGet,
			Handler:     GetReturnIndex(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.FieldForce()},
		},
		{
			Path:        "/v1/me/doctors/needing-visit",
			Method:      http.MethodGet,
			Handler:     GetDoctorsNeedingVisit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.FieldForce()},
		},
		{
			Path:        "/v1/visits",
			Method:      http.MethodPost,
			Handler:     RecordVisit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.FieldForce()},
		},
	}
}

// Sales expõe o desempenho de vendas do delegado e a carga dos números oficiais
func Sales(service selling.PerformanceService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/sales-performance",
			Method:      http.MethodGet,
			Handler:     GetSalesPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.FieldForce()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPut,
			Handler:     SaveSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// ActionPlans expõe a listagem categorizada, a criação e os dois estágios de
// aprovação dos planos de ação
func ActionPlans(service planning.PlanService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/action-plans",
			Method:      http.MethodGet,
			Handler:     ListActionPlans(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/action-plans",
			Method:      http.MethodPost,
			Handler:     CreateActionPlan(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.FieldForce()},
		},
		{
			Path:        "/v1/action-plans/:id/supervisor-status",
			Method:      http.MethodPut,
			Handler:     UpdateSupervisorStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Approvers()},
		},
		{
			Path:        "/v1/action-plans/:id/sales-director-status",
			Method:      http.MethodPut,
			Handler:     UpdateSalesDirectorStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Approvers()},
		},
	}
}

// Reference expõe o CRUD administrativo de doutores, produtos e bricks
func Reference(service reference.ReferenceService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/doctors",
			Method:      http.MethodGet,
			Handler:     ListDoctors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/doctors",
			Method:      http.MethodPost,
			Handler:     CreateDoctor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/doctors/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDoctor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/doctors/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDoctor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/bricks",
			Method:      http.MethodGet,
			Handler:     ListBricks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/bricks",
			Method:      http.MethodPost,
			Handler:     CreateBrick(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/bricks/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBrick(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/bricks/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBrick(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
