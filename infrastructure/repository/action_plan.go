package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
)

const actionPlansTable = "action_plans"

type ActionPlanRepository interface {
	GetByID(planID string) (*domain.ActionPlan, error)
	ListAll() ([]*domain.ActionPlan, error)
	Create(plan *domain.ActionPlan) (*domain.ActionPlan, error)
	// UpdateSupervisorStatus só efetiva a transição se o campo ainda
	// estiver pendente; retorna o número de linhas afetadas
	UpdateSupervisorStatus(planID string, status domain.ApprovalStatus) (int64, error)
	UpdateSalesDirectorStatus(planID string, status domain.ApprovalStatus) (int64, error)
}

type actionPlanRepository struct {
	conn *postgres.Connection
}

func NewActionPlanRepository(conn *postgres.Connection) ActionPlanRepository {
	return &actionPlanRepository{
		conn: conn,
	}
}

const actionPlanColumns = `id, title, note, creator_id, creator_role,
	targeted_delegates, targeted_supervisors, targeted_sales_directors,
	targeted_products, targeted_bricks, targeted_doctors,
	supervisor_status, sales_director_status, created_at, updated_at`

func (r *actionPlanRepository) GetByID(planID string) (*domain.ActionPlan, error) {
	query, args, err := squirrel.
		Select(actionPlanColumns).
		From(actionPlansTable).
		Where(squirrel.Eq{"id": planID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	plan, err := scanActionPlan(r.conn.QueryRow(query, args...).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear plano de ação: %w", err)
	}

	return plan, nil
}

func (r *actionPlanRepository) ListAll() ([]*domain.ActionPlan, error) {
	query, args, err := squirrel.
		Select(actionPlanColumns).
		From(actionPlansTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.ActionPlan, 0)
	for rows.Next() {
		plan, err := scanActionPlan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear plano de ação: %w", err)
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return plans, nil
}

func (r *actionPlanRepository) Create(plan *domain.ActionPlan) (*domain.ActionPlan, error) {
	query, args, err := squirrel.
		Insert(actionPlansTable).
		Columns(
			"id", "title", "note", "creator_id", "creator_role",
			"targeted_delegates", "targeted_supervisors", "targeted_sales_directors",
			"targeted_products", "targeted_bricks", "targeted_doctors",
			"supervisor_status", "sales_director_status",
		).
		Values(
			plan.ID, plan.Title, plan.Note, plan.CreatorID, plan.CreatorRole,
			pq.Array(plan.TargetedDelegates),
			pq.Array(plan.TargetedSupervisors),
			pq.Array(plan.TargetedSalesDirectors),
			pq.Array(plan.TargetedProducts),
			pq.Array(plan.TargetedBricks),
			pq.Array(plan.TargetedDoctors),
			plan.SupervisorStatus, plan.SalesDirectorStatus,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir plano de ação: %w", err)
	}

	return plan, nil
}

func (r *actionPlanRepository) UpdateSupervisorStatus(planID string, status domain.ApprovalStatus) (int64, error) {
	return r.updateStatusField(planID, "supervisor_status", status)
}

func (r *actionPlanRepository) UpdateSalesDirectorStatus(planID string, status domain.ApprovalStatus) (int64, error) {
	return r.updateStatusField(planID, "sales_director_status", status)
}

// updateStatusField aplica a pré-condição de estado pendente na própria
// query; 0 linhas afetadas significa transição a partir de estado terminal
func (r *actionPlanRepository) updateStatusField(planID, field string, status domain.ApprovalStatus) (int64, error) {
	query, args, err := squirrel.
		Update(actionPlansTable).
		Set(field, status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": planID, field: domain.ApprovalPending}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar status do plano de ação: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanActionPlan(scan func(dest ...any) error) (*domain.ActionPlan, error) {
	plan := &domain.ActionPlan{}
	var delegates, supervisors, salesDirectors pq.Int64Array
	var products, bricks, doctors pq.StringArray

	err := scan(
		&plan.ID,
		&plan.Title,
		&plan.Note,
		&plan.CreatorID,
		&plan.CreatorRole,
		&delegates,
		&supervisors,
		&salesDirectors,
		&products,
		&bricks,
		&doctors,
		&plan.SupervisorStatus,
		&plan.SalesDirectorStatus,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	plan.TargetedDelegates = int64sToInts(delegates)
	plan.TargetedSupervisors = int64sToInts(supervisors)
	plan.TargetedSalesDirectors = int64sToInts(salesDirectors)
	plan.TargetedProducts = products
	plan.TargetedBricks = bricks
	plan.TargetedDoctors = doctors

	return plan, nil
}

func int64sToInts(values pq.Int64Array) []int {
	converted := make([]int, 0, len(values))
	for _, v := range values {
		converted = append(converted, int(v))
	}
	return converted
}
