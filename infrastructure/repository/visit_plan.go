package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
)

const visitPlansTable = "visit_plans"

type VisitPlanRepository interface {
	GetByDoctorAndDelegate(doctorID string, delegateID int) (*domain.VisitPlan, error)
	ListByDelegate(delegateID int) ([]*domain.VisitPlan, error)
	ListAll() ([]*domain.VisitPlan, error)
	Create(plan *domain.VisitPlan) (*domain.VisitPlan, error)
	Delete(planID string) error
}

type visitPlanRepository struct {
	conn *postgres.Connection
}

func NewVisitPlanRepository(conn *postgres.Connection) VisitPlanRepository {
	return &visitPlanRepository{
		conn: conn,
	}
}

func (r *visitPlanRepository) GetByDoctorAndDelegate(doctorID string, delegateID int) (*domain.VisitPlan, error) {
	// UNIQUE(doctor_id, delegate_id) garante no máximo uma linha
	query, args, err := squirrel.
		Select("id, doctor_id, delegate_id, visit_frequency, created_at").
		From(visitPlansTable).
		Where(squirrel.Eq{"doctor_id": doctorID, "delegate_id": delegateID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	plan := &domain.VisitPlan{}
	err = r.conn.QueryRow(query, args...).Scan(
		&plan.ID,
		&plan.DoctorID,
		&plan.DelegateID,
		&plan.VisitFrequency,
		&plan.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear plano de visita: %w", err)
	}

	return plan, nil
}

func (r *visitPlanRepository) ListByDelegate(delegateID int) ([]*domain.VisitPlan, error) {
	return r.list(squirrel.
		Select("id, doctor_id, delegate_id, visit_frequency, created_at").
		From(visitPlansTable).
		Where(squirrel.Eq{"delegate_id": delegateID}))
}

func (r *visitPlanRepository) ListAll() ([]*domain.VisitPlan, error) {
	return r.list(squirrel.
		Select("id, doctor_id, delegate_id, visit_frequency, created_at").
		From(visitPlansTable))
}

func (r *visitPlanRepository) list(builder squirrel.SelectBuilder) ([]*domain.VisitPlan, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.VisitPlan, 0)
	for rows.Next() {
		plan := &domain.VisitPlan{}
		err := rows.Scan(
			&plan.ID,
			&plan.DoctorID,
			&plan.DelegateID,
			&plan.VisitFrequency,
			&plan.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear plano de visita: %w", err)
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return plans, nil
}

func (r *visitPlanRepository) Create(plan *domain.VisitPlan) (*domain.VisitPlan, error) {
	query, args, err := squirrel.
		Insert(visitPlansTable).
		Columns("id", "doctor_id", "delegate_id", "visit_frequency").
		Values(plan.ID, plan.DoctorID, plan.DelegateID, plan.VisitFrequency).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&plan.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir plano de visita: %w", err)
	}

	return plan, nil
}

func (r *visitPlanRepository) Delete(planID string) error {
	query, args, err := squirrel.
		Delete(visitPlansTable).
		Where(squirrel.Eq{"id": planID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover plano de visita: %w", err)
	}

	return nil
}
