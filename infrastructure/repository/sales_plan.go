package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
)

type SalesPlanRepository interface {
	GetByID(planID string) (*domain.SalesPlan, error)
	ListByDelegate(delegateID int) ([]*domain.SalesPlan, error)
	Create(plan *domain.SalesPlan) (*domain.SalesPlan, error)
	Delete(planID string) error
}

type salesPlanRepository struct {
	conn *postgres.Connection
}

func NewSalesPlanRepository(conn *postgres.Connection) SalesPlanRepository {
	return &salesPlanRepository{
		conn: conn,
	}
}

func (r *salesPlanRepository) GetByID(planID string) (*domain.SalesPlan, error) {
	query, args, err := squirrel.
		Select("id, delegate_id, product_id, brick_id, created_at").
		From(salesPlansTable).
		Where(squirrel.Eq{"id": planID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	plan := &domain.SalesPlan{}
	err = r.conn.QueryRow(query, args...).Scan(
		&plan.ID,
		&plan.DelegateID,
		&plan.ProductID,
		&plan.BrickID,
		&plan.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear plano de vendas: %w", err)
	}

	return plan, nil
}

func (r *salesPlanRepository) ListByDelegate(delegateID int) ([]*domain.SalesPlan, error) {
	query, args, err := squirrel.
		Select("id, delegate_id, product_id, brick_id, created_at").
		From(salesPlansTable).
		Where(squirrel.Eq{"delegate_id": delegateID}).
		OrderBy("created_at ASC").
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

	plans := make([]*domain.SalesPlan, 0)
	for rows.Next() {
		plan := &domain.SalesPlan{}
		err := rows.Scan(
			&plan.ID,
			&plan.DelegateID,
			&plan.ProductID,
			&plan.BrickID,
			&plan.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear plano de vendas: %w", err)
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return plans, nil
}

func (r *salesPlanRepository) Create(plan *domain.SalesPlan) (*domain.SalesPlan, error) {
	query, args, err := squirrel.
		Insert(salesPlansTable).
		Columns("id", "delegate_id", "product_id", "brick_id").
		Values(plan.ID, plan.DelegateID, plan.ProductID, plan.BrickID).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&plan.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir plano de vendas: %w", err)
	}

	return plan, nil
}

func (r *salesPlanRepository) Delete(planID string) error {
	query, args, err := squirrel.
		Delete(salesPlansTable).
		Where(squirrel.Eq{"id": planID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover plano de vendas: %w", err)
	}

	return nil
}
