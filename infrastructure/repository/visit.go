package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
)

const visitsTable = "visits"

type VisitRepository interface {
	Insert(visit *domain.Visit) error
	ListByPlanAndPeriod(visitPlanID string, startDate, endDate time.Time) ([]*domain.Visit, error)
	ListByDelegateAndPeriod(delegateID int, startDate, endDate time.Time) ([]*domain.Visit, error)
	Delete(visitID string) error
}

type visitRepository struct {
	conn *postgres.Connection
}

func NewVisitRepository(conn *postgres.Connection) VisitRepository {
	return &visitRepository{
		conn: conn,
	}
}

// Insert grava uma visita com data civil (sem componente de hora). A
// operação não é idempotente: duas submissões no mesmo dia criam duas
// linhas e contam duas vezes no total do mês.
func (r *visitRepository) Insert(visit *domain.Visit) error {
	query, args, err := squirrel.
		Insert(visitsTable).
		Columns("id", "visit_plan_id", "visit_date").
		Values(visit.ID, visit.VisitPlanID, visit.VisitDate.Format(time.DateOnly)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir visita: %w", err)
	}

	return nil
}

func (r *visitRepository) ListByPlanAndPeriod(visitPlanID string, startDate, endDate time.Time) ([]*domain.Visit, error) {
	return r.list(squirrel.
		Select("v.id, v.visit_plan_id, v.visit_date").
		From(visitsTable + " v").
		Where(squirrel.Eq{"v.visit_plan_id": visitPlanID}).
		Where(squirrel.GtOrEq{"v.visit_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"v.visit_date": endDate.Format(time.DateOnly)}).
		OrderBy("v.visit_date ASC"))
}

// ListByDelegateAndPeriod retorna todas as visitas dos planos do delegado
// dentro do período, para o cálculo do índice de retorno em lote
func (r *visitRepository) ListByDelegateAndPeriod(delegateID int, startDate, endDate time.Time) ([]*domain.Visit, error) {
	return r.list(squirrel.
		Select("v.id, v.visit_plan_id, v.visit_date").
		From(visitsTable+" v").
		Join(visitPlansTable+" vp ON vp.id = v.visit_plan_id").
		Where(squirrel.Eq{"vp.delegate_id": delegateID}).
		Where(squirrel.GtOrEq{"v.visit_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"v.visit_date": endDate.Format(time.DateOnly)}).
		OrderBy("v.visit_date ASC"))
}

func (r *visitRepository) list(builder squirrel.SelectBuilder) ([]*domain.Visit, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	visits := make([]*domain.Visit, 0)
	for rows.Next() {
		visit := &domain.Visit{}
		err := rows.Scan(&visit.ID, &visit.VisitPlanID, &visit.VisitDate)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear visita: %w", err)
		}
		visits = append(visits, visit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return visits, nil
}

// Delete remove uma visita; operação restrita ao admin na camada de rotas
func (r *visitRepository) Delete(visitID string) error {
	query, args, err := squirrel.
		Delete(visitsTable).
		Where(squirrel.Eq{"id": visitID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover visita: %w", err)
	}

	return nil
}
