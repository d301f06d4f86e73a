package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
)

const (
	salesTable      = "sales s"
	salesPlansTable = "sales_plans"
)

type SalesRepository interface {
	GetByPlanAndYear(salesPlanID string, year int) (*domain.Sales, error)
	ListByDelegateAndYear(delegateID int, year int) (map[string]*domain.Sales, error)
	SaveOrUpdate(sales *domain.Sales) error
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) GetByPlanAndYear(salesPlanID string, year int) (*domain.Sales, error) {
	query, args, err := squirrel.
		Select("s.id, s.sales_plan_id, s.year, s.targets, s.achievements, s.created_at, s.updated_at").
		From(salesTable).
		Where(squirrel.Eq{"s.sales_plan_id": salesPlanID, "s.year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	sales, err := scanSales(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vendas: %w", err)
	}

	return sales, nil
}

// ListByDelegateAndYear retorna as vendas do ano indexadas por plano de vendas
func (r *salesRepository) ListByDelegateAndYear(delegateID int, year int) (map[string]*domain.Sales, error) {
	query, args, err := squirrel.
		Select("s.id, s.sales_plan_id, s.year, s.targets, s.achievements, s.created_at, s.updated_at").
		From(salesTable).
		Join(salesPlansTable+" sp ON sp.id = s.sales_plan_id").
		Where(squirrel.Eq{"sp.delegate_id": delegateID, "s.year": year}).
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

	salesByPlan := make(map[string]*domain.Sales)
	for rows.Next() {
		sales, err := scanSales(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas: %w", err)
		}
		salesByPlan[sales.SalesPlanID] = sales
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return salesByPlan, nil
}

// SaveOrUpdate grava os arrays mensais como JSONB; UNIQUE(sales_plan_id, year)
// garante um registro de vendas por ano civil
func (r *salesRepository) SaveOrUpdate(sales *domain.Sales) error {
	sales.NormalizeArrays()

	targetsJSON, err := json.Marshal(sales.Targets)
	if err != nil {
		return fmt.Errorf("erro ao serializar objetivos para JSON: %w", err)
	}

	achievementsJSON, err := json.Marshal(sales.Achievements)
	if err != nil {
		return fmt.Errorf("erro ao serializar realizações para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("sales").
		Columns("id", "sales_plan_id", "year", "targets", "achievements").
		Values(sales.ID, sales.SalesPlanID, sales.Year, targetsJSON, achievementsJSON).
		Suffix(`
			ON CONFLICT (sales_plan_id, year) DO UPDATE SET
				targets = EXCLUDED.targets,
				achievements = EXCLUDED.achievements,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanSales(scan func(dest ...any) error) (*domain.Sales, error) {
	sales := &domain.Sales{}
	var targetsJSON, achievementsJSON []byte

	err := scan(
		&sales.ID,
		&sales.SalesPlanID,
		&sales.Year,
		&targetsJSON,
		&achievementsJSON,
		&sales.CreatedAt,
		&sales.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if targetsJSON != nil {
		if err := json.Unmarshal(targetsJSON, &sales.Targets); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de objetivos: %w", err)
		}
	}
	if achievementsJSON != nil {
		if err := json.Unmarshal(achievementsJSON, &sales.Achievements); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de realizações: %w", err)
		}
	}

	// Entradas ausentes valem 0
	sales.NormalizeArrays()

	return sales, nil
}
