package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sfe-api/internal/metrics"
)

const complianceSnapshotsTable = "compliance_snapshots"

// ComplianceSnapshot é a fotografia mensal do índice de retorno de um
// doutor para um delegado, materializada pelo agendador
type ComplianceSnapshot struct {
	ID              string         `json:"id"`
	Period          string         `json:"period"` // formato mm-yyyy
	DelegateID      int            `json:"delegate_id"`
	DoctorID        string         `json:"doctor_id"`
	VisitsCompleted int            `json:"visits_completed"`
	VisitsExpected  int            `json:"visits_expected"`
	Percentage      int            `json:"percentage"`
	Status          metrics.Status `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type ComplianceSnapshotRepository interface {
	SaveOrUpdate(snapshot *ComplianceSnapshot) error
	ListByPeriod(period string) ([]*ComplianceSnapshot, error)
	DeleteOlderThan(months int) (int64, error)
}

type complianceSnapshotRepository struct {
	conn *postgres.Connection
}

func NewComplianceSnapshotRepository(conn *postgres.Connection) ComplianceSnapshotRepository {
	return &complianceSnapshotRepository{
		conn: conn,
	}
}

func (r *complianceSnapshotRepository) SaveOrUpdate(snapshot *ComplianceSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(complianceSnapshotsTable).
		Columns("id", "period", "delegate_id", "doctor_id", "visits_completed", "visits_expected", "percentage", "status").
		Values(
			snapshot.ID,
			snapshot.Period,
			snapshot.DelegateID,
			snapshot.DoctorID,
			snapshot.VisitsCompleted,
			snapshot.VisitsExpected,
			snapshot.Percentage,
			snapshot.Status,
		).
		Suffix(`
			ON CONFLICT (period, delegate_id, doctor_id) DO UPDATE SET
				visits_completed = EXCLUDED.visits_completed,
				visits_expected = EXCLUDED.visits_expected,
				percentage = EXCLUDED.percentage,
				status = EXCLUDED.status,
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

func (r *complianceSnapshotRepository) ListByPeriod(period string) ([]*ComplianceSnapshot, error) {
	query, args, err := squirrel.
		Select("id, period, delegate_id, doctor_id, visits_completed, visits_expected, percentage, status, created_at, updated_at").
		From(complianceSnapshotsTable).
		Where(squirrel.Eq{"period": period}).
		OrderBy("delegate_id ASC, doctor_id ASC").
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

	snapshots := make([]*ComplianceSnapshot, 0)
	for rows.Next() {
		snapshot := &ComplianceSnapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.Period,
			&snapshot.DelegateID,
			&snapshot.DoctorID,
			&snapshot.VisitsCompleted,
			&snapshot.VisitsExpected,
			&snapshot.Percentage,
			&snapshot.Status,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// DeleteOlderThan remove fotografias mais antigas que a retenção configurada
func (r *complianceSnapshotRepository) DeleteOlderThan(months int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, -months, 0).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(complianceSnapshotsTable).
		Where(squirrel.Lt{"created_at": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
