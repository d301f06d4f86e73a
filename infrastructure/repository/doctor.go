package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
)

const doctorsTable = "doctors"

type DoctorRepository interface {
	GetByID(doctorID string) (*domain.Doctor, error)
	ListAll() ([]*domain.Doctor, error)
	ListByIDs(doctorIDs []string) ([]*domain.Doctor, error)
	Create(doctor *domain.Doctor) (*domain.Doctor, error)
	Update(doctor *domain.Doctor) error
	Delete(doctorID string) error
}

type doctorRepository struct {
	conn *postgres.Connection
}

func NewDoctorRepository(conn *postgres.Connection) DoctorRepository {
	return &doctorRepository{
		conn: conn,
	}
}

func (r *doctorRepository) GetByID(doctorID string) (*domain.Doctor, error) {
	query, args, err := squirrel.
		Select("id, name, specialty, brick_id, created_at, updated_at").
		From(doctorsTable).
		Where(squirrel.Eq{"id": doctorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	doctor := &domain.Doctor{}
	err = r.conn.QueryRow(query, args...).Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialty,
		&doctor.BrickID,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear doutor: %w", err)
	}

	return doctor, nil
}

func (r *doctorRepository) ListAll() ([]*domain.Doctor, error) {
	return r.list(squirrel.
		Select("id, name, specialty, brick_id, created_at, updated_at").
		From(doctorsTable).
		OrderBy("name ASC"))
}

func (r *doctorRepository) ListByIDs(doctorIDs []string) ([]*domain.Doctor, error) {
	if len(doctorIDs) == 0 {
		return []*domain.Doctor{}, nil
	}

	return r.list(squirrel.
		Select("id, name, specialty, brick_id, created_at, updated_at").
		From(doctorsTable).
		Where(squirrel.Eq{"id": doctorIDs}).
		OrderBy("name ASC"))
}

func (r *doctorRepository) list(builder squirrel.SelectBuilder) ([]*domain.Doctor, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		doctor := &domain.Doctor{}
		err := rows.Scan(
			&doctor.ID,
			&doctor.Name,
			&doctor.Specialty,
			&doctor.BrickID,
			&doctor.CreatedAt,
			&doctor.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear doutor: %w", err)
		}
		doctors = append(doctors, doctor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return doctors, nil
}

func (r *doctorRepository) Create(doctor *domain.Doctor) (*domain.Doctor, error) {
	query, args, err := squirrel.
		Insert(doctorsTable).
		Columns("id", "name", "specialty", "brick_id").
		Values(doctor.ID, doctor.Name, doctor.Specialty, doctor.BrickID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&doctor.CreatedAt, &doctor.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir doutor: %w", err)
	}

	return doctor, nil
}

func (r *doctorRepository) Update(doctor *domain.Doctor) error {
	query, args, err := squirrel.
		Update(doctorsTable).
		Set("name", doctor.Name).
		Set("specialty", doctor.Specialty).
		Set("brick_id", doctor.BrickID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": doctor.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar doutor: %w", err)
	}

	return nil
}

func (r *doctorRepository) Delete(doctorID string) error {
	query, args, err := squirrel.
		Delete(doctorsTable).
		Where(squirrel.Eq{"id": doctorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover doutor: %w", err)
	}

	return nil
}
