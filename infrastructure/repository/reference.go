package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
)

const (
	bricksTable   = "bricks"
	productsTable = "products"
)

type BrickRepository interface {
	GetByID(brickID string) (*domain.Brick, error)
	ListAll() ([]*domain.Brick, error)
	Create(brick *domain.Brick) error
	Update(brick *domain.Brick) error
	Delete(brickID string) error
}

type ProductRepository interface {
	GetByID(productID string) (*domain.Product, error)
	ListAll() ([]*domain.Product, error)
	Create(product *domain.Product) error
	Update(product *domain.Product) error
	Delete(productID string) error
}

type brickRepository struct {
	conn *postgres.Connection
}

func NewBrickRepository(conn *postgres.Connection) BrickRepository {
	return &brickRepository{
		conn: conn,
	}
}

func (r *brickRepository) GetByID(brickID string) (*domain.Brick, error) {
	query, args, err := squirrel.
		Select("id, name, sector").
		From(bricksTable).
		Where(squirrel.Eq{"id": brickID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	brick := &domain.Brick{}
	err = r.conn.QueryRow(query, args...).Scan(&brick.ID, &brick.Name, &brick.Sector)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear brick: %w", err)
	}

	return brick, nil
}

func (r *brickRepository) ListAll() ([]*domain.Brick, error) {
	query, args, err := squirrel.
		Select("id, name, sector").
		From(bricksTable).
		OrderBy("sector ASC, name ASC").
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

	bricks := make([]*domain.Brick, 0)
	for rows.Next() {
		brick := &domain.Brick{}
		if err := rows.Scan(&brick.ID, &brick.Name, &brick.Sector); err != nil {
			return nil, fmt.Errorf("erro ao escanear brick: %w", err)
		}
		bricks = append(bricks, brick)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return bricks, nil
}

func (r *brickRepository) Create(brick *domain.Brick) error {
	query, args, err := squirrel.
		Insert(bricksTable).
		Columns("id", "name", "sector").
		Values(brick.ID, brick.Name, brick.Sector).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir brick: %w", err)
	}

	return nil
}

func (r *brickRepository) Update(brick *domain.Brick) error {
	query, args, err := squirrel.
		Update(bricksTable).
		Set("name", brick.Name).
		Set("sector", brick.Sector).
		Where(squirrel.Eq{"id": brick.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar brick: %w", err)
	}

	return nil
}

func (r *brickRepository) Delete(brickID string) error {
	query, args, err := squirrel.
		Delete(bricksTable).
		Where(squirrel.Eq{"id": brickID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover brick: %w", err)
	}

	return nil
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetByID(productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("id, name, category").
		From(productsTable).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.Product{}
	err = r.conn.QueryRow(query, args...).Scan(&product.ID, &product.Name, &product.Category)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListAll() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("id, name, category").
		From(productsTable).
		OrderBy("name ASC").
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Category); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) Create(product *domain.Product) error {
	query, args, err := squirrel.
		Insert(productsTable).
		Columns("id", "name", "category").
		Values(product.ID, product.Name, product.Category).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir produto: %w", err)
	}

	return nil
}

func (r *productRepository) Update(product *domain.Product) error {
	query, args, err := squirrel.
		Update(productsTable).
		Set("name", product.Name).
		Set("category", product.Category).
		Where(squirrel.Eq{"id": product.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	return nil
}

func (r *productRepository) Delete(productID string) error {
	query, args, err := squirrel.
		Delete(productsTable).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	return nil
}
