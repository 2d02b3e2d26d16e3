// Package product provides the repository interface, the PostgreSQL
// implementation and the service for products.
package product

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrDuplicateSKU = errors.New("sku already exists")
)

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Search(ctx context.Context, q SearchQuery) ([]Product, error)
	UpdateStock(ctx context.Context, id int64, stock int) (*Product, error)
}

const columns = `id, name, sku, category, subcategory, price::text,
	current_inventory, warehouse_location, created_at, updated_at`

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO product (name, sku, category, subcategory, price, current_inventory, warehouse_location)
		VALUES ($1,$2,$3,$4,$5::numeric,$6,$7)
		RETURNING id, created_at, updated_at
	`, p.Name, p.SKU, p.Category, p.Subcategory, p.Price.String(), p.CurrentInventory, p.WarehouseLocation,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSKU
		}
		return err
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scan(r.db.QueryRow(ctx, `SELECT `+columns+` FROM product WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PGRepo) List(ctx context.Context) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+columns+` FROM product ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// Search matches the keyword as a literal, case-insensitive substring of the
// name. strpos of an empty needle is 1, so an empty keyword matches every row.
func (r *PGRepo) Search(ctx context.Context, q SearchQuery) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+columns+`
		FROM product
		WHERE strpos(lower(name), lower($1)) > 0
		  AND ($2 = '' OR category = $2)
		  AND ($3 = '' OR subcategory = $3)
		ORDER BY id
	`, q.Keyword, q.Category, q.Subcategory)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *PGRepo) UpdateStock(ctx context.Context, id int64, stock int) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scan(r.db.QueryRow(ctx, `
		UPDATE product
		SET current_inventory = $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns, id, stock))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func scan(row pgx.Row) (*Product, error) {
	var (
		p     Product
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.Subcategory, &price,
		&p.CurrentInventory, &p.WarehouseLocation, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	p.Price = d
	return &p, nil
}

func collect(rows pgx.Rows) ([]Product, error) {
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
