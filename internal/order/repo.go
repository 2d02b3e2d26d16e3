package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/inventory-service/internal/apperr"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

type Repository interface {
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	// Create decrements the product stock and inserts the order in one
	// transaction. Returns *apperr.InsufficientStockError when stock is short.
	Create(ctx context.Context, productID int64, quantity int) (*Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Order, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const selectJoined = `
	SELECT o.id, o.product_id, o.quantity, o.status, o.created_at, o.updated_at,
	       p.id, p.name, p.sku, p.category, p.subcategory, p.price::text,
	       p.current_inventory, p.warehouse_location, p.created_at, p.updated_at
	FROM "order" o
	JOIN product p ON p.id = o.product_id`

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, selectJoined+` ORDER BY o.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return getByID(ctx, r.db, id)
}

func (r *PGRepo) Create(ctx context.Context, productID int64, quantity int) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock the product row so the stock read here is the one the decrement
	// applies to; concurrent orders for the same product queue on the lock.
	var available int
	err = tx.QueryRow(ctx, `SELECT current_inventory FROM product WHERE id=$1 FOR UPDATE`, productID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if quantity > available {
		return nil, apperr.InsufficientStock(available)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE product
		SET current_inventory = current_inventory - $2,
		    updated_at = NOW()
		WHERE id = $1
	`, productID, quantity); err != nil {
		return nil, err
	}

	var id int64
	if err := tx.QueryRow(ctx, `
		INSERT INTO "order" (product_id, quantity, status)
		VALUES ($1,$2,$3)
		RETURNING id
	`, productID, quantity, StatusPending).Scan(&id); err != nil {
		return nil, err
	}

	o, err := getByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id int64, status string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scan(r.db.QueryRow(ctx, `
		WITH o AS (
			UPDATE "order"
			SET status = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING id, product_id, quantity, status, created_at, updated_at
		)
		SELECT o.id, o.product_id, o.quantity, o.status, o.created_at, o.updated_at,
		       p.id, p.name, p.sku, p.category, p.subcategory, p.price::text,
		       p.current_inventory, p.warehouse_location, p.created_at, p.updated_at
		FROM o
		JOIN product p ON p.id = o.product_id
	`, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func getByID(ctx context.Context, q querier, id int64) (*Order, error) {
	o, err := scan(q.QueryRow(ctx, selectJoined+` WHERE o.id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func scan(row pgx.Row) (*Order, error) {
	var (
		o     Order
		price string
	)
	p := &o.Product
	if err := row.Scan(&o.ID, &o.ProductID, &o.Quantity, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		&p.ID, &p.Name, &p.SKU, &p.Category, &p.Subcategory, &price,
		&p.CurrentInventory, &p.WarehouseLocation, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	p.Price = d
	return &o, nil
}
