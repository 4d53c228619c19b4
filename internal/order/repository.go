package order

import (
	"context"
	"database/sql"

	"nova-ecart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)

	// UpdateStatusIf transitions the order from expected to next in a single
	// conditional UPDATE. The status check lives in the WHERE clause, so two
	// racing callers cannot both win: the loser gets ErrStatusConflict.
	UpdateStatusIf(ctx context.Context, id string, expected, next Status) (*Order, error)

	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = "id, user_id, product_id, amount, currency, status, created_at, updated_at"

func scanOrder(row *sql.Row) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Amount, &o.Currency, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, product_id, amount, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`, o.ID, o.UserID, o.ProductID, o.Amount, o.Currency, o.Status)

	if err != nil {
		log.Error("db: failed to insert order",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return o, err
}

func (r *repository) UpdateStatusIf(ctx context.Context, id string, expected, next Status) (*Order, error) {
	log := logger.FromCtx(ctx)

	row := r.db.QueryRowContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING `+orderColumns, next, id, expected)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		// Nothing matched: either the order is missing or its status has
		// already moved on. A second read picks the right error.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		log.Warn("order status update rejected",
			zap.String("order_id", id),
			zap.String("expected", string(expected)),
			zap.String("requested", string(next)),
		)
		return nil, ErrStatusConflict
	}
	if err != nil {
		log.Error("db: failed to update order status",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Amount, &o.Currency, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
