package checkout

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"ImirStore/internal/cart"
	"ImirStore/internal/catalog"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 5 * time.Second
)

// PostgresStore writes each order transactionally across the orders and
// order_items tables. Line products are frozen as JSON so later catalog
// edits cannot rewrite order history.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Create(ctx context.Context, o Order) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, session_id, email, phone,
			first_name, last_name, street, city, region, zip,
			delivery, subtotal, delivery_cost, total, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, o.ID, o.SessionID, o.Email, o.Phone,
		o.Address.FirstName, o.Address.LastName, o.Address.Street,
		o.Address.City, o.Address.Region, o.Address.Zip,
		o.Delivery, o.Subtotal, o.DeliveryCost, o.Total, o.Status, o.CreatedAt)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO order_items (order_id, position, product, qty)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, it := range o.Items {
		product, err := json.Marshal(it.Product)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, o.ID, i, product, it.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Order, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var o Order
	err := s.db.QueryRowContext(ctx, `
		SELECT id, session_id, email, phone,
		       first_name, last_name, street, city, region, zip,
		       delivery, subtotal, delivery_cost, total, status, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.SessionID, &o.Email, &o.Phone,
		&o.Address.FirstName, &o.Address.LastName, &o.Address.Street,
		&o.Address.City, &o.Address.Region, &o.Address.Zip,
		&o.Delivery, &o.Subtotal, &o.DeliveryCost, &o.Total, &o.Status, &o.CreatedAt)

	if err == sql.ErrNoRows {
		return Order{}, false, nil
	}
	if err != nil {
		return Order{}, false, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT product, qty
		FROM order_items
		WHERE order_id = $1
		ORDER BY position ASC
	`, id)
	if err != nil {
		return Order{}, false, err
	}
	defer rows.Close()

	items := make([]cart.Item, 0, 8)
	for rows.Next() {
		var (
			raw []byte
			it  cart.Item
		)
		if err := rows.Scan(&raw, &it.Quantity); err != nil {
			return Order{}, false, err
		}
		var p catalog.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return Order{}, false, err
		}
		it.Product = p
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return Order{}, false, err
	}
	o.Items = items

	return o, true, nil
}
