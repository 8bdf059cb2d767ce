package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

const productColumns = `
	id, name, slug, price, category, material, weight, description,
	images, in_stock, is_new, is_featured, created_at
`

// PostgresStore reads the catalog from the products table. Rows are ordered
// by the curated position column, not by id.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) List(ctx context.Context) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT `+productColumns+`
			FROM products
			ORDER BY position ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 16)
		for rows.Next() {
			p, err := scanProduct(rows)
			if err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) BySlug(ctx context.Context, slug string) (Product, bool, error) {
	return s.one(ctx, `WHERE slug = $1`, slug)
}

func (s *PostgresStore) ByID(ctx context.Context, id string) (Product, bool, error) {
	return s.one(ctx, `WHERE id = $1`, id)
}

func (s *PostgresStore) one(ctx context.Context, where string, arg any) (Product, bool, error) {
	var (
		p   Product
		err error
	)

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx, `
			SELECT `+productColumns+`
			FROM products
			`+where, arg)
		p, err = scanProduct(row)
		return err
	})

	if err == sql.ErrNoRows {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p      Product
		images []byte
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Price, &p.Category, &p.Material,
		&p.Weight, &p.Description, &images, &p.InStock, &p.IsNew,
		&p.IsFeatured, &p.CreatedAt,
	)
	if err != nil {
		return Product{}, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return Product{}, err
	}
	return p, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
