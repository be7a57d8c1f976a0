package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const productColumns = `id, slug, name, description, pricing, active, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Name,
		&p.Description,
		&p.Pricing,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// ListActiveProducts returns every active product ordered by name.
func (q *Queries) ListActiveProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE active ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProductBySlug returns one active product by its slug.
func (q *Queries) GetProductBySlug(ctx context.Context, slug string) (Product, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE slug = $1 AND active`, slug)
	return scanProduct(row)
}

// GetProduct returns a product by ID regardless of active state.
func (q *Queries) GetProduct(ctx context.Context, id pgtype.UUID) (Product, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

// UpdateProductPricingParams carries a replacement pricing snapshot.
type UpdateProductPricingParams struct {
	Slug    string
	Pricing []byte
}

// UpdateProductPricing replaces a product's pricing configuration.
func (q *Queries) UpdateProductPricing(ctx context.Context, arg UpdateProductPricingParams) (Product, error) {
	row := q.db.QueryRow(ctx,
		`UPDATE products SET pricing = $2, updated_at = now()
		 WHERE slug = $1
		 RETURNING `+productColumns,
		arg.Slug, arg.Pricing)
	return scanProduct(row)
}
