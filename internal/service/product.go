// Package service implements the application's business operations over
// the repository, the pricing engine, and the payment gateway.
package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/print24/print24/internal/domain"
	"github.com/print24/print24/internal/pricing"
	"github.com/print24/print24/internal/repository"
)

// ProductSummary is a catalog listing entry.
type ProductSummary struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"basePrice"`
}

// ProductDetail is a product together with its pricing configuration, the
// snapshot the client-side preview calculator works from.
type ProductDetail struct {
	ID          string         `json:"id"`
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Pricing     pricing.Config `json:"pricing"`
}

// ProductService provides catalog reads and pricing maintenance.
type ProductService interface {
	// ListProducts returns all active products.
	ListProducts(ctx context.Context) ([]ProductSummary, error)

	// GetProduct returns one active product with its pricing snapshot.
	GetProduct(ctx context.Context, slug string) (*ProductDetail, error)

	// UpdatePricing replaces a product's pricing configuration after
	// validating band ordering.
	UpdatePricing(ctx context.Context, slug string, cfg pricing.Config) (*ProductDetail, error)
}

type productService struct {
	repo repository.Querier
}

// NewProductService creates a new ProductService instance.
func NewProductService(repo repository.Querier) ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context) ([]ProductSummary, error) {
	rows, err := s.repo.ListActiveProducts(ctx)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, "product.list", "failed to list products")
	}

	items := make([]ProductSummary, 0, len(rows))
	for _, row := range rows {
		cfg, err := decodePricing(row.Pricing)
		if err != nil {
			return nil, domain.WrapError(err, domain.EINTERNAL, "product.list", "corrupt pricing snapshot")
		}
		items = append(items, ProductSummary{
			ID:          uuid.UUID(row.ID.Bytes).String(),
			Slug:        row.Slug,
			Name:        row.Name,
			Description: row.Description.String,
			BasePrice:   cfg.BasePrice,
		})
	}
	return items, nil
}

func (s *productService) GetProduct(ctx context.Context, slug string) (*ProductDetail, error) {
	row, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Errorf(domain.ENOTFOUND, "product.get", "product %q not found", slug)
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, "product.get", "failed to load product")
	}
	return productDetail(row)
}

func (s *productService) UpdatePricing(ctx context.Context, slug string, cfg pricing.Config) (*ProductDetail, error) {
	if err := pricing.ValidateConfig(&cfg); err != nil {
		return nil, domain.WrapError(err, domain.EINVALID, "product.pricing", err.Error())
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, "product.pricing", "failed to encode pricing snapshot")
	}

	row, err := s.repo.UpdateProductPricing(ctx, repository.UpdateProductPricingParams{
		Slug:    slug,
		Pricing: raw,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Errorf(domain.ENOTFOUND, "product.pricing", "product %q not found", slug)
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, "product.pricing", "failed to update pricing")
	}
	return productDetail(row)
}

func productDetail(row repository.Product) (*ProductDetail, error) {
	cfg, err := decodePricing(row.Pricing)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, "product.decode", "corrupt pricing snapshot")
	}
	return &ProductDetail{
		ID:          uuid.UUID(row.ID.Bytes).String(),
		Slug:        row.Slug,
		Name:        row.Name,
		Description: row.Description.String,
		Pricing:     cfg,
	}, nil
}

// decodePricing unmarshals a stored pricing snapshot. An empty column
// yields the zero config, which the engine prices with neutral defaults.
func decodePricing(raw []byte) (pricing.Config, error) {
	var cfg pricing.Config
	if len(raw) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
