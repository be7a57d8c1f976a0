package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/print24/print24/internal/domain"
	"github.com/print24/print24/internal/pricing"
	"github.com/print24/print24/internal/repository"
	"github.com/print24/print24/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func productRow(t *testing.T, slug string, cfg pricing.Config) repository.Product {
	t.Helper()
	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	return repository.Product{
		ID:      pgtype.UUID{Bytes: uuid.New(), Valid: true},
		Slug:    slug,
		Name:    "Business Cards",
		Pricing: raw,
		Active:  true,
	}
}

func Test_QuoteService_Quote(t *testing.T) {
	repo := &repository.MockQuerier{
		GetProductBySlugFunc: func(ctx context.Context, slug string) (repository.Product, error) {
			return productRow(t, slug, pricing.Config{BasePrice: 100, GSTPercentage: f(18)}), nil
		},
	}
	svc := service.NewQuoteService(repo, nil)

	quote, err := svc.Quote(context.Background(), "business-cards", pricing.Selection{Quantity: 5})

	require.NoError(t, err)
	assert.Equal(t, "business-cards", quote.ProductSlug)
	assert.Equal(t, "Business Cards", quote.ProductName)
	assert.Equal(t, float64(500), quote.Breakdown.SubtotalAfterDiscount)
	assert.Equal(t, float64(590), quote.Breakdown.FinalTotal)
	assert.Equal(t, "₹590.00", quote.DisplayTotal)
}

func Test_QuoteService_Quote_UnknownProduct(t *testing.T) {
	svc := service.NewQuoteService(&repository.MockQuerier{}, nil)

	_, err := svc.Quote(context.Background(), "missing", pricing.Selection{Quantity: 1})

	assert.True(t, domain.IsCode(err, domain.ENOTFOUND))
}

func Test_QuoteService_Quote_RejectsInvalidSelection(t *testing.T) {
	svc := service.NewQuoteService(&repository.MockQuerier{}, nil)

	_, err := svc.Quote(context.Background(), "business-cards", pricing.Selection{Quantity: 0})

	assert.True(t, domain.IsCode(err, domain.EINVALID))
}

func Test_QuoteService_Quote_CorruptSnapshot(t *testing.T) {
	repo := &repository.MockQuerier{
		GetProductBySlugFunc: func(ctx context.Context, slug string) (repository.Product, error) {
			return repository.Product{Slug: slug, Pricing: []byte("{not json")}, nil
		},
	}
	svc := service.NewQuoteService(repo, nil)

	_, err := svc.Quote(context.Background(), "business-cards", pricing.Selection{Quantity: 1})

	assert.True(t, domain.IsCode(err, domain.EINTERNAL))
}
