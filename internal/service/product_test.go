package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/print24/print24/internal/domain"
	"github.com/print24/print24/internal/pricing"
	"github.com/print24/print24/internal/repository"
	"github.com/print24/print24/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ProductService_ListProducts(t *testing.T) {
	repo := &repository.MockQuerier{
		ListActiveProductsFunc: func(ctx context.Context) ([]repository.Product, error) {
			return []repository.Product{
				productRow(t, "business-cards", pricing.Config{BasePrice: 2}),
				productRow(t, "flyers", pricing.Config{BasePrice: 5.5}),
			}, nil
		},
	}
	svc := service.NewProductService(repo)

	items, err := svc.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "business-cards", items[0].Slug)
	assert.Equal(t, float64(2), items[0].BasePrice)
	assert.Equal(t, float64(5.5), items[1].BasePrice)
}

func Test_ProductService_GetProduct(t *testing.T) {
	repo := &repository.MockQuerier{
		GetProductBySlugFunc: func(ctx context.Context, slug string) (repository.Product, error) {
			return productRow(t, slug, pricing.Config{BasePrice: 100, GSTPercentage: f(12)}), nil
		},
	}
	svc := service.NewProductService(repo)

	detail, err := svc.GetProduct(context.Background(), "business-cards")

	require.NoError(t, err)
	assert.Equal(t, "business-cards", detail.Slug)
	assert.Equal(t, float64(100), detail.Pricing.BasePrice)
	require.NotNil(t, detail.Pricing.GSTPercentage)
	assert.Equal(t, float64(12), *detail.Pricing.GSTPercentage)
}

func Test_ProductService_GetProduct_NotFound(t *testing.T) {
	svc := service.NewProductService(&repository.MockQuerier{})

	_, err := svc.GetProduct(context.Background(), "missing")

	assert.True(t, domain.IsCode(err, domain.ENOTFOUND))
}

func Test_ProductService_UpdatePricing(t *testing.T) {
	var saved []byte
	repo := &repository.MockQuerier{
		UpdateProductPricingFunc: func(ctx context.Context, arg repository.UpdateProductPricingParams) (repository.Product, error) {
			saved = arg.Pricing
			row := productRow(t, arg.Slug, pricing.Config{})
			row.Pricing = arg.Pricing
			return row, nil
		},
	}
	svc := service.NewProductService(repo)

	detail, err := svc.UpdatePricing(context.Background(), "business-cards", pricing.Config{
		BasePrice:   3,
		PricingType: pricing.PricingTypeRangeWise,
		RangeWiseQuantities: []pricing.QuantityRange{
			{Min: 1, Max: i(499), PriceMultiplier: 1.0},
			{Min: 500, PriceMultiplier: 0.8},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, float64(3), detail.Pricing.BasePrice)

	var persisted pricing.Config
	require.NoError(t, json.Unmarshal(saved, &persisted))
	require.Len(t, persisted.RangeWiseQuantities, 2)
	assert.Equal(t, 0.8, persisted.RangeWiseQuantities[1].PriceMultiplier)
}

func Test_ProductService_UpdatePricing_RejectsOverlappingBands(t *testing.T) {
	svc := service.NewProductService(&repository.MockQuerier{})

	_, err := svc.UpdatePricing(context.Background(), "business-cards", pricing.Config{
		BasePrice:   3,
		PricingType: pricing.PricingTypeRangeWise,
		RangeWiseQuantities: []pricing.QuantityRange{
			{Min: 1, Max: i(500), PriceMultiplier: 1.0},
			{Min: 400, PriceMultiplier: 0.8},
		},
	})

	assert.True(t, domain.IsCode(err, domain.EINVALID))
}

func i(v int) *int { return &v }
