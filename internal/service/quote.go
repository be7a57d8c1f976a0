package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/print24/print24/internal/currency"
	"github.com/print24/print24/internal/domain"
	"github.com/print24/print24/internal/pricing"
	"github.com/print24/print24/internal/repository"
	"github.com/print24/print24/internal/telemetry"
)

// Quote is a server-computed price breakdown for a product configuration.
// It carries no commitment; ordering recomputes from scratch.
type Quote struct {
	ProductSlug  string            `json:"productSlug"`
	ProductName  string            `json:"productName"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
	DisplayTotal string            `json:"displayTotal"`
}

// QuoteService computes authoritative price breakdowns.
type QuoteService interface {
	Quote(ctx context.Context, productSlug string, sel pricing.Selection) (*Quote, error)
}

type quoteService struct {
	repo    repository.Querier
	metrics *telemetry.BusinessMetrics
}

// NewQuoteService creates a new QuoteService instance. metrics may be nil.
func NewQuoteService(repo repository.Querier, metrics *telemetry.BusinessMetrics) QuoteService {
	return &quoteService{repo: repo, metrics: metrics}
}

func (s *quoteService) Quote(ctx context.Context, productSlug string, sel pricing.Selection) (*Quote, error) {
	if err := pricing.ValidateSelection(sel); err != nil {
		if s.metrics != nil {
			s.metrics.QuoteRejected.WithLabelValues("invalid_selection").Inc()
		}
		return nil, domain.WrapError(err, domain.EINVALID, "quote.compute", err.Error())
	}

	product, err := s.repo.GetProductBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Errorf(domain.ENOTFOUND, "quote.compute", "product %q not found", productSlug)
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, "quote.compute", "failed to load product")
	}

	cfg, err := decodePricing(product.Pricing)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, "quote.compute", "corrupt pricing snapshot")
	}

	breakdown := pricing.Compute(&cfg, sel)

	if s.metrics != nil {
		s.metrics.QuotesComputed.WithLabelValues(productSlug).Inc()
		s.metrics.QuoteValue.WithLabelValues(productSlug).Observe(breakdown.FinalTotal)
	}

	return &Quote{
		ProductSlug:  productSlug,
		ProductName:  product.Name,
		Breakdown:    breakdown,
		DisplayTotal: currency.FormatINR(breakdown.FinalTotal),
	}, nil
}
