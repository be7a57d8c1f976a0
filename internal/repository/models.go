package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Product is a catalog row. Pricing holds the product's pricing
// configuration snapshot as raw JSONB; the service layer owns its shape.
type Product struct {
	ID          pgtype.UUID
	Slug        string
	Name        string
	Description pgtype.Text
	Pricing     []byte
	Active      bool
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

// Order is one placed order. Selection and Breakdown are JSONB snapshots of
// the customer's configuration and the authoritative price breakdown at
// creation time; FinalTotal is denormalized from the breakdown because it
// is the charge amount the payment boundary reads.
type Order struct {
	ID               pgtype.UUID
	OrderNumber      string
	ProductID        pgtype.UUID
	Quantity         int32
	Selection        []byte
	Breakdown        []byte
	FinalTotal       float64
	Currency         string
	Status           string
	GatewayOrderID   pgtype.Text
	GatewayPaymentID pgtype.Text
	NeedDesigner     bool
	ArtworkURL       pgtype.Text
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}
