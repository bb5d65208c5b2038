package handler

import (
	"context"
	"landgrid/internal/core"
	"landgrid/internal/store"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name PurchaseService . PurchaseService
type PurchaseService interface {
	Submit(ctx context.Context, req core.SubmitRequest) (core.SubmitResult, error)
	Quote(ctx context.Context, parcels []store.ParcelRef) (core.PriceQuote, error)
	Confirm(ctx context.Context, txHash string) (core.ConfirmResult, error)
}

//counterfeiter:generate -o fake -fake-name ClaimService . ClaimService
type ClaimService interface {
	Claim(ctx context.Context, req core.ClaimRequest) (core.ClaimResult, error)
	ClaimedSecret(ctx context.Context, req core.SecretRequest) (core.ClaimResult, error)
}

//counterfeiter:generate -o fake -fake-name DropService . DropService
type DropService interface {
	CreateDrop(ctx context.Context, req core.CreateDropRequest) (core.DropCreated, error)
	ConfirmDrop(ctx context.Context, req core.ConfirmDropRequest) (core.DropConfirmed, error)
}

//counterfeiter:generate -o fake -fake-name LandService . LandService
type LandService interface {
	UpdateParcels(ctx context.Context, req core.UpdateParcelsRequest) (core.UpdateParcelsResult, error)
}

//counterfeiter:generate -o fake -fake-name GridService . GridService
type GridService interface {
	Viewport(ctx context.Context, x, y, w, h int) (core.ViewportResult, error)
	Stats(ctx context.Context) (store.GridStats, error)
}
