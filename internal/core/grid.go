package core

import (
	"context"
	"landgrid/internal/store"

	"go.uber.org/zap"
)

// maxViewSize caps a single viewport query in grid units per axis.
const maxViewSize = 1920

// GridService serves read-only views of the grid: what occupies a viewport
// and the global occupancy stats. Item views never include wallet material.
type GridService struct {
	logs  *zap.SugaredLogger
	store GridReader
}

func NewGridService(logger *zap.SugaredLogger, gridStore GridReader) *GridService {
	return &GridService{
		logs:  logger,
		store: gridStore,
	}
}

func (g *GridService) Viewport(ctx context.Context, x, y, w, h int) (ViewportResult, error) {
	if w > maxViewSize {
		w = maxViewSize
	}
	if h > maxViewSize {
		h = maxViewSize
	}

	parcels, err := g.store.ParcelsInView(ctx, x, y, w, h)
	if err != nil {
		return ViewportResult{}, err
	}

	items, err := g.store.ItemsInView(ctx, x, y, w, h)
	if err != nil {
		return ViewportResult{}, err
	}

	result := ViewportResult{
		Parcels: make([]ParcelView, len(parcels)),
		Items:   make([]ItemView, len(items)),
	}
	for i, parcel := range parcels {
		result.Parcels[i] = ParcelView{
			X:         parcel.X,
			Y:         parcel.Y,
			W:         parcel.W,
			H:         parcel.H,
			Owner:     parcel.Owner,
			LastPrice: parcel.LastPrice,
			Text:      parcel.Text,
			Link:      parcel.Link,
			Image:     parcel.Image,
		}
	}
	for i, item := range items {
		amount := item.AmountFormatted
		if amount == "" {
			amount = item.Amount
		}
		result.Items[i] = ItemView{
			ID:          item.ID,
			X:           item.X,
			Y:           item.Y,
			W:           item.W,
			H:           item.H,
			TokenSymbol: item.TokenSymbol,
			Amount:      amount,
		}
	}

	return result, nil
}

func (g *GridService) Stats(ctx context.Context) (store.GridStats, error) {
	return g.store.Stats(ctx)
}
