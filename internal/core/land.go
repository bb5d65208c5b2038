package core

import (
	"context"
	"errors"
	"fmt"
	"landgrid/internal/signature"
	"landgrid/internal/store"

	"go.uber.org/zap"
)

// LandEditor applies signature-authenticated content edits to owned parcels.
// In batch mode non-owned or missing parcels are skipped; in single mode they
// are hard errors.
type LandEditor struct {
	logs  *zap.SugaredLogger
	store LandStore
}

func NewLandEditor(logger *zap.SugaredLogger, landStore LandStore) *LandEditor {
	return &LandEditor{
		logs:  logger,
		store: landStore,
	}
}

func (e *LandEditor) UpdateParcels(ctx context.Context, req UpdateParcelsRequest) (UpdateParcelsResult, error) {
	if !signature.ValidTimestamp(req.Timestamp) {
		return UpdateParcelsResult{}, ErrRequestExpired
	}

	batch := req.Single == nil
	edits := req.Batch
	var message string

	if batch {
		positions := make([]signature.Position, len(edits))
		for i, edit := range edits {
			positions[i] = signature.Position{X: edit.X, Y: edit.Y}
		}
		message = signature.BatchUpdateMessage(positions, req.Text, req.Link, req.Timestamp)
	} else {
		edits = []ParcelEdit{*req.Single}
		message = signature.ParcelUpdateMessage(
			req.Single.X, req.Single.Y,
			req.Text, req.Link,
			imageStatus(req.Single.Image, req.RemoveImage),
			req.Timestamp)
	}

	owner, err := signature.RecoverSigner(message, req.Signature)
	if err != nil {
		return UpdateParcelsResult{}, err
	}

	updated := 0
	for _, edit := range edits {
		parcel, err := e.store.ParcelAt(ctx, edit.X, edit.Y)
		if err != nil {
			if errors.Is(err, store.ErrParcelNotFound) && batch {
				continue
			}
			return UpdateParcelsResult{}, err
		}

		if parcel.Owner != owner {
			if batch {
				continue
			}
			return UpdateParcelsResult{}, fmt.Errorf("%w: parcel (%d, %d) belongs to another wallet",
				ErrPermissionDenied, edit.X, edit.Y)
		}

		set := map[string]any{
			"text": req.Text,
			"link": req.Link,
		}
		removeImage := edit.RemoveImage || req.RemoveImage
		if removeImage {
			set["image"] = ""
		} else if edit.Image != "" {
			set["image"] = edit.Image
		}

		if err := e.store.UpdateParcelContent(ctx, parcel.ID, set); err != nil {
			return UpdateParcelsResult{}, err
		}
		updated++
	}

	if updated == 0 {
		return UpdateParcelsResult{}, ErrNothingUpdated
	}

	e.logs.Infow("parcels updated", "owner", owner, "count", updated)

	return UpdateParcelsResult{
		Count: updated,
		Text:  req.Text,
		Link:  req.Link,
	}, nil
}

func imageStatus(image string, removeImage bool) string {
	if removeImage {
		return "Removed"
	}
	if image != "" {
		return "Yes"
	}
	return "Unchanged"
}
