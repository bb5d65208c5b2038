package payload

import (
	"errors"
	"landgrid/internal/core"

	"github.com/jellydator/validation"
)

type ParcelEditRef struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Image       string `json:"image,omitempty"`
	RemoveImage bool   `json:"removeImage,omitempty"`
}

// UpdateParcelsRequest edits parcel content. Either X/Y target a single
// parcel or Lands lists a batch; exactly one form must be present.
type UpdateParcelsRequest struct {
	Signature   string          `json:"signature"`
	Timestamp   int64           `json:"timestamp"`
	Text        string          `json:"text"`
	Link        string          `json:"link"`
	X           *int            `json:"x,omitempty"`
	Y           *int            `json:"y,omitempty"`
	Image       string          `json:"image,omitempty"`
	RemoveImage bool            `json:"removeImage,omitempty"`
	Lands       []ParcelEditRef `json:"lands,omitempty"`
}

func (u UpdateParcelsRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Signature, validation.Required, validation.Match(signatureRegex)),
		validation.Field(&u.Timestamp, validation.Required),
		validation.Field(&u.Lands, validation.By(u.validateTarget)),
	)
}

func (u UpdateParcelsRequest) validateTarget(any) error {
	single := u.X != nil && u.Y != nil
	if single == (len(u.Lands) > 0) {
		return errors.New("either x/y or lands must be provided")
	}
	return nil
}

func (u UpdateParcelsRequest) ToUpdateRequest() core.UpdateParcelsRequest {
	req := core.UpdateParcelsRequest{
		Signature:   u.Signature,
		Timestamp:   u.Timestamp,
		Text:        u.Text,
		Link:        u.Link,
		RemoveImage: u.RemoveImage,
	}

	if u.X != nil && u.Y != nil {
		req.Single = &core.ParcelEdit{
			X:           *u.X,
			Y:           *u.Y,
			Image:       u.Image,
			RemoveImage: u.RemoveImage,
		}
		return req
	}

	req.Batch = make([]core.ParcelEdit, len(u.Lands))
	for i, land := range u.Lands {
		req.Batch[i] = core.ParcelEdit{
			X:           land.X,
			Y:           land.Y,
			Image:       land.Image,
			RemoveImage: land.RemoveImage,
		}
	}
	return req
}
