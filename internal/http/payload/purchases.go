package payload

import (
	"landgrid/internal/core"
	"landgrid/internal/store"
	"strings"

	"github.com/jellydator/validation"
)

type LandRef struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w,omitempty"`
	H    int    `json:"h,omitempty"`
	Text string `json:"text,omitempty"`
}

// SubmitPurchaseRequest registers a purchase intent. With CheckOnly set only
// the lands are required and the server answers with a price quote instead of
// creating anything.
type SubmitPurchaseRequest struct {
	TxHash        string    `json:"txHash"`
	WalletAddress string    `json:"walletAddress"`
	Lands         []LandRef `json:"lands"`
	TotalPrice    float64   `json:"totalPrice"`
	CheckOnly     bool      `json:"checkOnly,omitempty"`
}

func (s SubmitPurchaseRequest) Validate() error {
	if s.CheckOnly {
		return validation.ValidateStruct(&s,
			validation.Field(&s.Lands, validation.Required),
		)
	}

	return validation.ValidateStruct(&s,
		validation.Field(&s.TxHash, validation.Required, validation.Match(txHashRegex)),
		validation.Field(&s.WalletAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&s.Lands, validation.Required),
		validation.Field(&s.TotalPrice, validation.Required, validation.Min(0.0)),
	)
}

func (s SubmitPurchaseRequest) ToSubmitRequest() core.SubmitRequest {
	return core.SubmitRequest{
		TxHash:        strings.ToLower(s.TxHash),
		WalletAddress: strings.ToLower(s.WalletAddress),
		Parcels:       s.ParcelRefs(),
		TotalPrice:    s.TotalPrice,
	}
}

func (s SubmitPurchaseRequest) ParcelRefs() []store.ParcelRef {
	refs := make([]store.ParcelRef, len(s.Lands))
	for i, land := range s.Lands {
		refs[i] = store.ParcelRef{
			X:    land.X,
			Y:    land.Y,
			W:    land.W,
			H:    land.H,
			Text: land.Text,
		}
	}
	return refs
}

type ConfirmPurchaseRequest struct {
	TxHash string `json:"txHash"`
}

func (c ConfirmPurchaseRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TxHash, validation.Required, validation.Match(txHashRegex)),
	)
}
