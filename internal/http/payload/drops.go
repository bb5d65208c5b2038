package payload

import (
	"landgrid/internal/core"

	"github.com/jellydator/validation"
)

type CreateDropRequest struct {
	Amount        float64 `json:"amount"`
	TokenContract string  `json:"tokenContract"`
	TokenSymbol   string  `json:"tokenSymbol"`
	TokenDecimals int     `json:"tokenDecimals"`
	X             *int    `json:"x,omitempty"`
	Y             *int    `json:"y,omitempty"`
}

func (d CreateDropRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.TokenContract, validation.Required, validation.Match(addressRegex)),
		validation.Field(&d.TokenSymbol, validation.Required, validation.Length(1, 20)),
		validation.Field(&d.TokenDecimals, validation.Min(0), validation.Max(36)),
		validation.Field(&d.Amount, validation.Min(0.0)),
	)
}

func (d CreateDropRequest) ToCreateRequest() core.CreateDropRequest {
	return core.CreateDropRequest{
		Amount:        d.Amount,
		TokenContract: d.TokenContract,
		TokenSymbol:   d.TokenSymbol,
		TokenDecimals: d.TokenDecimals,
		X:             d.X,
		Y:             d.Y,
	}
}

type ConfirmDropRequest struct {
	DropID string `json:"dropId"`
	TxHash string `json:"txHash"`
}

func (d ConfirmDropRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.DropID, validation.Required),
		validation.Field(&d.TxHash, validation.Required, validation.Match(txHashRegex)),
	)
}

func (d ConfirmDropRequest) ToConfirmRequest() core.ConfirmDropRequest {
	return core.ConfirmDropRequest{
		DropID: d.DropID,
		TxHash: d.TxHash,
	}
}
