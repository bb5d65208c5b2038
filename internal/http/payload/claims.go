package payload

import (
	"landgrid/internal/core"

	"github.com/jellydator/validation"
)

type ClaimItemRequest struct {
	ItemID      string `json:"itemId"`
	Signature   string `json:"signature"`
	Timestamp   int64  `json:"timestamp"`
	UserX       int    `json:"x"`
	UserY       int    `json:"y"`
	ClaimedUser string `json:"claimedUser,omitempty"`
}

func (c ClaimItemRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ItemID, validation.Required),
		validation.Field(&c.Signature, validation.Required, validation.Match(signatureRegex)),
		validation.Field(&c.Timestamp, validation.Required),
	)
}

func (c ClaimItemRequest) ToClaimRequest() core.ClaimRequest {
	return core.ClaimRequest{
		ItemID:      c.ItemID,
		Signature:   c.Signature,
		Timestamp:   c.Timestamp,
		UserX:       c.UserX,
		UserY:       c.UserY,
		ClaimedUser: c.ClaimedUser,
	}
}

type ClaimedSecretRequest struct {
	ItemID    string `json:"itemId"`
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
}

func (c ClaimedSecretRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ItemID, validation.Required),
		validation.Field(&c.Signature, validation.Required, validation.Match(signatureRegex)),
		validation.Field(&c.Timestamp, validation.Required),
	)
}

func (c ClaimedSecretRequest) ToSecretRequest() core.SecretRequest {
	return core.SecretRequest{
		ItemID:    c.ItemID,
		Signature: c.Signature,
		Timestamp: c.Timestamp,
	}
}
