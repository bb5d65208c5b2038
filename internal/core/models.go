package core

import "landgrid/internal/store"

// ---- claims ----

type ClaimRequest struct {
	ItemID      string
	Signature   string
	Timestamp   int64
	UserX       int
	UserY       int
	ClaimedUser string
}

type ClaimResult struct {
	PrivateKey    string `json:"privateKey"`
	Address       string `json:"address"`
	Amount        string `json:"amount"`
	TokenContract string `json:"tokenContract,omitempty"`
	TokenSymbol   string `json:"tokenSymbol"`
	TokenDecimals int    `json:"tokenDecimals"`
	ClaimedWallet string `json:"claimedWallet"`
}

type SecretRequest struct {
	ItemID    string
	Signature string
	Timestamp int64
}

// ---- purchases ----

type SubmitRequest struct {
	TxHash        string
	WalletAddress string
	Parcels       []store.ParcelRef
	TotalPrice    float64
}

type SubmitResult struct {
	PurchaseID string `json:"purchaseId"`
	Status     string `json:"status"`
	Parcels    int    `json:"totalLands"`
}

type ConfirmResult struct {
	PurchaseID    string `json:"purchaseId"`
	Status        string `json:"status"`
	Parcels       int    `json:"totalLands"`
	Confirmations int64  `json:"confirmations"`
	RefundReason  string `json:"reason,omitempty"`
}

type PriceQuote struct {
	Allowed            bool    `json:"allowed"`
	TotalExpectedPrice float64 `json:"totalExpectedPrice"`
}

// ---- drops ----

type CreateDropRequest struct {
	Amount        float64
	TokenContract string
	TokenSymbol   string
	TokenDecimals int
	X             *int
	Y             *int
}

type DropCreated struct {
	DropID  string `json:"dropId"`
	Address string `json:"address"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

type ConfirmDropRequest struct {
	DropID string
	TxHash string
}

type DropConfirmed struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	TokenSymbol string `json:"tokenSymbol"`
	Amount      string `json:"amount"`
}

// ---- land edits ----

type ParcelEdit struct {
	X           int
	Y           int
	Image       string
	RemoveImage bool
}

type UpdateParcelsRequest struct {
	Signature   string
	Timestamp   int64
	Text        string
	Link        string
	RemoveImage bool
	// Single is set for a one-parcel update, Batch for multi-parcel mode.
	Single *ParcelEdit
	Batch  []ParcelEdit
}

type UpdateParcelsResult struct {
	Count int    `json:"count"`
	Text  string `json:"text"`
	Link  string `json:"link"`
}

// ---- viewport ----

type ParcelView struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	W         int     `json:"w"`
	H         int     `json:"h"`
	Owner     string  `json:"owner"`
	LastPrice float64 `json:"lastPrice"`
	Text      string  `json:"text,omitempty"`
	Link      string  `json:"link,omitempty"`
	Image     string  `json:"image,omitempty"`
}

type ItemView struct {
	ID          string `json:"id"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	W           int    `json:"w"`
	H           int    `json:"h"`
	TokenSymbol string `json:"tokenSymbol"`
	Amount      string `json:"amount"`
}

type ViewportResult struct {
	Parcels []ParcelView `json:"parcels"`
	Items   []ItemView   `json:"items"`
}
