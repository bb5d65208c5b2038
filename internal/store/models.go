package store

import "time"

// Purchase intent lifecycle. An intent is created pending and settles exactly
// once, either confirmed or refund_pending.
const (
	IntentPending       = "pending"
	IntentConfirmed     = "confirmed"
	IntentRefundPending = "refund_pending"
)

// Occupancy status values, shared by parcels and claimable items. A free
// parcel has no row at all; a row always carries StatusOwned.
const (
	StatusAvailable = 1
	StatusOwned     = 2
	StatusClaimed   = 2
)

type Parcel struct {
	ID         uint   `gorm:"primaryKey"`
	X          int    `gorm:"uniqueIndex:idx_parcel_pos;not null"`
	Y          int    `gorm:"uniqueIndex:idx_parcel_pos;not null"`
	W          int    `gorm:"not null;default:100"`
	H          int    `gorm:"not null;default:100"`
	Owner      string `gorm:"size:42;index;not null"` // lower-cased address
	Status     int    `gorm:"not null;index"`
	LastPrice  float64
	Text       string `gorm:"type:text"`
	Link       string `gorm:"type:text"`
	Image      string `gorm:"type:text"`
	PurchaseID string `gorm:"size:36"`
	TxHash     string `gorm:"size:66;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ParcelRef struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w,omitempty"`
	H    int    `json:"h,omitempty"`
	Text string `json:"text,omitempty"`
}

type PurchaseIntent struct {
	ID            string      `gorm:"primaryKey;size:36"`
	TxHash        string      `gorm:"size:66;uniqueIndex;not null"`
	WalletAddress string      `gorm:"size:42;not null"`
	Parcels       []ParcelRef `gorm:"serializer:json;type:jsonb"`
	TotalPrice    float64     `gorm:"not null"`
	Status        string      `gorm:"size:20;index;not null"`
	RefundReason  string      `gorm:"type:text"`
	Confirmations int64
	ConfirmedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ClaimableItem struct {
	ID              string `gorm:"primaryKey;size:36"`
	X               int    `gorm:"index:idx_item_pos"`
	Y               int    `gorm:"index:idx_item_pos"`
	W               int    `gorm:"not null;default:100"`
	H               int    `gorm:"not null;default:100"`
	TokenContract   string `gorm:"size:42;not null"`
	TokenSymbol     string `gorm:"size:20"`
	TokenDecimals   int
	Amount          string `gorm:"size:100;not null"` // token base units
	AmountFormatted string `gorm:"size:100"`
	WalletAddress   string `gorm:"size:42;not null"`
	EncryptedKey    string `gorm:"type:text;not null"`
	TxHash          string `gorm:"size:66;uniqueIndex;not null"`
	Status          int    `gorm:"not null;index"`
	ClaimedWallet   string `gorm:"size:42"`
	ClaimedUser     string
	ClaimedAt       *time.Time
	CreatedAt       time.Time
}

// PendingDrop holds a generated drop wallet between creation and on-chain
// confirmation. Rows past ExpiresAt are treated as gone.
type PendingDrop struct {
	ID            string `gorm:"primaryKey;size:36"`
	Address       string `gorm:"size:42;not null"` // lower-cased
	EncryptedKey  string `gorm:"type:text;not null"`
	Amount        float64
	TokenContract string `gorm:"size:42;not null"`
	TokenSymbol   string `gorm:"size:20"`
	TokenDecimals int
	X             int
	Y             int
	ExpiresAt     time.Time `gorm:"index"`
	CreatedAt     time.Time
}

// GridStats is the aggregate view served by the stats endpoint.
type GridStats struct {
	OwnedParcels   int64 `json:"ownedParcels"`
	AvailableDrops int64 `json:"availableDrops"`
	ClaimedDrops   int64 `json:"claimedDrops"`
}
