package core

import (
	"context"
	"landgrid/internal/chain"
	"landgrid/internal/store"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ClaimStore . ClaimStore
type ClaimStore interface {
	AcquireItem(ctx context.Context, itemID, claimerWallet, claimedUser string) (store.ClaimableItem, error)
	ReleaseItem(ctx context.Context, itemID string) error
	ClaimedItem(ctx context.Context, itemID string) (store.ClaimableItem, error)
}

//counterfeiter:generate -o fake -fake-name PurchaseStore . PurchaseStore
type PurchaseStore interface {
	CreateIntent(ctx context.Context, intent *store.PurchaseIntent) error
	IntentByTxHash(ctx context.Context, txHash string) (store.PurchaseIntent, error)
	MarkIntentConfirmed(ctx context.Context, intentID string, confirmations int64) (bool, error)
	MarkIntentRefundPending(ctx context.Context, intentID, reason string, confirmations int64) (bool, error)
	OwnedParcelAt(ctx context.Context, x, y int) (store.Parcel, bool, error)
	InsertParcel(ctx context.Context, parcel *store.Parcel) error
	UpdateParcelOwnership(ctx context.Context, parcelID uint, owner string, paidPrice float64) error
}

//counterfeiter:generate -o fake -fake-name DropStore . DropStore
type DropStore interface {
	CreatePendingDrop(ctx context.Context, drop *store.PendingDrop) error
	PendingDropByID(ctx context.Context, dropID string) (store.PendingDrop, error)
	DeletePendingDrop(ctx context.Context, dropID string) error
	ItemByTxHash(ctx context.Context, txHash string) (store.ClaimableItem, error)
	CreateItem(ctx context.Context, item *store.ClaimableItem) error
}

//counterfeiter:generate -o fake -fake-name LandStore . LandStore
type LandStore interface {
	ParcelAt(ctx context.Context, x, y int) (store.Parcel, error)
	UpdateParcelContent(ctx context.Context, parcelID uint, set map[string]any) error
}

//counterfeiter:generate -o fake -fake-name GridReader . GridReader
type GridReader interface {
	ParcelsInView(ctx context.Context, x, y, w, h int) ([]store.Parcel, error)
	ItemsInView(ctx context.Context, x, y, w, h int) ([]store.ClaimableItem, error)
	Stats(ctx context.Context) (store.GridStats, error)
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	TransactionDetails(ctx context.Context, txHash string) (chain.TxDetails, error)
	WaitForReceipt(ctx context.Context, txHash string) (*types.Receipt, error)
	TokenBalance(ctx context.Context, tokenContract, address string) (*big.Int, error)
}

// SecretBox encrypts and decrypts at-rest wallet secrets.
type SecretBox interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}
