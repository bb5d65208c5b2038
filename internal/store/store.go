package store

import (
	"context"
	"errors"
	"fmt"
	"landgrid/internal/db"
	"time"
)

var ErrIntentNotFound error = errors.New("purchase intent not found")
var ErrTxHashUsed error = errors.New("transaction hash already used")
var ErrItemUnavailable error = errors.New("item not found or already claimed")
var ErrItemNotFound error = errors.New("item not found")
var ErrParcelNotFound error = errors.New("parcel not found")
var ErrDropNotFound error = errors.New("pending drop not found or expired")

type GridStore struct {
	db Database
}

func NewGridStore(database Database) *GridStore {
	return &GridStore{
		db: database,
	}
}

func (s *GridStore) Migrate() error {
	err := s.db.MigrateModels(&Parcel{}, &PurchaseIntent{}, &ClaimableItem{}, &PendingDrop{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// ---- purchase intents ----

func (s *GridStore) CreateIntent(ctx context.Context, intent *PurchaseIntent) error {
	err := s.db.Insert(ctx, intent)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrTxHashUsed
		}
		return fmt.Errorf("create purchase intent: %w", err)
	}
	return nil
}

func (s *GridStore) IntentByTxHash(ctx context.Context, txHash string) (PurchaseIntent, error) {
	var intent PurchaseIntent
	err := s.db.GetOneBy(ctx, "tx_hash", txHash, &intent)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return PurchaseIntent{}, ErrIntentNotFound
		}
		return PurchaseIntent{}, fmt.Errorf("get intent by tx hash: %w", err)
	}
	return intent, nil
}

// MarkIntentConfirmed flips a pending intent to confirmed. The status
// predicate makes the transition single-winner: false means another confirm
// call already settled the intent.
func (s *GridStore) MarkIntentConfirmed(ctx context.Context, intentID string, confirmations int64) (bool, error) {
	now := time.Now().UTC()
	affected, err := s.db.UpdateWhere(ctx, &PurchaseIntent{},
		map[string]any{
			"status":        IntentConfirmed,
			"confirmations": confirmations,
			"confirmed_at":  now,
			"updated_at":    now,
		},
		"id = ? AND status = ?", intentID, IntentPending)
	if err != nil {
		return false, fmt.Errorf("mark intent confirmed: %w", err)
	}
	return affected > 0, nil
}

func (s *GridStore) MarkIntentRefundPending(ctx context.Context, intentID, reason string, confirmations int64) (bool, error) {
	now := time.Now().UTC()
	affected, err := s.db.UpdateWhere(ctx, &PurchaseIntent{},
		map[string]any{
			"status":        IntentRefundPending,
			"refund_reason": reason,
			"confirmations": confirmations,
			"confirmed_at":  now,
			"updated_at":    now,
		},
		"id = ? AND status = ?", intentID, IntentPending)
	if err != nil {
		return false, fmt.Errorf("mark intent refund pending: %w", err)
	}
	return affected > 0, nil
}

// ---- parcels ----

// OwnedParcelAt returns the occupied parcel at (x, y), or ok=false when the
// coordinate is free.
func (s *GridStore) OwnedParcelAt(ctx context.Context, x, y int) (Parcel, bool, error) {
	var parcel Parcel
	err := s.db.GetOneWhere(ctx, &parcel, "x = ? AND y = ? AND status = ?", x, y, StatusOwned)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Parcel{}, false, nil
		}
		return Parcel{}, false, fmt.Errorf("get parcel at (%d, %d): %w", x, y, err)
	}
	return parcel, true, nil
}

func (s *GridStore) InsertParcel(ctx context.Context, parcel *Parcel) error {
	err := s.db.Insert(ctx, parcel)
	if err != nil {
		return fmt.Errorf("insert parcel: %w", err)
	}
	return nil
}

// UpdateParcelOwnership reassigns an owned parcel after a re-purchase.
// Setting the same owner and price twice is a no-op, so replays are safe.
func (s *GridStore) UpdateParcelOwnership(ctx context.Context, parcelID uint, owner string, paidPrice float64) error {
	_, err := s.db.UpdateWhere(ctx, &Parcel{},
		map[string]any{
			"owner":      owner,
			"last_price": paidPrice,
			"updated_at": time.Now().UTC(),
		},
		"id = ?", parcelID)
	if err != nil {
		return fmt.Errorf("update parcel ownership: %w", err)
	}
	return nil
}

func (s *GridStore) ParcelAt(ctx context.Context, x, y int) (Parcel, error) {
	var parcel Parcel
	err := s.db.GetOneWhere(ctx, &parcel, "x = ? AND y = ? AND status = ?", x, y, StatusOwned)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Parcel{}, ErrParcelNotFound
		}
		return Parcel{}, fmt.Errorf("get parcel at (%d, %d): %w", x, y, err)
	}
	return parcel, nil
}

func (s *GridStore) UpdateParcelContent(ctx context.Context, parcelID uint, set map[string]any) error {
	set["updated_at"] = time.Now().UTC()
	_, err := s.db.UpdateWhere(ctx, &Parcel{}, set, "id = ?", parcelID)
	if err != nil {
		return fmt.Errorf("update parcel content: %w", err)
	}
	return nil
}

func (s *GridStore) ParcelsInView(ctx context.Context, x, y, w, h int) ([]Parcel, error) {
	parcels := []Parcel{}
	err := s.db.FindWhere(ctx, &parcels,
		"x < ? AND x + w > ? AND y < ? AND y + h > ? AND status = ?",
		x+w, x, y+h, y, StatusOwned)
	if err != nil {
		return nil, fmt.Errorf("parcels in view: %w", err)
	}
	return parcels, nil
}

// ---- claimable items ----

// AcquireItem is the single-winner claim primitive: one conditional update
// that only matches while the item is still available. Exactly one concurrent
// caller can observe affected > 0.
func (s *GridStore) AcquireItem(ctx context.Context, itemID, claimerWallet, claimedUser string) (ClaimableItem, error) {
	now := time.Now().UTC()
	affected, err := s.db.UpdateWhere(ctx, &ClaimableItem{},
		map[string]any{
			"status":         StatusClaimed,
			"claimed_wallet": claimerWallet,
			"claimed_user":   claimedUser,
			"claimed_at":     now,
		},
		"id = ? AND status = ?", itemID, StatusAvailable)
	if err != nil {
		return ClaimableItem{}, fmt.Errorf("acquire item: %w", err)
	}
	if affected == 0 {
		return ClaimableItem{}, ErrItemUnavailable
	}

	var item ClaimableItem
	if err := s.db.GetOneBy(ctx, "id", itemID, &item); err != nil {
		return ClaimableItem{}, fmt.Errorf("get acquired item: %w", err)
	}
	return item, nil
}

// ReleaseItem is the compensating update for a failed post-claim validation:
// the item goes back to available and the claim fields are cleared.
func (s *GridStore) ReleaseItem(ctx context.Context, itemID string) error {
	_, err := s.db.UpdateWhere(ctx, &ClaimableItem{},
		map[string]any{
			"status":         StatusAvailable,
			"claimed_wallet": "",
			"claimed_user":   "",
			"claimed_at":     nil,
		},
		"id = ?", itemID)
	if err != nil {
		return fmt.Errorf("release item: %w", err)
	}
	return nil
}

func (s *GridStore) ClaimedItem(ctx context.Context, itemID string) (ClaimableItem, error) {
	var item ClaimableItem
	err := s.db.GetOneWhere(ctx, &item, "id = ? AND status = ?", itemID, StatusClaimed)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ClaimableItem{}, ErrItemNotFound
		}
		return ClaimableItem{}, fmt.Errorf("get claimed item: %w", err)
	}
	return item, nil
}

func (s *GridStore) ItemByTxHash(ctx context.Context, txHash string) (ClaimableItem, error) {
	var item ClaimableItem
	err := s.db.GetOneBy(ctx, "tx_hash", txHash, &item)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ClaimableItem{}, ErrItemNotFound
		}
		return ClaimableItem{}, fmt.Errorf("get item by tx hash: %w", err)
	}
	return item, nil
}

func (s *GridStore) CreateItem(ctx context.Context, item *ClaimableItem) error {
	err := s.db.Insert(ctx, item)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrTxHashUsed
		}
		return fmt.Errorf("create claimable item: %w", err)
	}
	return nil
}

func (s *GridStore) ItemsInView(ctx context.Context, x, y, w, h int) ([]ClaimableItem, error) {
	items := []ClaimableItem{}
	err := s.db.FindWhere(ctx, &items,
		"x < ? AND x + w > ? AND y < ? AND y + h > ? AND status = ?",
		x+w, x, y+h, y, StatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("items in view: %w", err)
	}
	return items, nil
}

// ---- pending drops ----

func (s *GridStore) CreatePendingDrop(ctx context.Context, drop *PendingDrop) error {
	err := s.db.Insert(ctx, drop)
	if err != nil {
		return fmt.Errorf("create pending drop: %w", err)
	}
	return nil
}

func (s *GridStore) PendingDropByID(ctx context.Context, dropID string) (PendingDrop, error) {
	var drop PendingDrop
	err := s.db.GetOneWhere(ctx, &drop, "id = ? AND expires_at > ?", dropID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return PendingDrop{}, ErrDropNotFound
		}
		return PendingDrop{}, fmt.Errorf("get pending drop: %w", err)
	}
	return drop, nil
}

func (s *GridStore) DeletePendingDrop(ctx context.Context, dropID string) error {
	err := s.db.DeleteWhere(ctx, &PendingDrop{}, "id = ?", dropID)
	if err != nil {
		return fmt.Errorf("delete pending drop: %w", err)
	}
	return nil
}

// ---- stats ----

func (s *GridStore) Stats(ctx context.Context) (GridStats, error) {
	owned, err := s.db.CountWhere(ctx, &Parcel{}, "status = ?", StatusOwned)
	if err != nil {
		return GridStats{}, fmt.Errorf("count owned parcels: %w", err)
	}

	available, err := s.db.CountWhere(ctx, &ClaimableItem{}, "status = ?", StatusAvailable)
	if err != nil {
		return GridStats{}, fmt.Errorf("count available items: %w", err)
	}

	claimed, err := s.db.CountWhere(ctx, &ClaimableItem{}, "status = ?", StatusClaimed)
	if err != nil {
		return GridStats{}, fmt.Errorf("count claimed items: %w", err)
	}

	return GridStats{
		OwnedParcels:   owned,
		AvailableDrops: available,
		ClaimedDrops:   claimed,
	}, nil
}
