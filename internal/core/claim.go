package core

import (
	"context"
	"fmt"
	"landgrid/internal/signature"
	"math"

	"go.uber.org/zap"
)

// MaxClaimDistance is how far (in grid units) a claimer may stand from the
// item's center and still claim it.
const MaxClaimDistance = 150.0

// ClaimEngine hands out one-time-redeemable items. The claim itself is a
// single conditional status update in the store; the geometry check runs
// after the item is already reserved and compensates by releasing it. That
// ordering guarantees single-winner semantics without any lock: the brief
// "claimed but might be reverted" window is the price.
type ClaimEngine struct {
	logs  *zap.SugaredLogger
	store ClaimStore
	box   SecretBox
}

func NewClaimEngine(logger *zap.SugaredLogger, claimStore ClaimStore, box SecretBox) *ClaimEngine {
	return &ClaimEngine{
		logs:  logger,
		store: claimStore,
		box:   box,
	}
}

func (e *ClaimEngine) Claim(ctx context.Context, req ClaimRequest) (ClaimResult, error) {
	if !signature.ValidTimestamp(req.Timestamp) {
		return ClaimResult{}, ErrRequestExpired
	}

	message := signature.ClaimMessage(req.ItemID, req.Timestamp)
	claimerWallet, err := signature.RecoverSigner(message, req.Signature)
	if err != nil {
		return ClaimResult{}, err
	}

	item, err := e.store.AcquireItem(ctx, req.ItemID, claimerWallet, req.ClaimedUser)
	if err != nil {
		return ClaimResult{}, err
	}

	centerX := float64(item.X) + float64(item.W)/2
	centerY := float64(item.Y) + float64(item.H)/2
	distance := math.Hypot(float64(req.UserX)-centerX, float64(req.UserY)-centerY)

	if distance > MaxClaimDistance {
		e.release(ctx, item.ID)
		e.logs.Infow("claim rejected, claimer too far",
			"itemId", item.ID,
			"wallet", claimerWallet,
			"distance", math.Round(distance))
		return ClaimResult{}, fmt.Errorf("%w: distance %.0f exceeds %.0f", ErrTooFar, distance, MaxClaimDistance)
	}

	privateKey, err := e.box.Decrypt(item.EncryptedKey)
	if err != nil {
		e.release(ctx, item.ID)
		e.logs.Errorw("failed to decrypt claimed item key", "itemId", item.ID, "error", err)
		return ClaimResult{}, ErrSecretUnavailable
	}

	amount := item.AmountFormatted
	if amount == "" {
		amount = item.Amount
	}

	e.logs.Infow("item claimed", "itemId", item.ID, "wallet", claimerWallet)

	return ClaimResult{
		PrivateKey:    privateKey,
		Address:       item.WalletAddress,
		Amount:        amount,
		TokenContract: item.TokenContract,
		TokenSymbol:   item.TokenSymbol,
		TokenDecimals: item.TokenDecimals,
		ClaimedWallet: claimerWallet,
	}, nil
}

// ClaimedSecret re-releases the decrypted key of an already claimed item to
// its claimer, proven by a fresh signature over the view-key message.
func (e *ClaimEngine) ClaimedSecret(ctx context.Context, req SecretRequest) (ClaimResult, error) {
	if !signature.ValidTimestamp(req.Timestamp) {
		return ClaimResult{}, ErrRequestExpired
	}

	message := signature.ViewKeyMessage(req.ItemID, req.Timestamp)
	requestWallet, err := signature.RecoverSigner(message, req.Signature)
	if err != nil {
		return ClaimResult{}, err
	}

	item, err := e.store.ClaimedItem(ctx, req.ItemID)
	if err != nil {
		return ClaimResult{}, err
	}

	if requestWallet != item.ClaimedWallet {
		return ClaimResult{}, fmt.Errorf("%w: only the claimer can view the private key", ErrPermissionDenied)
	}

	privateKey, err := e.box.Decrypt(item.EncryptedKey)
	if err != nil {
		e.logs.Errorw("failed to decrypt claimed item key", "itemId", item.ID, "error", err)
		return ClaimResult{}, ErrSecretUnavailable
	}

	amount := item.AmountFormatted
	if amount == "" {
		amount = item.Amount
	}

	return ClaimResult{
		PrivateKey:    privateKey,
		Address:       item.WalletAddress,
		Amount:        amount,
		TokenContract: item.TokenContract,
		TokenSymbol:   item.TokenSymbol,
		TokenDecimals: item.TokenDecimals,
		ClaimedWallet: item.ClaimedWallet,
	}, nil
}

func (e *ClaimEngine) release(ctx context.Context, itemID string) {
	if err := e.store.ReleaseItem(ctx, itemID); err != nil {
		e.logs.Errorw("failed to release item after rejected claim", "itemId", itemID, "error", err)
	}
}
