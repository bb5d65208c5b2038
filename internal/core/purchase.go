package core

import (
	"context"
	"errors"
	"fmt"
	"landgrid/internal/chain"
	"landgrid/internal/store"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// priceTolerance absorbs float rounding between the client's quoted total
// and the per-parcel required price.
const priceTolerance = 0.001

// Pricing holds the payment verification parameters: which token on which
// contract must have been transferred to which recipient, and what a free
// parcel costs.
type Pricing struct {
	BasePrice     float64
	TokenContract common.Address
	Recipient     common.Address
	TokenDecimals int
}

// PurchaseReconciler turns pending purchase intents plus verified on-chain
// payments into committed parcel ownership. A txHash maps to at most one
// intent ever, and an intent settles exactly once.
type PurchaseReconciler struct {
	logs    *zap.SugaredLogger
	store   PurchaseStore
	chain   ChainService
	pricing Pricing
}

func NewPurchaseReconciler(logger *zap.SugaredLogger, purchaseStore PurchaseStore, chainService ChainService, pricing Pricing) *PurchaseReconciler {
	return &PurchaseReconciler{
		logs:    logger,
		store:   purchaseStore,
		chain:   chainService,
		pricing: pricing,
	}
}

// Submit records a pending purchase intent. The txHash is the idempotency
// key: a duplicate submission returns the existing intent untouched.
func (r *PurchaseReconciler) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	intent := store.PurchaseIntent{
		ID:            uuid.NewString(),
		TxHash:        req.TxHash,
		WalletAddress: req.WalletAddress,
		Parcels:       req.Parcels,
		TotalPrice:    req.TotalPrice,
		Status:        store.IntentPending,
	}

	err := r.store.CreateIntent(ctx, &intent)
	if err != nil {
		if errors.Is(err, store.ErrTxHashUsed) {
			existing, getErr := r.store.IntentByTxHash(ctx, req.TxHash)
			if getErr != nil {
				return SubmitResult{}, fmt.Errorf("get existing intent: %w", getErr)
			}
			return SubmitResult{
				PurchaseID: existing.ID,
				Status:     existing.Status,
				Parcels:    len(existing.Parcels),
			}, store.ErrTxHashUsed
		}
		return SubmitResult{}, err
	}

	r.logs.Infow("purchase intent created",
		"purchaseId", intent.ID,
		"txHash", intent.TxHash,
		"parcels", len(intent.Parcels))

	return SubmitResult{
		PurchaseID: intent.ID,
		Status:     intent.Status,
		Parcels:    len(intent.Parcels),
	}, nil
}

// Quote computes the total expected price of a basket without mutating
// anything: base price for free parcels, double the last paid price for
// owned ones.
func (r *PurchaseReconciler) Quote(ctx context.Context, parcels []store.ParcelRef) (PriceQuote, error) {
	var total float64
	for _, ref := range parcels {
		required, err := r.requiredPrice(ctx, ref)
		if err != nil {
			return PriceQuote{}, err
		}
		total += required
	}
	return PriceQuote{Allowed: true, TotalExpectedPrice: total}, nil
}

// Confirm settles the intent registered under txHash against the chain.
//
// The sequence is: idempotency short-circuit, on-chain verification, payment
// proof via transfer logs, a read-only all-or-nothing price evaluation, and
// only then the commit — intent first, parcel mutations after. A crash
// between those two leaves a confirmed intent whose parcel mutations are
// idempotent to replay.
func (r *PurchaseReconciler) Confirm(ctx context.Context, txHash string) (ConfirmResult, error) {
	intent, err := r.store.IntentByTxHash(ctx, txHash)
	if err != nil {
		return ConfirmResult{}, err
	}

	if intent.Status != store.IntentPending {
		return r.settledResult(intent), nil
	}

	details, err := r.chain.TransactionDetails(ctx, txHash)
	if err != nil {
		return ConfirmResult{}, err
	}
	if !details.Succeeded {
		return ConfirmResult{}, ErrTxFailed
	}
	if !details.Confirmed {
		return ConfirmResult{}, fmt.Errorf("%w: need at least %d confirmations, have %d",
			ErrNotConfirmedYet, chain.FinalityConfirmations, details.Confirmations)
	}

	paid := chain.SumTransferLogs(details.Logs, r.pricing.TokenContract, r.pricing.Recipient)
	if paid.Sign() == 0 {
		return ConfirmResult{}, ErrNoPaymentFound
	}

	expected := decimal.NewFromFloat(intent.TotalPrice).
		Shift(int32(r.pricing.TokenDecimals)).
		Round(0).
		BigInt()
	if paid.Cmp(expected) < 0 {
		return ConfirmResult{}, fmt.Errorf("%w: expected %s, got %s",
			ErrInsufficientPayment, expected.String(), paid.String())
	}

	confirmations := int64(details.Confirmations)
	pricePerParcel := intent.TotalPrice / float64(len(intent.Parcels))

	// Read-only pass over the whole basket. The first parcel failing its
	// price check aborts the entire batch into refund_pending.
	type parcelOp struct {
		ref      store.ParcelRef
		existing store.Parcel
		owned    bool
	}
	ops := make([]parcelOp, 0, len(intent.Parcels))

	for _, ref := range intent.Parcels {
		existing, owned, err := r.store.OwnedParcelAt(ctx, ref.X, ref.Y)
		if err != nil {
			return ConfirmResult{}, err
		}

		required := r.pricing.BasePrice
		if owned {
			required = existing.LastPrice * 2
		}
		if pricePerParcel < required-priceTolerance {
			reason := fmt.Sprintf("insufficient payment for parcel (%d, %d): required %g, paid %g",
				ref.X, ref.Y, required, pricePerParcel)
			return r.abortToRefund(ctx, intent, reason, confirmations)
		}

		ops = append(ops, parcelOp{ref: ref, existing: existing, owned: owned})
	}

	// Commit. The status predicate on the update makes this a single-winner
	// transition: a concurrent confirm that lost simply reports the settled
	// state.
	won, err := r.store.MarkIntentConfirmed(ctx, intent.ID, confirmations)
	if err != nil {
		return ConfirmResult{}, err
	}
	if !won {
		settled, err := r.store.IntentByTxHash(ctx, txHash)
		if err != nil {
			return ConfirmResult{}, err
		}
		return r.settledResult(settled), nil
	}

	var applyErr error
	for _, op := range ops {
		if op.owned {
			err = r.store.UpdateParcelOwnership(ctx, op.existing.ID, intent.WalletAddress, pricePerParcel)
		} else {
			err = r.store.InsertParcel(ctx, &store.Parcel{
				X:          op.ref.X,
				Y:          op.ref.Y,
				W:          sizeOrDefault(op.ref.W),
				H:          sizeOrDefault(op.ref.H),
				Owner:      intent.WalletAddress,
				Status:     store.StatusOwned,
				LastPrice:  pricePerParcel,
				Text:       op.ref.Text,
				PurchaseID: intent.ID,
				TxHash:     intent.TxHash,
			})
		}
		if err != nil {
			r.logs.Errorw("failed to apply parcel mutation for confirmed intent",
				"purchaseId", intent.ID,
				"x", op.ref.X,
				"y", op.ref.Y,
				"error", err)
			applyErr = errors.Join(applyErr, err)
		}
	}

	r.logs.Infow("purchase confirmed",
		"purchaseId", intent.ID,
		"txHash", intent.TxHash,
		"parcels", len(ops),
		"confirmations", confirmations)

	return ConfirmResult{
		PurchaseID:    intent.ID,
		Status:        store.IntentConfirmed,
		Parcels:       len(ops),
		Confirmations: confirmations,
	}, applyErr
}

func (r *PurchaseReconciler) abortToRefund(ctx context.Context, intent store.PurchaseIntent, reason string, confirmations int64) (ConfirmResult, error) {
	won, err := r.store.MarkIntentRefundPending(ctx, intent.ID, reason, confirmations)
	if err != nil {
		return ConfirmResult{}, err
	}
	if !won {
		settled, err := r.store.IntentByTxHash(ctx, intent.TxHash)
		if err != nil {
			return ConfirmResult{}, err
		}
		return r.settledResult(settled), nil
	}

	r.logs.Infow("purchase aborted to refund_pending",
		"purchaseId", intent.ID,
		"txHash", intent.TxHash,
		"reason", reason)

	return ConfirmResult{
		PurchaseID:    intent.ID,
		Status:        store.IntentRefundPending,
		Confirmations: confirmations,
		RefundReason:  reason,
	}, ErrRefundPending
}

func (r *PurchaseReconciler) settledResult(intent store.PurchaseIntent) ConfirmResult {
	result := ConfirmResult{
		PurchaseID:    intent.ID,
		Status:        intent.Status,
		Confirmations: intent.Confirmations,
		RefundReason:  intent.RefundReason,
	}
	if intent.Status == store.IntentConfirmed {
		result.Parcels = len(intent.Parcels)
	}
	return result
}

func (r *PurchaseReconciler) requiredPrice(ctx context.Context, ref store.ParcelRef) (float64, error) {
	existing, owned, err := r.store.OwnedParcelAt(ctx, ref.X, ref.Y)
	if err != nil {
		return 0, err
	}
	if owned {
		return existing.LastPrice * 2, nil
	}
	return r.pricing.BasePrice, nil
}

func sizeOrDefault(size int) int {
	if size <= 0 {
		return 100
	}
	return size
}
