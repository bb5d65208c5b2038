package core

import (
	"context"
	"errors"
	"fmt"
	"landgrid/internal/config"
	"landgrid/internal/store"
	"math/rand"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// pending drops expire if the funding transaction never shows up
	dropTTL = time.Hour

	dropRange  = 100000
	gridCell   = 100
	noSaleZone = 500
)

// DropEngine runs the two-step drop lifecycle: a fresh wallet is generated
// and parked as a pending drop, then once the funding transaction lands
// on-chain the wallet's actual token balance becomes a claimable item. Using
// the balance instead of the transfer amount keeps tax tokens honest — the
// item is worth what actually arrived.
type DropEngine struct {
	logs     *zap.SugaredLogger
	store    DropStore
	chain    ChainService
	box      SecretBox
	registry *config.TokenRegistry
}

func NewDropEngine(logger *zap.SugaredLogger, dropStore DropStore, chainService ChainService, box SecretBox, registry *config.TokenRegistry) *DropEngine {
	return &DropEngine{
		logs:     logger,
		store:    dropStore,
		chain:    chainService,
		box:      box,
		registry: registry,
	}
}

func (e *DropEngine) CreateDrop(ctx context.Context, req CreateDropRequest) (DropCreated, error) {
	if !e.registry.Allowed(req.TokenContract) {
		return DropCreated{}, ErrTokenNotAllowed
	}

	key, err := crypto.GenerateKey()
	if err != nil {
		return DropCreated{}, fmt.Errorf("generate drop wallet: %w", err)
	}
	privateKey := hexutil.Encode(crypto.FromECDSA(key))
	address := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

	encryptedKey, err := e.box.Encrypt(privateKey)
	if err != nil {
		return DropCreated{}, fmt.Errorf("encrypt drop wallet key: %w", err)
	}

	x, y := resolvePosition(req.X, req.Y)

	drop := store.PendingDrop{
		ID:            uuid.NewString(),
		Address:       address,
		EncryptedKey:  encryptedKey,
		Amount:        req.Amount,
		TokenContract: strings.ToLower(req.TokenContract),
		TokenSymbol:   req.TokenSymbol,
		TokenDecimals: req.TokenDecimals,
		X:             x,
		Y:             y,
		ExpiresAt:     time.Now().UTC().Add(dropTTL),
	}

	if err := e.store.CreatePendingDrop(ctx, &drop); err != nil {
		return DropCreated{}, err
	}

	e.logs.Infow("drop wallet created",
		"dropId", drop.ID,
		"address", address,
		"token", drop.TokenContract,
		"x", x,
		"y", y)

	return DropCreated{
		DropID:  drop.ID,
		Address: address,
		X:       x,
		Y:       y,
	}, nil
}

func (e *DropEngine) ConfirmDrop(ctx context.Context, req ConfirmDropRequest) (DropConfirmed, error) {
	drop, err := e.store.PendingDropByID(ctx, req.DropID)
	if err != nil {
		return DropConfirmed{}, err
	}

	_, err = e.store.ItemByTxHash(ctx, req.TxHash)
	if err == nil {
		return DropConfirmed{}, store.ErrTxHashUsed
	}
	if !errors.Is(err, store.ErrItemNotFound) {
		return DropConfirmed{}, err
	}

	receipt, err := e.chain.WaitForReceipt(ctx, req.TxHash)
	if err != nil {
		return DropConfirmed{}, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return DropConfirmed{}, ErrTxFailed
	}

	balance, err := e.chain.TokenBalance(ctx, drop.TokenContract, drop.Address)
	if err != nil {
		return DropConfirmed{}, err
	}
	if balance.Sign() == 0 {
		return DropConfirmed{}, ErrNoTokensReceived
	}

	formatted := decimal.NewFromBigInt(balance, -int32(drop.TokenDecimals)).String()

	item := store.ClaimableItem{
		ID:              uuid.NewString(),
		X:               drop.X,
		Y:               drop.Y,
		W:               gridCell,
		H:               gridCell,
		TokenContract:   drop.TokenContract,
		TokenSymbol:     drop.TokenSymbol,
		TokenDecimals:   drop.TokenDecimals,
		Amount:          balance.String(),
		AmountFormatted: formatted,
		WalletAddress:   drop.Address,
		EncryptedKey:    drop.EncryptedKey,
		TxHash:          req.TxHash,
		Status:          store.StatusAvailable,
	}

	if err := e.store.CreateItem(ctx, &item); err != nil {
		return DropConfirmed{}, err
	}

	if err := e.store.DeletePendingDrop(ctx, drop.ID); err != nil {
		e.logs.Errorw("failed to delete confirmed pending drop", "dropId", drop.ID, "error", err)
	}

	e.logs.Infow("drop confirmed",
		"dropId", drop.ID,
		"itemId", item.ID,
		"token", item.TokenSymbol,
		"amount", formatted)

	return DropConfirmed{
		X:           drop.X,
		Y:           drop.Y,
		TokenSymbol: drop.TokenSymbol,
		Amount:      formatted,
	}, nil
}

func resolvePosition(x, y *int) (int, int) {
	if x != nil && y != nil {
		return *x, *y
	}
	return randomGridPosition()
}

// randomGridPosition picks a grid-aligned coordinate outside the central
// no-sale zone.
func randomGridPosition() (int, int) {
	x := alignToGrid(rand.Intn(2*dropRange+1) - dropRange)
	y := alignToGrid(rand.Intn(2*dropRange+1) - dropRange)
	for x > -noSaleZone && x < noSaleZone && y > -noSaleZone && y < noSaleZone {
		x = alignToGrid(rand.Intn(2*dropRange+1) - dropRange)
		y = alignToGrid(rand.Intn(2*dropRange+1) - dropRange)
	}
	return x, y
}

func alignToGrid(v int) int {
	if v < 0 && v%gridCell != 0 {
		return (v/gridCell - 1) * gridCell
	}
	return v / gridCell * gridCell
}
