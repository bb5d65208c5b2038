package core_test

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"landgrid/internal/config"
	"landgrid/internal/core"
	"landgrid/internal/core/fake"
	"landgrid/internal/secret"
	"landgrid/internal/store"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("DropEngine", func() {
	var (
		fakeStore *fake.DropStore
		fakeChain *fake.ChainService
		box       *secret.Box
		engine    *core.DropEngine
		ctx       context.Context
	)

	const tokenContract = "0x1111111111111111111111111111111111111111"
	const txHash = "0xcccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc"

	BeforeEach(func() {
		fakeStore = new(fake.DropStore)
		fakeChain = new(fake.ChainService)
		box = secret.NewBox("drop-test-key")
		engine = core.NewDropEngine(zap.NewNop().Sugar(), fakeStore, fakeChain, box, nil)
		ctx = context.Background()
	})

	Describe("CreateDrop", func() {
		When("a position is requested explicitly", func() {
			It("should park a pending drop with a fresh encrypted wallet", func() {
				x, y := 300, -400
				result, err := engine.CreateDrop(ctx, core.CreateDropRequest{
					Amount:        5,
					TokenContract: strings.ToUpper(tokenContract),
					TokenSymbol:   "USDT",
					TokenDecimals: 6,
					X:             &x,
					Y:             &y,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.DropID).NotTo(BeEmpty())
				Expect(result.X).To(Equal(300))
				Expect(result.Y).To(Equal(-400))

				Expect(fakeStore.CreatePendingDropCallCount()).To(Equal(1))
				_, drop := fakeStore.CreatePendingDropArgsForCall(0)
				Expect(drop.TokenContract).To(Equal(tokenContract))
				Expect(drop.TokenSymbol).To(Equal("USDT"))
				Expect(drop.ExpiresAt).NotTo(BeZero())

				privateKey, err := box.Decrypt(drop.EncryptedKey)
				Expect(err).NotTo(HaveOccurred())
				key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
				Expect(err).NotTo(HaveOccurred())
				derived := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
				Expect(drop.Address).To(Equal(derived))
				Expect(result.Address).To(Equal(derived))
			})
		})

		When("no position is requested", func() {
			It("should pick a grid-aligned spot outside the central zone", func() {
				result, err := engine.CreateDrop(ctx, core.CreateDropRequest{
					Amount:        1,
					TokenContract: tokenContract,
					TokenSymbol:   "USDT",
					TokenDecimals: 6,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.X % 100).To(Equal(0))
				Expect(result.Y % 100).To(Equal(0))
				centralX := result.X > -500 && result.X < 500
				centralY := result.Y > -500 && result.Y < 500
				Expect(centralX && centralY).To(BeFalse())
			})
		})

		When("a token registry is configured", func() {
			var registry *config.TokenRegistry

			BeforeEach(func() {
				path := filepath.Join(GinkgoT().TempDir(), "tokens.yaml")
				content := "tokens:\n  - symbol: USDT\n    contract: " + tokenContract + "\n    decimals: 6\n"
				Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

				var err error
				registry, err = config.LoadTokenRegistry(path)
				Expect(err).NotTo(HaveOccurred())
				engine = core.NewDropEngine(zap.NewNop().Sugar(), fakeStore, fakeChain, box, registry)
			})

			It("should reject contracts outside the registry", func() {
				_, err := engine.CreateDrop(ctx, core.CreateDropRequest{
					Amount:        1,
					TokenContract: "0x9999999999999999999999999999999999999999",
					TokenSymbol:   "SCAM",
				})
				Expect(err).To(MatchError(core.ErrTokenNotAllowed))
				Expect(fakeStore.CreatePendingDropCallCount()).To(Equal(0))
			})

			It("should accept listed contracts regardless of casing", func() {
				_, err := engine.CreateDrop(ctx, core.CreateDropRequest{
					Amount:        1,
					TokenContract: strings.ToUpper(tokenContract),
					TokenSymbol:   "USDT",
					TokenDecimals: 6,
				})
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("ConfirmDrop", func() {
		var drop store.PendingDrop

		BeforeEach(func() {
			encrypted, err := box.Encrypt("0xsecret")
			Expect(err).NotTo(HaveOccurred())

			drop = store.PendingDrop{
				ID:            "drop-1",
				Address:       "0x2222222222222222222222222222222222222222",
				EncryptedKey:  encrypted,
				Amount:        5,
				TokenContract: tokenContract,
				TokenSymbol:   "USDT",
				TokenDecimals: 6,
				X:             300,
				Y:             -400,
			}
			fakeStore.PendingDropByIDReturns(drop, nil)
			fakeStore.ItemByTxHashReturns(store.ClaimableItem{}, store.ErrItemNotFound)
			fakeChain.WaitForReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			fakeChain.TokenBalanceReturns(big.NewInt(5_000_000), nil)
		})

		confirmRequest := core.ConfirmDropRequest{DropID: "drop-1", TxHash: txHash}

		When("the funding transaction succeeded and tokens arrived", func() {
			It("should publish the item with the wallet's actual balance", func() {
				result, err := engine.ConfirmDrop(ctx, confirmRequest)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.X).To(Equal(300))
				Expect(result.Y).To(Equal(-400))
				Expect(result.TokenSymbol).To(Equal("USDT"))
				Expect(result.Amount).To(Equal("5"))

				Expect(fakeStore.CreateItemCallCount()).To(Equal(1))
				_, item := fakeStore.CreateItemArgsForCall(0)
				Expect(item.Amount).To(Equal("5000000"))
				Expect(item.AmountFormatted).To(Equal("5"))
				Expect(item.W).To(Equal(100))
				Expect(item.H).To(Equal(100))
				Expect(item.WalletAddress).To(Equal(drop.Address))
				Expect(item.EncryptedKey).To(Equal(drop.EncryptedKey))
				Expect(item.TxHash).To(Equal(txHash))
				Expect(item.Status).To(Equal(store.StatusAvailable))

				Expect(fakeStore.DeletePendingDropCallCount()).To(Equal(1))
			})
		})

		When("the drop is unknown or expired", func() {
			It("should pass the store error through", func() {
				fakeStore.PendingDropByIDReturns(store.PendingDrop{}, store.ErrDropNotFound)

				_, err := engine.ConfirmDrop(ctx, confirmRequest)
				Expect(err).To(MatchError(store.ErrDropNotFound))
			})
		})

		When("the txHash already funded another item", func() {
			It("should reject the confirmation before waiting on the chain", func() {
				fakeStore.ItemByTxHashReturns(store.ClaimableItem{ID: "other"}, nil)

				_, err := engine.ConfirmDrop(ctx, confirmRequest)
				Expect(err).To(MatchError(store.ErrTxHashUsed))
				Expect(fakeChain.WaitForReceiptCallCount()).To(Equal(0))
			})
		})

		When("the funding transaction reverted", func() {
			It("should fail the confirmation", func() {
				fakeChain.WaitForReceiptReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)

				_, err := engine.ConfirmDrop(ctx, confirmRequest)
				Expect(err).To(MatchError(core.ErrTxFailed))
				Expect(fakeStore.CreateItemCallCount()).To(Equal(0))
			})
		})

		When("the drop wallet holds no tokens", func() {
			It("should refuse to publish an empty item", func() {
				fakeChain.TokenBalanceReturns(new(big.Int), nil)

				_, err := engine.ConfirmDrop(ctx, confirmRequest)
				Expect(err).To(MatchError(core.ErrNoTokensReceived))
				Expect(fakeStore.CreateItemCallCount()).To(Equal(0))
			})
		})
	})
})
