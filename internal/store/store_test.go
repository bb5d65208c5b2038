package store_test

import (
	"context"
	"errors"

	"landgrid/internal/db"
	"landgrid/internal/store"
	"landgrid/internal/store/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GridStore", func() {
	var (
		fakeDB    *fake.Database
		gridStore *store.GridStore
		ctx       context.Context
	)

	BeforeEach(func() {
		fakeDB = new(fake.Database)
		gridStore = store.NewGridStore(fakeDB)
		ctx = context.Background()
	})

	Describe("CreateIntent", func() {
		When("the txHash is already registered", func() {
			It("should translate the duplicate into a domain error", func() {
				fakeDB.InsertReturns(db.ErrDuplicate)

				err := gridStore.CreateIntent(ctx, &store.PurchaseIntent{ID: "intent-1", TxHash: "0xabc"})
				Expect(err).To(MatchError(store.ErrTxHashUsed))
			})
		})

		When("the insert fails for another reason", func() {
			It("should wrap the error", func() {
				fakeDB.InsertReturns(errors.New("connection reset"))

				err := gridStore.CreateIntent(ctx, &store.PurchaseIntent{ID: "intent-1"})
				Expect(err).To(MatchError(ContainSubstring("create purchase intent")))
			})
		})
	})

	Describe("IntentByTxHash", func() {
		It("should query by the tx_hash column", func() {
			_, err := gridStore.IntentByTxHash(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())

			_, column, value, _ := fakeDB.GetOneByArgsForCall(0)
			Expect(column).To(Equal("tx_hash"))
			Expect(value).To(Equal("0xabc"))
		})

		When("no intent exists", func() {
			It("should return a not found error", func() {
				fakeDB.GetOneByReturns(db.ErrNotFound)

				_, err := gridStore.IntentByTxHash(ctx, "0xabc")
				Expect(err).To(MatchError(store.ErrIntentNotFound))
			})
		})
	})

	Describe("MarkIntentConfirmed", func() {
		It("should only flip intents that are still pending", func() {
			fakeDB.UpdateWhereReturns(1, nil)

			won, err := gridStore.MarkIntentConfirmed(ctx, "intent-1", 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(won).To(BeTrue())

			_, _, set, query, args := fakeDB.UpdateWhereArgsForCall(0)
			Expect(query).To(Equal("id = ? AND status = ?"))
			Expect(args).To(Equal([]any{"intent-1", store.IntentPending}))
			Expect(set).To(HaveKeyWithValue("status", store.IntentConfirmed))
			Expect(set).To(HaveKeyWithValue("confirmations", int64(5)))
			Expect(set).To(HaveKey("confirmed_at"))
		})

		When("another caller already settled the intent", func() {
			It("should report a lost race", func() {
				fakeDB.UpdateWhereReturns(0, nil)

				won, err := gridStore.MarkIntentConfirmed(ctx, "intent-1", 5)
				Expect(err).NotTo(HaveOccurred())
				Expect(won).To(BeFalse())
			})
		})
	})

	Describe("MarkIntentRefundPending", func() {
		It("should record the refund reason on the pending intent", func() {
			fakeDB.UpdateWhereReturns(1, nil)

			won, err := gridStore.MarkIntentRefundPending(ctx, "intent-1", "underpaid", 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(won).To(BeTrue())

			_, _, set, query, args := fakeDB.UpdateWhereArgsForCall(0)
			Expect(query).To(Equal("id = ? AND status = ?"))
			Expect(args).To(Equal([]any{"intent-1", store.IntentPending}))
			Expect(set).To(HaveKeyWithValue("status", store.IntentRefundPending))
			Expect(set).To(HaveKeyWithValue("refund_reason", "underpaid"))
		})
	})

	Describe("OwnedParcelAt", func() {
		When("the coordinate is free", func() {
			It("should report ok=false without an error", func() {
				fakeDB.GetOneWhereReturns(db.ErrNotFound)

				_, ok, err := gridStore.OwnedParcelAt(ctx, 100, 200)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeFalse())
			})
		})

		When("the coordinate is occupied", func() {
			It("should return the parcel", func() {
				fakeDB.GetOneWhereStub = func(_ context.Context, entity any, _ string, _ ...any) error {
					*(entity.(*store.Parcel)) = store.Parcel{ID: 3, X: 100, Y: 200, Owner: "0xaaa"}
					return nil
				}

				parcel, ok, err := gridStore.OwnedParcelAt(ctx, 100, 200)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue())
				Expect(parcel.ID).To(Equal(uint(3)))

				_, _, query, args := fakeDB.GetOneWhereArgsForCall(0)
				Expect(query).To(Equal("x = ? AND y = ? AND status = ?"))
				Expect(args).To(Equal([]any{100, 200, store.StatusOwned}))
			})
		})
	})

	Describe("AcquireItem", func() {
		When("the item is still available", func() {
			It("should claim it and re-read the full row", func() {
				fakeDB.UpdateWhereReturns(1, nil)
				fakeDB.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
					*(entity.(*store.ClaimableItem)) = store.ClaimableItem{ID: "item-1", ClaimedWallet: "0xaaa"}
					return nil
				}

				item, err := gridStore.AcquireItem(ctx, "item-1", "0xaaa", "alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(item.ID).To(Equal("item-1"))

				_, _, set, query, args := fakeDB.UpdateWhereArgsForCall(0)
				Expect(query).To(Equal("id = ? AND status = ?"))
				Expect(args).To(Equal([]any{"item-1", store.StatusAvailable}))
				Expect(set).To(HaveKeyWithValue("status", store.StatusClaimed))
				Expect(set).To(HaveKeyWithValue("claimed_wallet", "0xaaa"))
				Expect(set).To(HaveKeyWithValue("claimed_user", "alice"))
			})
		})

		When("the item was already claimed", func() {
			It("should report it unavailable without re-reading", func() {
				fakeDB.UpdateWhereReturns(0, nil)

				_, err := gridStore.AcquireItem(ctx, "item-1", "0xaaa", "alice")
				Expect(err).To(MatchError(store.ErrItemUnavailable))
				Expect(fakeDB.GetOneByCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ReleaseItem", func() {
		It("should put the item back to available and clear claim fields", func() {
			err := gridStore.ReleaseItem(ctx, "item-1")
			Expect(err).NotTo(HaveOccurred())

			_, _, set, query, args := fakeDB.UpdateWhereArgsForCall(0)
			Expect(query).To(Equal("id = ?"))
			Expect(args).To(Equal([]any{"item-1"}))
			Expect(set).To(HaveKeyWithValue("status", store.StatusAvailable))
			Expect(set).To(HaveKeyWithValue("claimed_wallet", ""))
			Expect(set["claimed_at"]).To(BeNil())
		})
	})

	Describe("CreateItem", func() {
		When("the funding txHash already exists", func() {
			It("should translate the duplicate into a domain error", func() {
				fakeDB.InsertReturns(db.ErrDuplicate)

				err := gridStore.CreateItem(ctx, &store.ClaimableItem{ID: "item-1"})
				Expect(err).To(MatchError(store.ErrTxHashUsed))
			})
		})
	})

	Describe("PendingDropByID", func() {
		When("the drop is missing or expired", func() {
			It("should return a drop not found error", func() {
				fakeDB.GetOneWhereReturns(db.ErrNotFound)

				_, err := gridStore.PendingDropByID(ctx, "drop-1")
				Expect(err).To(MatchError(store.ErrDropNotFound))
			})
		})

		It("should exclude expired drops in the query", func() {
			_, err := gridStore.PendingDropByID(ctx, "drop-1")
			Expect(err).NotTo(HaveOccurred())

			_, _, query, args := fakeDB.GetOneWhereArgsForCall(0)
			Expect(query).To(Equal("id = ? AND expires_at > ?"))
			Expect(args[0]).To(Equal("drop-1"))
		})
	})

	Describe("ParcelsInView", func() {
		It("should query the intersection of the viewport and owned parcels", func() {
			_, err := gridStore.ParcelsInView(ctx, 0, 0, 800, 600)
			Expect(err).NotTo(HaveOccurred())

			_, _, query, args := fakeDB.FindWhereArgsForCall(0)
			Expect(query).To(Equal("x < ? AND x + w > ? AND y < ? AND y + h > ? AND status = ?"))
			Expect(args).To(Equal([]any{800, 0, 600, 0, store.StatusOwned}))
		})
	})

	Describe("Stats", func() {
		It("should aggregate the three occupancy counts", func() {
			fakeDB.CountWhereReturnsOnCall(0, 10, nil)
			fakeDB.CountWhereReturnsOnCall(1, 2, nil)
			fakeDB.CountWhereReturnsOnCall(2, 3, nil)

			stats, err := gridStore.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.OwnedParcels).To(Equal(int64(10)))
			Expect(stats.AvailableDrops).To(Equal(int64(2)))
			Expect(stats.ClaimedDrops).To(Equal(int64(3)))
		})
	})
})
