package core_test

import (
	"context"
	"crypto/ecdsa"
	"strings"
	"time"

	"landgrid/internal/core"
	"landgrid/internal/core/fake"
	"landgrid/internal/signature"
	"landgrid/internal/store"

	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("LandEditor", func() {
	var (
		fakeStore *fake.LandStore
		editor    *core.LandEditor
		ctx       context.Context

		key    *ecdsa.PrivateKey
		wallet string
		ts     int64
	)

	BeforeEach(func() {
		fakeStore = new(fake.LandStore)
		editor = core.NewLandEditor(zap.NewNop().Sugar(), fakeStore)
		ctx = context.Background()

		var err error
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		wallet = strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
		ts = time.Now().Unix()
	})

	singleRequest := func(x, y int, text, link, image string, removeImage bool) core.UpdateParcelsRequest {
		message := signature.ParcelUpdateMessage(x, y, text, link, imageStatusFor(image, removeImage), ts)
		return core.UpdateParcelsRequest{
			Signature:   signMessage(key, message),
			Timestamp:   ts,
			Text:        text,
			Link:        link,
			RemoveImage: removeImage,
			Single:      &core.ParcelEdit{X: x, Y: y, Image: image, RemoveImage: removeImage},
		}
	}

	Describe("single-parcel mode", func() {
		When("the signer owns the parcel", func() {
			It("should update the parcel content", func() {
				fakeStore.ParcelAtReturns(store.Parcel{ID: 3, Owner: wallet}, nil)

				result, err := editor.UpdateParcels(ctx, singleRequest(100, 200, "hello", "https://example.com", "", false))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Count).To(Equal(1))
				Expect(result.Text).To(Equal("hello"))

				Expect(fakeStore.UpdateParcelContentCallCount()).To(Equal(1))
				_, parcelID, set := fakeStore.UpdateParcelContentArgsForCall(0)
				Expect(parcelID).To(Equal(uint(3)))
				Expect(set).To(HaveKeyWithValue("text", "hello"))
				Expect(set).To(HaveKeyWithValue("link", "https://example.com"))
				Expect(set).NotTo(HaveKey("image"))
			})
		})

		When("a new image is set", func() {
			It("should include the image in the update", func() {
				fakeStore.ParcelAtReturns(store.Parcel{ID: 3, Owner: wallet}, nil)

				_, err := editor.UpdateParcels(ctx, singleRequest(100, 200, "t", "l", "https://img.example/a.png", false))
				Expect(err).NotTo(HaveOccurred())

				_, _, set := fakeStore.UpdateParcelContentArgsForCall(0)
				Expect(set).To(HaveKeyWithValue("image", "https://img.example/a.png"))
			})
		})

		When("the image is removed", func() {
			It("should blank the image", func() {
				fakeStore.ParcelAtReturns(store.Parcel{ID: 3, Owner: wallet}, nil)

				_, err := editor.UpdateParcels(ctx, singleRequest(100, 200, "t", "l", "", true))
				Expect(err).NotTo(HaveOccurred())

				_, _, set := fakeStore.UpdateParcelContentArgsForCall(0)
				Expect(set).To(HaveKeyWithValue("image", ""))
			})
		})

		When("the signer does not own the parcel", func() {
			It("should deny the edit", func() {
				fakeStore.ParcelAtReturns(store.Parcel{ID: 3, Owner: "0x9999999999999999999999999999999999999999"}, nil)

				_, err := editor.UpdateParcels(ctx, singleRequest(100, 200, "t", "l", "", false))
				Expect(err).To(MatchError(core.ErrPermissionDenied))
				Expect(fakeStore.UpdateParcelContentCallCount()).To(Equal(0))
			})
		})

		When("the parcel does not exist", func() {
			It("should pass the store error through", func() {
				fakeStore.ParcelAtReturns(store.Parcel{}, store.ErrParcelNotFound)

				_, err := editor.UpdateParcels(ctx, singleRequest(100, 200, "t", "l", "", false))
				Expect(err).To(MatchError(store.ErrParcelNotFound))
			})
		})

		When("the request timestamp is stale", func() {
			It("should reject without touching the store", func() {
				req := singleRequest(100, 200, "t", "l", "", false)
				req.Timestamp = time.Now().Unix() - 600

				_, err := editor.UpdateParcels(ctx, req)
				Expect(err).To(MatchError(core.ErrRequestExpired))
				Expect(fakeStore.ParcelAtCallCount()).To(Equal(0))
			})
		})
	})

	Describe("batch mode", func() {
		batchRequest := func(text, link string, edits ...core.ParcelEdit) core.UpdateParcelsRequest {
			positions := make([]signature.Position, len(edits))
			for i, edit := range edits {
				positions[i] = signature.Position{X: edit.X, Y: edit.Y}
			}
			message := signature.BatchUpdateMessage(positions, text, link, ts)
			return core.UpdateParcelsRequest{
				Signature: signMessage(key, message),
				Timestamp: ts,
				Text:      text,
				Link:      link,
				Batch:     edits,
			}
		}

		When("some parcels belong to other wallets", func() {
			It("should update owned parcels and skip the rest", func() {
				fakeStore.ParcelAtReturnsOnCall(0, store.Parcel{ID: 1, Owner: wallet}, nil)
				fakeStore.ParcelAtReturnsOnCall(1, store.Parcel{ID: 2, Owner: "0x9999999999999999999999999999999999999999"}, nil)
				fakeStore.ParcelAtReturnsOnCall(2, store.Parcel{}, store.ErrParcelNotFound)

				result, err := editor.UpdateParcels(ctx, batchRequest("t", "l",
					core.ParcelEdit{X: 0, Y: 0},
					core.ParcelEdit{X: 100, Y: 0},
					core.ParcelEdit{X: 200, Y: 0}))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Count).To(Equal(1))
				Expect(fakeStore.UpdateParcelContentCallCount()).To(Equal(1))
			})
		})

		When("no parcel in the batch is editable", func() {
			It("should report that nothing was updated", func() {
				fakeStore.ParcelAtReturns(store.Parcel{ID: 1, Owner: "0x9999999999999999999999999999999999999999"}, nil)

				_, err := editor.UpdateParcels(ctx, batchRequest("t", "l",
					core.ParcelEdit{X: 0, Y: 0},
					core.ParcelEdit{X: 100, Y: 0}))
				Expect(err).To(MatchError(core.ErrNothingUpdated))
			})
		})
	})
})

func imageStatusFor(image string, removeImage bool) string {
	if removeImage {
		return "Removed"
	}
	if image != "" {
		return "Yes"
	}
	return "Unchanged"
}
