package payload_test

import (
	"bytes"
	"net/http/httptest"
	"strings"

	"landgrid/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const validAddress = "0x1111111111111111111111111111111111111111"

var validTxHash = "0x" + strings.Repeat("ab", 32)
var validSignature = "0x" + strings.Repeat("ab", 65)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	It("should decode and validate a well-formed payload", func() {
		body := `{"txHash": "` + validTxHash + `"}`
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(body))

		var target payload.ConfirmPurchaseRequest
		Expect(dv.DecodeAndValidateJSONPayload(req, &target)).To(Succeed())
		Expect(target.TxHash).To(Equal(validTxHash))
	})

	It("should reject unknown fields", func() {
		body := `{"txHash": "` + validTxHash + `", "bogus": true}`
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(body))

		var target payload.ConfirmPurchaseRequest
		err := dv.DecodeAndValidateJSONPayload(req, &target)
		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("should surface validation failures", func() {
		body := `{"txHash": "not-a-hash"}`
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(body))

		var target payload.ConfirmPurchaseRequest
		err := dv.DecodeAndValidateJSONPayload(req, &target)
		Expect(err).To(MatchError(ContainSubstring("validating payload")))
	})
})

var _ = Describe("SubmitPurchaseRequest", func() {
	valid := func() payload.SubmitPurchaseRequest {
		return payload.SubmitPurchaseRequest{
			TxHash:        validTxHash,
			WalletAddress: validAddress,
			Lands:         []payload.LandRef{{X: 0, Y: 100}},
			TotalPrice:    1.5,
		}
	}

	It("should accept a complete submission", func() {
		Expect(valid().Validate()).To(Succeed())
	})

	It("should reject a malformed tx hash", func() {
		req := valid()
		req.TxHash = "0x1234"
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("should reject a malformed wallet address", func() {
		req := valid()
		req.WalletAddress = "vitalik.eth"
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("should reject an empty basket", func() {
		req := valid()
		req.Lands = nil
		Expect(req.Validate()).NotTo(Succeed())
	})

	When("checkOnly is set", func() {
		It("should only require the lands", func() {
			req := payload.SubmitPurchaseRequest{
				CheckOnly: true,
				Lands:     []payload.LandRef{{X: 0, Y: 0}},
			}
			Expect(req.Validate()).To(Succeed())
		})
	})

	Describe("ToSubmitRequest", func() {
		It("should lower-case the tx hash and wallet", func() {
			req := valid()
			req.TxHash = strings.ToUpper(validTxHash)
			req.WalletAddress = "0x1111111111111111111111111111111111111111"

			out := req.ToSubmitRequest()
			Expect(out.TxHash).To(Equal(strings.ToLower(req.TxHash)))
			Expect(out.WalletAddress).To(Equal(validAddress))
			Expect(out.Parcels).To(HaveLen(1))
			Expect(out.Parcels[0].Y).To(Equal(100))
		})
	})
})

var _ = Describe("ClaimItemRequest", func() {
	valid := func() payload.ClaimItemRequest {
		return payload.ClaimItemRequest{
			ItemID:    "item-1",
			Signature: validSignature,
			Timestamp: 1700000000,
		}
	}

	It("should accept a complete claim", func() {
		Expect(valid().Validate()).To(Succeed())
	})

	It("should reject a missing signature", func() {
		req := valid()
		req.Signature = ""
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("should reject a short signature", func() {
		req := valid()
		req.Signature = "0xabcd"
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("should reject a missing timestamp", func() {
		req := valid()
		req.Timestamp = 0
		Expect(req.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("CreateDropRequest", func() {
	valid := func() payload.CreateDropRequest {
		return payload.CreateDropRequest{
			Amount:        5,
			TokenContract: validAddress,
			TokenSymbol:   "USDT",
			TokenDecimals: 6,
		}
	}

	It("should accept a complete drop request", func() {
		Expect(valid().Validate()).To(Succeed())
	})

	It("should reject a malformed token contract", func() {
		req := valid()
		req.TokenContract = "usdt"
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("should reject an over-long symbol", func() {
		req := valid()
		req.TokenSymbol = strings.Repeat("A", 21)
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("should reject absurd decimals", func() {
		req := valid()
		req.TokenDecimals = 40
		Expect(req.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("UpdateParcelsRequest", func() {
	intPtr := func(v int) *int { return &v }

	valid := func() payload.UpdateParcelsRequest {
		return payload.UpdateParcelsRequest{
			Signature: validSignature,
			Timestamp: 1700000000,
			Text:      "hello",
			X:         intPtr(100),
			Y:         intPtr(200),
		}
	}

	It("should accept a single-parcel edit", func() {
		Expect(valid().Validate()).To(Succeed())
	})

	It("should accept a batch edit", func() {
		req := valid()
		req.X = nil
		req.Y = nil
		req.Lands = []payload.ParcelEditRef{{X: 0, Y: 0}, {X: 100, Y: 0}}
		Expect(req.Validate()).To(Succeed())
	})

	It("should reject a request with both single and batch targets", func() {
		req := valid()
		req.Lands = []payload.ParcelEditRef{{X: 0, Y: 0}}
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("should reject a request with no target at all", func() {
		req := valid()
		req.X = nil
		req.Y = nil
		Expect(req.Validate()).NotTo(Succeed())
	})

	Describe("ToUpdateRequest", func() {
		It("should map a single edit", func() {
			req := valid()
			req.Image = "https://img.example/a.png"

			out := req.ToUpdateRequest()
			Expect(out.Single).NotTo(BeNil())
			Expect(out.Single.X).To(Equal(100))
			Expect(out.Single.Y).To(Equal(200))
			Expect(out.Single.Image).To(Equal("https://img.example/a.png"))
			Expect(out.Batch).To(BeEmpty())
		})

		It("should map a batch edit", func() {
			req := valid()
			req.X = nil
			req.Y = nil
			req.Lands = []payload.ParcelEditRef{{X: 0, Y: 0, RemoveImage: true}, {X: 100, Y: 0}}

			out := req.ToUpdateRequest()
			Expect(out.Single).To(BeNil())
			Expect(out.Batch).To(HaveLen(2))
			Expect(out.Batch[0].RemoveImage).To(BeTrue())
		})
	})
})
