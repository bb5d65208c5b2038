package signature_test

import (
	"time"

	"landgrid/internal/signature"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Messages", func() {
	Describe("ClaimMessage", func() {
		It("should render the canonical claim template", func() {
			msg := signature.ClaimMessage("abc-123", 1700000000)
			Expect(msg).To(Equal("Claim Item\nID: abc-123\nTime: 1700000000"))
		})
	})

	Describe("ViewKeyMessage", func() {
		It("should render the canonical view-key template", func() {
			msg := signature.ViewKeyMessage("abc-123", 1700000000)
			Expect(msg).To(Equal("View Private Key\nID: abc-123\nTime: 1700000000"))
		})
	})

	Describe("ParcelUpdateMessage", func() {
		It("should render the canonical single-parcel template", func() {
			msg := signature.ParcelUpdateMessage(100, -200, "hello", "https://example.com", "Unchanged", 1700000000)
			Expect(msg).To(Equal("Update Land (100, -200)\nText: hello\nLink: https://example.com\nImage: Unchanged\nTime: 1700000000"))
		})
	})

	Describe("BatchUpdateMessage", func() {
		It("should render the coordinate list in order", func() {
			positions := []signature.Position{{X: 0, Y: 0}, {X: 100, Y: -100}}
			msg := signature.BatchUpdateMessage(positions, "t", "l", 1700000000)
			Expect(msg).To(Equal("Batch Update 2 Lands\n(0,0), (100,-100)\nText: t\nLink: l\nTime: 1700000000"))
		})
	})

	Describe("ValidTimestamp", func() {
		It("should accept the current time", func() {
			Expect(signature.ValidTimestamp(time.Now().Unix())).To(BeTrue())
		})

		It("should accept timestamps within the allowed skew", func() {
			Expect(signature.ValidTimestamp(time.Now().Unix() - 299)).To(BeTrue())
			Expect(signature.ValidTimestamp(time.Now().Unix() + 299)).To(BeTrue())
		})

		It("should reject stale timestamps", func() {
			Expect(signature.ValidTimestamp(time.Now().Unix() - 301)).To(BeFalse())
		})

		It("should reject timestamps too far in the future", func() {
			Expect(signature.ValidTimestamp(time.Now().Unix() + 301)).To(BeFalse())
		})
	})
})
