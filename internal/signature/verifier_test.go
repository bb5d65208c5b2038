package signature_test

import (
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"landgrid/internal/signature"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RecoverSigner", func() {
	var (
		key     *ecdsa.PrivateKey
		wallet  string
		message string
		sig     []byte
	)

	signText := func(msg string, k *ecdsa.PrivateKey) []byte {
		digest := accounts.TextHash([]byte(msg))
		raw, err := crypto.Sign(digest, k)
		Expect(err).NotTo(HaveOccurred())
		return raw
	}

	BeforeEach(func() {
		var err error
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		wallet = strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

		message = signature.ClaimMessage("item-1", 1700000000)
		sig = signText(message, key)
	})

	When("the signature uses a raw recovery id", func() {
		It("should recover the signer's lower-cased address", func() {
			recovered, err := signature.RecoverSigner(message, hexutil.Encode(sig))
			Expect(err).NotTo(HaveOccurred())
			Expect(recovered).To(Equal(wallet))
		})
	})

	When("the signature uses a 27-offset recovery id", func() {
		It("should normalize the id and recover the signer", func() {
			sig[64] += 27
			recovered, err := signature.RecoverSigner(message, hexutil.Encode(sig))
			Expect(err).NotTo(HaveOccurred())
			Expect(recovered).To(Equal(wallet))
		})
	})

	When("the signature has no 0x prefix", func() {
		It("should still recover the signer", func() {
			recovered, err := signature.RecoverSigner(message, hex.EncodeToString(sig))
			Expect(err).NotTo(HaveOccurred())
			Expect(recovered).To(Equal(wallet))
		})
	})

	When("the message differs from the signed one", func() {
		It("should recover a different address", func() {
			recovered, err := signature.RecoverSigner(signature.ClaimMessage("item-2", 1700000000), hexutil.Encode(sig))
			Expect(err).NotTo(HaveOccurred())
			Expect(recovered).NotTo(Equal(wallet))
		})
	})

	When("the signature has the wrong length", func() {
		It("should return an invalid signature error", func() {
			_, err := signature.RecoverSigner(message, "0xdeadbeef")
			Expect(err).To(MatchError(signature.ErrInvalidSignature))
		})
	})

	When("the signature is not hex", func() {
		It("should return an invalid signature error", func() {
			bad := "0x" + strings.Repeat("zz", 65)
			_, err := signature.RecoverSigner(message, bad)
			Expect(err).To(MatchError(signature.ErrInvalidSignature))
		})
	})

	When("the recovery id is out of range after normalization", func() {
		It("should reject the signature instead of clamping the id", func() {
			sig[64] = 32 // normalizes to 5
			_, err := signature.RecoverSigner(message, hexutil.Encode(sig))
			Expect(err).To(MatchError(signature.ErrInvalidSignature))
		})

		It("should reject ids between 4 and 26", func() {
			sig[64] = 4
			_, err := signature.RecoverSigner(message, hexutil.Encode(sig))
			Expect(err).To(MatchError(signature.ErrInvalidSignature))
		})
	})
})
