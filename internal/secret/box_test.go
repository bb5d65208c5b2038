package secret_test

import (
	"encoding/base64"

	"landgrid/internal/secret"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Box", func() {
	var box *secret.Box

	BeforeEach(func() {
		box = secret.NewBox("unit-test-encryption-key")
	})

	Describe("Encrypt", func() {
		It("should round-trip the plaintext", func() {
			encrypted, err := box.Encrypt("0xdeadbeefcafe")
			Expect(err).NotTo(HaveOccurred())

			decrypted, err := box.Decrypt(encrypted)
			Expect(err).NotTo(HaveOccurred())
			Expect(decrypted).To(Equal("0xdeadbeefcafe"))
		})

		It("should produce a different ciphertext for each call", func() {
			first, err := box.Encrypt("same plaintext")
			Expect(err).NotTo(HaveOccurred())
			second, err := box.Encrypt("same plaintext")
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})

		It("should handle an empty plaintext", func() {
			encrypted, err := box.Encrypt("")
			Expect(err).NotTo(HaveOccurred())

			decrypted, err := box.Decrypt(encrypted)
			Expect(err).NotTo(HaveOccurred())
			Expect(decrypted).To(Equal(""))
		})
	})

	Describe("Decrypt", func() {
		When("the payload is not base64", func() {
			It("should return a decrypt error", func() {
				_, err := box.Decrypt("not-base64!!!")
				Expect(err).To(MatchError(secret.ErrDecryptFailed))
			})
		})

		When("the payload is too short to hold an IV and a block", func() {
			It("should return a decrypt error", func() {
				short := base64.StdEncoding.EncodeToString(make([]byte, 16))
				_, err := box.Decrypt(short)
				Expect(err).To(MatchError(secret.ErrDecryptFailed))
			})
		})

		When("the payload is tampered with", func() {
			It("should return a decrypt error", func() {
				encrypted, err := box.Encrypt("sensitive key material")
				Expect(err).NotTo(HaveOccurred())

				raw, err := base64.StdEncoding.DecodeString(encrypted)
				Expect(err).NotTo(HaveOccurred())
				raw[len(raw)-1] ^= 0xff
				_, err = box.Decrypt(base64.StdEncoding.EncodeToString(raw))
				Expect(err).To(MatchError(secret.ErrDecryptFailed))
			})
		})

		When("a different key is used", func() {
			It("should not reveal the plaintext", func() {
				encrypted, err := box.Encrypt("sensitive key material")
				Expect(err).NotTo(HaveOccurred())

				other := secret.NewBox("another-key")
				decrypted, err := other.Decrypt(encrypted)
				if err == nil {
					Expect(decrypted).NotTo(Equal("sensitive key material"))
				} else {
					Expect(err).To(MatchError(secret.ErrDecryptFailed))
				}
			})
		})
	})
})
