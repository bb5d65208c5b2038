package signature

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidSignature error = errors.New("invalid signature")

// RecoverSigner recovers the lower-cased address that produced a
// personal-sign signature over message. The signature is the 65-byte
// (r, s, v) tuple hex-encoded, with or without the 0x prefix.
//
// MetaMask-style recovery ids (27/28) are normalized by subtracting 27. Any
// id still outside the 0..3 range is rejected rather than clamped, since a
// malformed id would otherwise recover to an unrelated address.
func RecoverSigner(message, sig string) (string, error) {
	raw := strings.TrimPrefix(sig, "0x")
	if len(raw) != 130 {
		return "", ErrInvalidSignature
	}

	sigBytes, err := hex.DecodeString(raw)
	if err != nil {
		return "", ErrInvalidSignature
	}

	v := sigBytes[64]
	if v >= 27 {
		v -= 27
	}
	if v > 3 {
		return "", ErrInvalidSignature
	}
	sigBytes[64] = v

	digest := accounts.TextHash([]byte(message))

	pubKey, err := crypto.SigToPub(digest, sigBytes)
	if err != nil {
		return "", ErrInvalidSignature
	}

	return strings.ToLower(crypto.PubkeyToAddress(*pubKey).Hex()), nil
}
