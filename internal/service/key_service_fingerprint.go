package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/google/uuid"
	"github.com/sethvargo/go-diceware/diceware"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
)

// fingerprintEntropy is the minimum entropy in bits of a fingerprint phrase.
const fingerprintEntropy = 64

var errFingerprintEntropy = errors.New("hash is too short for the fingerprint phrase")

// Fingerprint implements [KeyService]. The phrase is derived from the
// SHA-256 of the public key, expanded with material as HKDF info. Without
// publicKey the user's own public key is used.
func (s *keyService) Fingerprint(ctx context.Context, userID uuid.UUID, material string, publicKey []byte) ([]string, error) {
	if material == "" {
		return nil, fmt.Errorf("%w: fingerprint material is required", crypto.ErrPrecondition)
	}
	if len(publicKey) == 0 {
		var err error
		if publicKey, err = s.GetPublicKey(ctx, userID); err != nil {
			return nil, err
		}
	}

	keyFingerprint, err := s.fn.Hash(publicKey, crypto.SHA256)
	if err != nil {
		return nil, err
	}
	userFingerprint, err := s.fn.HkdfExpand(keyFingerprint, []byte(material), 32, crypto.SHA256)
	if err != nil {
		return nil, err
	}
	return hashPhrase(userFingerprint, diceware.WordListEffLarge(), fingerprintEntropy)
}

// hashPhrase maps hash onto words of list, least significant word first.
func hashPhrase(hash []byte, list diceware.WordList, minimumEntropy int) ([]string, error) {
	size := wordListSize(list)
	entropyPerWord := math.Log2(float64(size))
	numWords := int(math.Ceil(float64(minimumEntropy) / entropyPerWord))

	if float64(numWords)*entropyPerWord > float64(len(hash)*4) {
		return nil, errFingerprintEntropy
	}

	n := new(big.Int).SetBytes(hash)
	divisor := big.NewInt(int64(size))
	remainder := new(big.Int)

	phrase := make([]string, 0, numWords)
	for range numWords {
		n.DivMod(n, divisor, remainder)
		phrase = append(phrase, list.WordAt(rollForIndex(int(remainder.Int64()), list.Digits())))
	}
	return phrase, nil
}

// wordListSize is the number of words of a list indexed by dice rolls.
func wordListSize(list diceware.WordList) int {
	size := 1
	for range list.Digits() {
		size *= 6
	}
	return size
}

// rollForIndex turns the zero based position of a word into the dice roll
// the list is keyed by, e.g. 0 -> 11111 and 7775 -> 66666.
func rollForIndex(index, digits int) int {
	roll, place := 0, 1
	for range digits {
		roll += (index%6 + 1) * place
		index /= 6
		place *= 10
	}
	return roll
}
