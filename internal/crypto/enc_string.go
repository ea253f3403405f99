// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// EncString is the text form of an encrypted value:
//
//	<type>.<iv_b64>|<data_b64>|<mac_b64>
//
// RSA types omit the iv, and types without a MAC omit the last segment.
// Values written before type tags existed carry no "<type>." prefix; their
// type is inferred from the number of segments.
type EncString struct {
	encryptedString string
	encryptionType  EncryptionType
	iv              []byte
	data            []byte
	mac             []byte
}

// NewEncString builds an envelope from its parts and serializes it. The
// companions each type requires (iv, mac) are enforced here.
func NewEncString(encType EncryptionType, data, iv, mac []byte) (*EncString, error) {
	if err := checkEnvelopeParts(encType, data, iv, mac); err != nil {
		return nil, err
	}

	e := &EncString{
		encryptionType: encType,
		iv:             clone(iv),
		data:           clone(data),
		mac:            clone(mac),
	}

	pieces := make([]string, 0, 3)
	if encType.HasIV() {
		pieces = append(pieces, base64.StdEncoding.EncodeToString(iv))
	}
	pieces = append(pieces, base64.StdEncoding.EncodeToString(data))
	if encType.HasMAC() {
		pieces = append(pieces, base64.StdEncoding.EncodeToString(mac))
	}
	e.encryptedString = strconv.Itoa(int(encType)) + "." + strings.Join(pieces, "|")

	return e, nil
}

// ParseEncString parses the text form of an envelope. It rejects unknown
// type tags, a wrong number of segments, invalid base64 and an iv that is
// not 16 bytes long.
func ParseEncString(s string) (*EncString, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty encrypted string", ErrPrecondition)
	}

	encType, pieces, err := splitEncString(s)
	if err != nil {
		return nil, err
	}
	if len(pieces) != encType.pieceCount() {
		return nil, fmt.Errorf("%w: %s expects %d pieces, got %d",
			ErrMalformedEnvelope, encType, encType.pieceCount(), len(pieces))
	}

	decoded := make([][]byte, len(pieces))
	for i, p := range pieces {
		b, err := base64.StdEncoding.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d: %w", ErrMalformedEnvelope, i, err)
		}
		decoded[i] = b
	}

	e := &EncString{encryptedString: s, encryptionType: encType}
	idx := 0
	if encType.HasIV() {
		e.iv = decoded[idx]
		idx++
	}
	e.data = decoded[idx]
	idx++
	if encType.HasMAC() {
		e.mac = decoded[idx]
	}

	if len(e.data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrMalformedEnvelope)
	}
	if encType.HasIV() && len(e.iv) != ivLength {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", ErrMalformedEnvelope, len(e.iv), ivLength)
	}
	// The MAC length is checked by the decryptor before any HMAC work so
	// that stored values with non-canonical MAC segments still load.
	if encType.HasMAC() && len(e.mac) == 0 {
		return nil, fmt.Errorf("%w: empty mac", ErrMalformedEnvelope)
	}

	return e, nil
}

// IsEncString reports whether s parses as an envelope.
func IsEncString(s string) bool {
	_, err := ParseEncString(s)
	return err == nil
}

func splitEncString(s string) (EncryptionType, []string, error) {
	headerEnd := strings.IndexByte(s, '.')
	if headerEnd < 0 {
		pieces := strings.Split(s, "|")
		switch len(pieces) {
		case 3:
			return AesCbc128HmacSha256B64, pieces, nil
		case 2:
			return AesCbc256B64, pieces, nil
		case 1:
			return Rsa2048OaepSha256B64, pieces, nil
		}
		return 0, nil, fmt.Errorf("%w: cannot infer type from %d pieces", ErrMalformedEnvelope, len(pieces))
	}

	n, err := strconv.ParseUint(s[:headerEnd], 10, 8)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %q", ErrUnknownEncryptionType, s[:headerEnd])
	}
	encType := EncryptionType(n)
	if !encType.Valid() {
		return 0, nil, fmt.Errorf("%w: %d", ErrUnknownEncryptionType, n)
	}

	return encType, strings.Split(s[headerEnd+1:], "|"), nil
}

func checkEnvelopeParts(encType EncryptionType, data, iv, mac []byte) error {
	if !encType.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownEncryptionType, encType)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: data is required", ErrPrecondition)
	}

	switch {
	case encType.HasIV() && len(iv) != ivLength:
		return fmt.Errorf("%w: %s requires a %d byte iv", ErrPrecondition, encType, ivLength)
	case !encType.HasIV() && iv != nil:
		return fmt.Errorf("%w: %s does not take an iv", ErrPrecondition, encType)
	case encType.HasMAC() && len(mac) != macLength:
		return fmt.Errorf("%w: %s requires a %d byte mac", ErrPrecondition, encType, macLength)
	case !encType.HasMAC() && mac != nil:
		return fmt.Errorf("%w: %s does not take a mac", ErrPrecondition, encType)
	}

	return nil
}

// EncryptionType returns the type tag of the envelope.
func (e *EncString) EncryptionType() EncryptionType { return e.encryptionType }

// IV returns a copy of the initialization vector, nil for RSA types.
func (e *EncString) IV() []byte { return clone(e.iv) }

// Data returns a copy of the ciphertext.
func (e *EncString) Data() []byte { return clone(e.data) }

// MAC returns a copy of the MAC, nil for types without one.
func (e *EncString) MAC() []byte { return clone(e.mac) }

// String returns the serialized envelope exactly as parsed or built.
func (e *EncString) String() string {
	if e == nil {
		return ""
	}
	return e.encryptedString
}

// MarshalJSON encodes the envelope as a JSON string.
func (e *EncString) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.encryptedString)
}

// UnmarshalJSON decodes and parses a JSON string envelope.
func (e *EncString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseEncString(s)
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}

// Decrypt decrypts the envelope to a UTF-8 string.
//
// When key is nil it is resolved through resolver for the given user and
// organization; a resolution failure returns [ErrNoKey]. A decryption failure
// returns [DecryptErrorValue] together with the typed error, so callers that
// only display the value can ignore the error while others can tell a wrong
// key ([ErrMacMismatch]) from corrupted data.
func (e *EncString) Decrypt(
	ctx context.Context,
	encryptService EncryptService,
	key *SymmetricCryptoKey,
	resolver KeyResolver,
	userID uuid.UUID,
	orgID string,
) (string, error) {
	if key == nil {
		if resolver == nil {
			return "", ErrNoKey
		}

		resolved, err := resolver.ResolveKey(ctx, userID, orgID)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoKey, err)
		}
		if resolved == nil {
			return "", ErrNoKey
		}
		key = resolved
	}

	plain, err := encryptService.Decrypt(e, key)
	if err != nil {
		return DecryptErrorValue, err
	}

	return string(plain), nil
}
