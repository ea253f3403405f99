// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// EncArrayBuffer is the binary form of an envelope, used for attachments
// and other file payloads:
//
//	type(1) | iv(16) | mac(32) | data      (MAC'd AES-CBC types)
//	type(1) | iv(16) | data                (AesCbc256_B64)
//
// RSA types have no binary form.
type EncArrayBuffer struct {
	buffer         []byte
	encryptionType EncryptionType
	iv             []byte
	mac            []byte
	data           []byte
}

// NewEncArrayBuffer serializes the parts into a binary envelope.
func NewEncArrayBuffer(encType EncryptionType, data, iv, mac []byte) (*EncArrayBuffer, error) {
	if encType.IsRSA() {
		return nil, fmt.Errorf("%w: %s has no binary form", ErrUnsupportedEncoding, encType)
	}
	if err := checkEnvelopeParts(encType, data, iv, mac); err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 1+len(iv)+len(mac)+len(data))
	buf = append(buf, byte(encType))
	buf = append(buf, iv...)
	buf = append(buf, mac...)
	buf = append(buf, data...)

	return ParseEncArrayBuffer(buf)
}

// ParseEncArrayBuffer splits a binary envelope into its parts. The buffer is
// copied.
func ParseEncArrayBuffer(b []byte) (*EncArrayBuffer, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrPrecondition)
	}

	encType := EncryptionType(b[0])
	var macLen int
	switch encType {
	case AesCbc128HmacSha256B64, AesCbc256HmacSha256B64:
		macLen = macLength
	case AesCbc256B64:
		macLen = 0
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncryptionType, b[0])
	}

	minLen := 1 + ivLength + macLen + 1
	if len(b) < minLen {
		return nil, fmt.Errorf("%w: %s buffer is %d bytes, want at least %d",
			ErrMalformedEnvelope, encType, len(b), minLen)
	}

	buf := clone(b)
	e := &EncArrayBuffer{
		buffer:         buf,
		encryptionType: encType,
		iv:             buf[1 : 1+ivLength],
		data:           buf[1+ivLength+macLen:],
	}
	if macLen > 0 {
		e.mac = buf[1+ivLength : 1+ivLength+macLen]
	}

	return e, nil
}

// EncryptionType returns the type tag of the envelope.
func (e *EncArrayBuffer) EncryptionType() EncryptionType { return e.encryptionType }

// IV returns a copy of the initialization vector.
func (e *EncArrayBuffer) IV() []byte { return clone(e.iv) }

// MAC returns a copy of the MAC, nil for AesCbc256_B64.
func (e *EncArrayBuffer) MAC() []byte { return clone(e.mac) }

// Data returns a copy of the ciphertext.
func (e *EncArrayBuffer) Data() []byte { return clone(e.data) }

// Bytes returns a copy of the serialized buffer.
func (e *EncArrayBuffer) Bytes() []byte { return clone(e.buffer) }
