// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"crypto/x509"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// HashAlgorithm names a digest used by the primitives.
type HashAlgorithm string

const (
	SHA1   HashAlgorithm = "sha1"
	SHA256 HashAlgorithm = "sha256"
	SHA512 HashAlgorithm = "sha512"
)

func (a HashAlgorithm) new() (func() hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case SHA512:
		return sha512.New, nil
	}
	return nil, fmt.Errorf("%w: hash algorithm %q", ErrUnsupportedEncoding, string(a))
}

const argon2KeyLength = 32

// cryptoFunctionService is the default [CryptoFunctionService] built on
// crypto/* and golang.org/x/crypto.
type cryptoFunctionService struct {
	random io.Reader
}

// NewCryptoFunctionService constructs a [CryptoFunctionService] reading
// randomness from crypto/rand.
func NewCryptoFunctionService() CryptoFunctionService {
	return &cryptoFunctionService{random: rand.Reader}
}

func (c *cryptoFunctionService) Pbkdf2(password, salt []byte, alg HashAlgorithm, iterations, keyLen int) ([]byte, error) {
	h, err := alg.new()
	if err != nil {
		return nil, err
	}
	if iterations < 1 || keyLen < 1 {
		return nil, fmt.Errorf("%w: pbkdf2 needs positive iterations and key length", ErrPrecondition)
	}

	return pbkdf2.Key(password, salt, iterations, keyLen, h), nil
}

func (c *cryptoFunctionService) Argon2(password, salt []byte, iterations, memoryKiB uint32, parallelism uint8) ([]byte, error) {
	if iterations < 1 || memoryKiB < 1 || parallelism < 1 {
		return nil, fmt.Errorf("%w: argon2 parameters must be positive", ErrPrecondition)
	}

	return argon2.IDKey(password, salt, iterations, memoryKiB, parallelism, argon2KeyLength), nil
}

func (c *cryptoFunctionService) Hkdf(ikm, salt, info []byte, outputSize int, alg HashAlgorithm) ([]byte, error) {
	h, err := alg.new()
	if err != nil {
		return nil, err
	}

	out := make([]byte, outputSize)
	if _, err := io.ReadFull(hkdf.New(h, ikm, salt, info), out); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return out, nil
}

func (c *cryptoFunctionService) HkdfExpand(prk, info []byte, outputSize int, alg HashAlgorithm) ([]byte, error) {
	h, err := alg.new()
	if err != nil {
		return nil, err
	}
	if len(prk) < h().Size() {
		return nil, fmt.Errorf("%w: prk must be at least %d bytes", ErrPrecondition, h().Size())
	}

	out := make([]byte, outputSize)
	if _, err := io.ReadFull(hkdf.Expand(h, prk, info), out); err != nil {
		return nil, fmt.Errorf("hkdf expand: %w", err)
	}
	return out, nil
}

func (c *cryptoFunctionService) Hash(value []byte, alg HashAlgorithm) ([]byte, error) {
	h, err := alg.new()
	if err != nil {
		return nil, err
	}

	d := h()
	d.Write(value)
	return d.Sum(nil), nil
}

func (c *cryptoFunctionService) Hmac(value, key []byte, alg HashAlgorithm) ([]byte, error) {
	h, err := alg.new()
	if err != nil {
		return nil, err
	}

	m := hmac.New(h, key)
	m.Write(value)
	return m.Sum(nil), nil
}

func (c *cryptoFunctionService) Compare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

func (c *cryptoFunctionService) AesEncrypt(data, iv, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("%w: iv must be %d bytes", ErrPrecondition, block.BlockSize())
	}

	padded := pkcs7Pad(data, block.BlockSize())
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

func (c *cryptoFunctionService) AesDecrypt(data, iv, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("%w: iv must be %d bytes", ErrMalformedEnvelope, block.BlockSize())
	}
	if len(data) == 0 || len(data)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrMalformedEnvelope)
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	return pkcs7Unpad(out, block.BlockSize())
}

func (c *cryptoFunctionService) RsaEncrypt(data, publicKey []byte, alg HashAlgorithm) ([]byte, error) {
	h, err := alg.new()
	if err != nil {
		return nil, err
	}

	parsed, err := x509.ParsePKIXPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: parse public key: %w", ErrPrecondition, err)
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not RSA", ErrPrecondition)
	}

	return rsa.EncryptOAEP(h(), c.random, pub, data, nil)
}

func (c *cryptoFunctionService) RsaDecrypt(data, privateKey []byte, alg HashAlgorithm) ([]byte, error) {
	h, err := alg.new()
	if err != nil {
		return nil, err
	}

	priv, err := parseRSAPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	plain, err := rsa.DecryptOAEP(h(), nil, priv, data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: rsa: %w", ErrDecryption, err)
	}
	return plain, nil
}

func (c *cryptoFunctionService) RsaExtractPublicKey(privateKey []byte) ([]byte, error) {
	priv, err := parseRSAPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	return x509.MarshalPKIXPublicKey(&priv.PublicKey)
}

func (c *cryptoFunctionService) RsaGenerateKeyPair(bits int) ([]byte, []byte, error) {
	priv, err := rsa.GenerateKey(c.random, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("generate rsa key: %w", err)
	}

	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal public key: %w", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal private key: %w", err)
	}

	return pub, der, nil
}

func (c *cryptoFunctionService) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(c.random, b); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	return b, nil
}

func parseRSAPrivateKey(der []byte) (*rsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %w", ErrDecryption, err)
	}
	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not RSA", ErrDecryption)
	}
	return priv, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
