package service

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
)

// keySession holds the decrypted keys of one user. The session owns every key
// it holds: setters store copies and getters hand out copies, so destroying
// the session never wipes a key a caller is still using.
//
// A nil map means the keys have not been loaded yet, an empty map that there
// are none. Keys derived from the User Key are cached only while the User Key
// is held.
type keySession struct {
	mu sync.Mutex
	// dropped is set once the session was removed by a lock or logout.
	// Loads that started before must not repopulate it.
	dropped bool

	masterKey  *crypto.SymmetricCryptoKey
	userKey    *crypto.SymmetricCryptoKey
	privateKey []byte
	publicKey  []byte

	orgKeys      map[string]*crypto.SymmetricCryptoKey
	providerKeys map[string]*crypto.SymmetricCryptoKey
}

var errSessionDropped = fmt.Errorf("%w: keys were locked while loading", crypto.ErrNoKey)

func (s *keySession) masterKeyCopy() (*crypto.SymmetricCryptoKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.masterKey == nil {
		return nil, crypto.ErrNoKey
	}
	return s.masterKey.Clone()
}

func (s *keySession) hasMasterKey() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.masterKey != nil
}

func (s *keySession) setMasterKey(key *crypto.SymmetricCryptoKey) error {
	owned, err := key.Clone()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dropped {
		owned.Destroy()
		return errSessionDropped
	}
	destroyKey(s.masterKey)
	s.masterKey = owned
	return nil
}

// userKeyCopy returns a copy of the User Key, or nil when it is not loaded.
func (s *keySession) userKeyCopy() (*crypto.SymmetricCryptoKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userKey == nil {
		return nil, nil
	}
	return s.userKey.Clone()
}

func (s *keySession) hasUserKey() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userKey != nil
}

// setUserKey stores a copy of key. Everything decrypted with the previous
// User Key is dropped with it.
func (s *keySession) setUserKey(key *crypto.SymmetricCryptoKey) error {
	owned, err := key.Clone()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dropped {
		owned.Destroy()
		return errSessionDropped
	}
	destroyKey(s.userKey)
	s.userKey = owned
	s.clearDerivedLocked()
	return nil
}

func (s *keySession) privateKeyCopy() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return bytes.Clone(s.privateKey)
}

func (s *keySession) publicKeyCopy() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return bytes.Clone(s.publicKey)
}

// cachePrivateKey keeps a copy of privateKey while the session is unlocked.
func (s *keySession) cachePrivateKey(privateKey []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unlockedLocked() {
		memguard.WipeBytes(s.privateKey)
		s.privateKey = bytes.Clone(privateKey)
	}
}

func (s *keySession) cachePublicKey(publicKey []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unlockedLocked() {
		s.publicKey = bytes.Clone(publicKey)
	}
}

// orgKeysCopy returns copies of the cached organization keys, or nil when
// they are not loaded.
func (s *keySession) orgKeysCopy() (map[string]*crypto.SymmetricCryptoKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orgKeys == nil {
		return nil, nil
	}
	return cloneKeys(s.orgKeys)
}

// cacheOrgKeys takes ownership of copies of keys while the session is
// unlocked.
func (s *keySession) cacheOrgKeys(keys map[string]*crypto.SymmetricCryptoKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlockedLocked() {
		return
	}
	owned, err := cloneKeys(keys)
	if err != nil {
		return
	}
	destroyKeys(s.orgKeys)
	s.orgKeys = owned
}

func (s *keySession) providerKeysCopy() (map[string]*crypto.SymmetricCryptoKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.providerKeys == nil {
		return nil, nil
	}
	return cloneKeys(s.providerKeys)
}

func (s *keySession) cacheProviderKeys(keys map[string]*crypto.SymmetricCryptoKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlockedLocked() {
		return
	}
	owned, err := cloneKeys(keys)
	if err != nil {
		return
	}
	destroyKeys(s.providerKeys)
	s.providerKeys = owned
}

func (s *keySession) unlockedLocked() bool {
	return !s.dropped && s.userKey != nil
}

func (s *keySession) clearMasterKey() {
	s.mu.Lock()
	defer s.mu.Unlock()

	destroyKey(s.masterKey)
	s.masterKey = nil
}

func (s *keySession) clearUserKey() {
	s.mu.Lock()
	defer s.mu.Unlock()

	destroyKey(s.userKey)
	s.userKey = nil
	s.clearDerivedLocked()
}

func (s *keySession) clearKeyPair() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearKeyPairLocked()
}

func (s *keySession) clearOrgKeys() {
	s.mu.Lock()
	defer s.mu.Unlock()

	destroyKeys(s.orgKeys)
	s.orgKeys = nil
}

func (s *keySession) clearProviderKeys() {
	s.mu.Lock()
	defer s.mu.Unlock()

	destroyKeys(s.providerKeys)
	s.providerKeys = nil
	// provider organization keys depend on the provider keys
	destroyKeys(s.orgKeys)
	s.orgKeys = nil
}

func (s *keySession) clearKeyPairLocked() {
	memguard.WipeBytes(s.privateKey)
	s.privateKey = nil
	s.publicKey = nil
}

// clearDerivedLocked drops every key decrypted with the User Key.
func (s *keySession) clearDerivedLocked() {
	s.clearKeyPairLocked()
	destroyKeys(s.orgKeys)
	s.orgKeys = nil
	destroyKeys(s.providerKeys)
	s.providerKeys = nil
}

// destroy wipes every key held by the session and marks it dropped.
func (s *keySession) destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropped = true
	destroyKey(s.masterKey)
	s.masterKey = nil
	destroyKey(s.userKey)
	s.userKey = nil
	s.clearDerivedLocked()
}

func destroyKey(key *crypto.SymmetricCryptoKey) {
	if key != nil {
		key.Destroy()
	}
}

func destroyKeys(keys map[string]*crypto.SymmetricCryptoKey) {
	for _, key := range keys {
		destroyKey(key)
	}
}

// cloneKeys copies every key so the result can be destroyed independently.
func cloneKeys(keys map[string]*crypto.SymmetricCryptoKey) (map[string]*crypto.SymmetricCryptoKey, error) {
	out := make(map[string]*crypto.SymmetricCryptoKey, len(keys))
	for id, key := range keys {
		cloned, err := key.Clone()
		if err != nil {
			destroyKeys(out)
			return nil, err
		}
		out[id] = cloned
	}
	return out, nil
}
