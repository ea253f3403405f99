package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
)

var (
	// ErrWrongMasterPassword means the password did not unwrap the User Key.
	ErrWrongMasterPassword = fmt.Errorf("%w: wrong master password", crypto.ErrDecryption)

	// ErrSecurityStampChanged means the server rotated the account's security
	// stamp since the last sync. The session must be logged out.
	ErrSecurityStampChanged = errors.New("security stamp changed")

	ErrKdfConfigNotFound       = errors.New("kdf config not found")
	ErrUnlockDataNotFound      = fmt.Errorf("%w: master password unlock data not found", crypto.ErrPrecondition)
	ErrNoActiveAccount         = errors.New("no active account")
	ErrAccountNotFound         = errors.New("account not found")
	ErrAccountDeleted          = errors.New("account deleted on server")
	ErrInvalidAccessToken      = errors.New("invalid access token")
	ErrPrivateKeyNotFound      = fmt.Errorf("%w: private key not found", crypto.ErrNoKey)
	ErrOrganizationKeyNotFound = fmt.Errorf("%w: organization key not found", crypto.ErrNoKey)
	ErrProviderKeyNotFound     = fmt.Errorf("%w: provider key not found", crypto.ErrNoKey)
	ErrPinProtectedKeyNotFound = fmt.Errorf("%w: pin protected user key not found", crypto.ErrNoKey)
	ErrUserIDRequired          = fmt.Errorf("%w: user id is required", crypto.ErrPrecondition)
	ErrMasterPasswordRequired  = fmt.Errorf("%w: master password is required", crypto.ErrPrecondition)
	ErrServerRequestFailed     = errors.New("server request failed")
)
