package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/adapter"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
	"github.com/MKhiriev/go-pass-keycore/internal/utils"
	"github.com/MKhiriev/go-pass-keycore/models"
)

type accountService struct {
	state   *store.StateProvider
	adapter adapter.ServerAdapter
}

// NewAccountService returns an [AccountService]. The access token of the
// active account is handed to serverAdapter.
func NewAccountService(state *store.StateProvider, serverAdapter adapter.ServerAdapter) AccountService {
	return &accountService{state: state, adapter: serverAdapter}
}

func (a *accountService) SetActiveAccountFromToken(ctx context.Context, accessToken string) (models.AccountInfo, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ParseAccessTokenClaims(accessToken)
	if err != nil {
		log.Err(err).Str("func", "*accountService.SetActiveAccountFromToken").Msg("error parsing access token")
		return models.AccountInfo{}, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}
	account, err := claims.Account()
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}
	if account.UserID == uuid.Nil {
		return models.AccountInfo{}, fmt.Errorf("%w: subject is the nil user id", ErrInvalidAccessToken)
	}

	if err = store.SetJSON(ctx, a.state, account.UserID, stateAccount, account); err != nil {
		return models.AccountInfo{}, fmt.Errorf("error storing account: %w", err)
	}
	if err = a.state.Set(ctx, account.UserID, stateAccessToken, accessToken); err != nil {
		return models.AccountInfo{}, fmt.Errorf("error storing access token: %w", err)
	}
	if err = a.state.Set(ctx, uuid.Nil, stateActiveUserID, account.UserID.String()); err != nil {
		return models.AccountInfo{}, fmt.Errorf("error storing active account: %w", err)
	}
	a.adapter.SetToken(accessToken)

	log.Info().Str("func", "*accountService.SetActiveAccountFromToken").Str("user_id", account.UserID.String()).Msg("active account set")
	return account, nil
}

// ActiveAccount implements [AccountService]. The adapter token is restored
// from state when the adapter has none.
func (a *accountService) ActiveAccount(ctx context.Context) (models.AccountInfo, error) {
	raw, err := a.state.Get(ctx, uuid.Nil, stateActiveUserID)
	if errors.Is(err, store.ErrStateNotFound) {
		return models.AccountInfo{}, ErrNoActiveAccount
	}
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("error reading active account: %w", err)
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("error parsing active account id: %w", err)
	}

	account, err := a.Account(ctx, userID)
	if err != nil {
		return models.AccountInfo{}, err
	}

	if a.adapter.Token() == "" {
		if token, err := a.state.Get(ctx, userID, stateAccessToken); err == nil {
			a.adapter.SetToken(token)
		}
	}
	return account, nil
}

func (a *accountService) Account(ctx context.Context, userID uuid.UUID) (models.AccountInfo, error) {
	if userID == uuid.Nil {
		return models.AccountInfo{}, ErrUserIDRequired
	}

	account, err := store.GetJSON[models.AccountInfo](ctx, a.state, userID, stateAccount)
	if errors.Is(err, store.ErrStateNotFound) {
		return models.AccountInfo{}, fmt.Errorf("%w: %s", ErrAccountNotFound, userID)
	}
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("error reading account: %w", err)
	}
	return account, nil
}

func (a *accountService) ClearAccount(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUserIDRequired
	}

	err := errors.Join(
		a.state.Delete(ctx, userID, stateAccount),
		a.state.Delete(ctx, userID, stateAccessToken),
	)

	active, getErr := a.state.Get(ctx, uuid.Nil, stateActiveUserID)
	if getErr == nil && active == userID.String() {
		err = errors.Join(err, a.state.Delete(ctx, uuid.Nil, stateActiveUserID))
		a.adapter.SetToken("")
	}
	return err
}
