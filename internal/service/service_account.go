package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/metrics"
	"github.com/MKhiriev/go-matjip/internal/store"
	"github.com/MKhiriev/go-matjip/internal/utils"
	"github.com/MKhiriev/go-matjip/internal/validators"
	"github.com/MKhiriev/go-matjip/models"
)

// iconKeyPrefix is the blob store "directory" profile icons are kept under.
const iconKeyPrefix = "profile-icons/"

// accountService implements [AccountService] on top of the account
// directory, the credential hasher, the tag allocator and the token service.
type accountService struct {
	accounts  store.AccountRepository
	icons     store.BlobStore
	hasher    PasswordHasher
	tags      TagAllocator
	tokens    TokenService
	validator validators.Validator
	keys      *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewAccountService wires an [AccountService].
func NewAccountService(
	accounts store.AccountRepository,
	icons store.BlobStore,
	hasher PasswordHasher,
	tags TagAllocator,
	tokens TokenService,
	validator validators.Validator,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		accounts:  accounts,
		icons:     icons,
		hasher:    hasher,
		tags:      tags,
		tokens:    tokens,
		validator: validator,
		keys:      utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Register creates an account with a freshly allocated tag.
//
// The username pre-check only gives a fast answer for the common case; the
// storage unique constraint still decides concurrent registrations, and its
// violation surfaces as [store.ErrDuplicateUsername] as well.
func (s *accountService) Register(ctx context.Context, request models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Account{}, err
	}

	_, err := s.accounts.FindByUsername(ctx, request.Username)
	switch {
	case err == nil:
		return models.Account{}, store.ErrDuplicateUsername
	case !errors.Is(err, store.ErrAccountNotFound):
		log.Err(err).Str("func", "*accountService.Register").Msg("error checking username")
		return models.Account{}, err
	}

	digest, err := s.hasher.Hash(ctx, request.Password)
	if err != nil {
		return models.Account{}, err
	}

	var created models.Account
	_, err = s.tags.Allocate(ctx, func(ctx context.Context, tag models.Tag) error {
		account, err := s.accounts.Create(ctx, models.Account{
			Username:     request.Username,
			PasswordHash: digest,
			Nickname:     strings.TrimSpace(request.Nickname),
			Tag:          tag,
		})
		if err != nil {
			return err
		}

		created = account
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Str("username", request.Username).Msg("registration failed")
		return models.Account{}, err
	}

	log.Info().Int64("account_id", created.ID).Stringer("tag", created.Tag).Msg("account registered")
	return created, nil
}

// Login verifies the credential and issues a session token. An unknown
// username is [store.ErrAccountNotFound], a wrong password [ErrWrongPassword].
func (s *accountService) Login(ctx context.Context, request models.LoginRequest) (models.SessionToken, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.SessionToken{}, err
	}

	account, err := s.accounts.FindByUsername(ctx, request.Username)
	if err != nil {
		return models.SessionToken{}, err
	}

	ok, err := s.hasher.Verify(ctx, request.Password, account.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Login").Int64("account_id", account.ID).Msg("error verifying password")
		return models.SessionToken{}, err
	}
	if !ok {
		log.Info().Str("func", "*accountService.Login").Int64("account_id", account.ID).Msg("wrong password")
		return models.SessionToken{}, ErrWrongPassword
	}

	return s.tokens.Issue(ctx, models.Identity{AccountID: account.ID, Username: account.Username})
}

func (s *accountService) Me(ctx context.Context, accountID int64) (models.Profile, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return models.Profile{}, err
	}

	return account.Profile(), nil
}

func (s *accountService) ChangeNickname(ctx context.Context, accountID int64, request models.NicknameRequest) error {
	if err := s.validator.Validate(ctx, request); err != nil {
		return err
	}

	return s.accounts.UpdateNickname(ctx, accountID, strings.TrimSpace(request.Nickname))
}

// ChangeIcon uploads the icon to the blob store and points the account at
// the returned URL. The account is checked first so that nothing is
// uploaded for an account that no longer exists.
func (s *accountService) ChangeIcon(ctx context.Context, accountID int64, icon models.Icon) (string, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, icon); err != nil {
		return "", err
	}

	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		return "", err
	}

	contentType, ext, ok := validators.IconType(icon.Body)
	if !ok {
		return "", validators.ErrIconNotAnImage
	}

	key := iconKeyPrefix + s.keys.Generate() + ext
	url, err := s.icons.Put(ctx, key, contentType, bytes.NewReader(icon.Body), int64(len(icon.Body)))
	if err != nil {
		metrics.RecordBlobUpload(metrics.StatusError)
		log.Err(err).Str("func", "*accountService.ChangeIcon").Int64("account_id", accountID).Msg("error uploading icon")
		return "", fmt.Errorf("%w: %w", ErrBlobStoreFailure, err)
	}
	metrics.RecordBlobUpload(metrics.StatusSuccess)

	if err = s.accounts.UpdateIcon(ctx, accountID, url); err != nil {
		log.Err(err).Str("func", "*accountService.ChangeIcon").Int64("account_id", accountID).Msg("error saving icon url")
		return "", err
	}

	return url, nil
}
