package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/models"
)

// accountRepository is the SQL implementation of [AccountRepository] over
// the "accounts" table.
//
// Username and tag uniqueness are enforced by table constraints, so a
// concurrent duplicate insert fails in the database rather than slipping
// past an application-level pre-check.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.find(ctx, sq.Eq{"username": username}, "*accountRepository.FindByUsername")
}

func (r *accountRepository) FindByID(ctx context.Context, id int64) (models.Account, error) {
	return r.find(ctx, sq.Eq{"id": id}, "*accountRepository.FindByID")
}

func (r *accountRepository) find(ctx context.Context, where sq.Eq, funcName string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(r.db.builder(), where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding account")
		return models.Account{}, r.db.classify(err, ErrExecutingQuery)
	}

	return account, nil
}

// Create persists a new account and returns it with the storage-assigned id.
//
// Error handling:
//   - username constraint violation → [ErrDuplicateUsername].
//   - tag constraint violation → [ErrTagTaken].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.CreatedAt.IsZero() {
		account.CreatedAt = r.now().UTC()
	}

	query, args, err := buildCreateAccountQuery(r.db.builder(), account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		err = r.db.classify(err, ErrExecutingQuery)
		log.Err(err).
			Str("func", "*accountRepository.Create").
			Str("username", account.Username).
			Stringer("tag", account.Tag).
			Msg("error creating account")
		return models.Account{}, err
	}

	return account, nil
}

func (r *accountRepository) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNicknameQuery(r.db.builder(), id, nickname)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateNickname").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateNickname").Int64("account_id", id).Msg("error updating nickname")
		return err
	}

	if affected > 0 {
		return nil
	}

	// nothing changed: tell a missing account from an unchanged nickname
	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAccountNotFound
	}

	return ErrNoOpUpdate
}

func (r *accountRepository) UpdateIcon(ctx context.Context, id int64, iconURL string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateIconQuery(r.db.builder(), id, iconURL)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateIcon").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateIcon").Int64("account_id", id).Msg("error updating icon")
		return err
	}

	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := buildAccountExistsQuery(r.db.builder(), id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryExists(ctx, r.db, query, args...)
}

func (r *accountRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, r.db.classify(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.Nickname,
		&account.Tag,
		&account.ProfileIcon,
		&account.CreatedAt,
	)

	return account, err
}

// queryExists runs a "SELECT 1 ..." query and reports whether it matched.
func queryExists(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, query string, args ...any) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
