package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-matjip/internal/pagination"
	"github.com/MKhiriev/go-matjip/models"
)

var accountColumns = []string{
	"id",
	"username",
	"password_hash",
	"nickname",
	"tag_number",
	"profile_icon",
	"created_at",
}

// firstLabelColumn selects the lowest-id label of the review's restaurant,
// NULL when it has none.
const firstLabelColumn = `(SELECT l.label FROM restaurant_labels l WHERE l.restaurant_id = r.restaurant_id ORDER BY l.id LIMIT 1) AS label`

// ── accounts ──────────────────────────────────────────────────────────────────

func buildFindAccountQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(where).
		ToSql()
}

func buildCreateAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.Insert(models.Account{}.TableName()).
		Columns("username", "password_hash", "nickname", "tag_number", "created_at").
		Values(account.Username, account.PasswordHash, account.Nickname, int64(account.Tag), account.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateNicknameQuery only touches the row when the nickname actually
// changes, so zero affected rows means either a missing account or a no-op.
func buildUpdateNicknameQuery(b sq.StatementBuilderType, id int64, nickname string) (string, []any, error) {
	return b.Update(models.Account{}.TableName()).
		Set("nickname", nickname).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"nickname": nickname}).
		ToSql()
}

func buildUpdateIconQuery(b sq.StatementBuilderType, id int64, iconURL string) (string, []any, error) {
	return b.Update(models.Account{}.TableName()).
		Set("profile_icon", iconURL).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildAccountExistsQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("1").
		From(models.Account{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── tag sequence ──────────────────────────────────────────────────────────────

func buildNextTagQuery(b sq.StatementBuilderType, dialect Dialect) (string, []any, error) {
	if dialect == DialectPostgres {
		return b.Select("nextval('account_tag_seq')").ToSql()
	}

	return b.Update("tag_sequence").
		Set("value", sq.Expr("value + 1")).
		Where(sq.Eq{"id": 1}).
		Suffix("RETURNING value").
		ToSql()
}

// ── reviews ───────────────────────────────────────────────────────────────────

func buildListAccountReviewsQuery(b sq.StatementBuilderType, accountID int64, cursor pagination.Cursor, limit uint64) (string, []any, error) {
	query := b.Select(
		"r.id",
		"r.restaurant_id",
		"s.name",
		"r.content",
		"r.created_at",
		firstLabelColumn,
	).
		From("reviews r").
		Join("restaurants s ON s.id = r.restaurant_id").
		Where(sq.Eq{"r.account_id": accountID})

	return pagination.Apply(query, "r.id", cursor, limit).ToSql()
}

func buildListRestaurantReviewsQuery(b sq.StatementBuilderType, restaurantID int64, cursor pagination.Cursor, limit uint64) (string, []any, error) {
	query := b.Select(
		"r.id",
		"r.content",
		"r.created_at",
		"a.nickname",
		"a.tag_number",
	).
		From("reviews r").
		Join("accounts a ON a.id = r.account_id").
		Where(sq.Eq{"r.restaurant_id": restaurantID})

	return pagination.Apply(query, "r.id", cursor, limit).ToSql()
}

func buildGetReviewQuery(b sq.StatementBuilderType, accountID, reviewID int64) (string, []any, error) {
	return b.Select("id", "account_id", "restaurant_id", "content", "created_at", "updated_at").
		From(models.Review{}.TableName()).
		Where(sq.Eq{"id": reviewID, "account_id": accountID}).
		ToSql()
}

func buildCreateReviewQuery(b sq.StatementBuilderType, review models.Review) (string, []any, error) {
	return b.Insert(models.Review{}.TableName()).
		Columns("account_id", "restaurant_id", "content", "created_at", "updated_at").
		Values(review.AccountID, review.RestaurantID, review.Content, review.CreatedAt, review.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateReviewQuery(b sq.StatementBuilderType, review models.Review) (string, []any, error) {
	return b.Update(models.Review{}.TableName()).
		Set("content", review.Content).
		Set("updated_at", review.UpdatedAt).
		Where(sq.Eq{"id": review.ID, "account_id": review.AccountID}).
		Where(sq.NotEq{"content": review.Content}).
		ToSql()
}

func buildDeleteReviewQuery(b sq.StatementBuilderType, accountID, reviewID int64) (string, []any, error) {
	return b.Delete(models.Review{}.TableName()).
		Where(sq.Eq{"id": reviewID, "account_id": accountID}).
		ToSql()
}

// ── restaurants ───────────────────────────────────────────────────────────────

func buildGetRestaurantQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("id", "name", "address", "hours", "phone").
		From(models.Restaurant{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildRestaurantLabelsQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("label").
		From("restaurant_labels").
		Where(sq.Eq{"restaurant_id": id}).
		OrderBy("id").
		ToSql()
}

func buildRestaurantMenuQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("name", "price", "photo_url").
		From("menus").
		Where(sq.Eq{"restaurant_id": id}).
		OrderBy("id").
		ToSql()
}

func buildRestaurantExistsQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("1").
		From(models.Restaurant{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildIsScrapedQuery(b sq.StatementBuilderType, accountID, restaurantID int64) (string, []any, error) {
	return b.Select("1").
		From("scraps").
		Where(sq.Eq{"account_id": accountID, "restaurant_id": restaurantID}).
		ToSql()
}

func buildDeleteScrapQuery(b sq.StatementBuilderType, accountID, restaurantID int64) (string, []any, error) {
	return b.Delete("scraps").
		Where(sq.Eq{"account_id": accountID, "restaurant_id": restaurantID}).
		ToSql()
}

func buildInsertScrapQuery(b sq.StatementBuilderType, accountID, restaurantID int64, now time.Time) (string, []any, error) {
	return b.Insert("scraps").
		Columns("account_id", "restaurant_id", "created_at").
		Values(accountID, restaurantID, now).
		ToSql()
}
