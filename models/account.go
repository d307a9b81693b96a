package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Tag is the per-account discriminator that tells apart accounts sharing the
// same nickname. It is allocated once at registration and never reused.
type Tag int64

// String renders the tag as "#" followed by at least two digits.
// Values of 100 and above keep every digit.
func (t Tag) String() string {
	return fmt.Sprintf("#%02d", int64(t))
}

// MarshalJSON encodes the tag in its display form, e.g. "#07".
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Account is a registered user of the service.
type Account struct {
	// ID is the storage-assigned identifier. Immutable.
	ID int64 `json:"-"`

	// Username is the unique login name. Immutable after creation.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the account password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Nickname is the display name shown next to reviews.
	Nickname string `json:"nickname"`

	// Tag disambiguates accounts with equal nicknames.
	Tag Tag `json:"tag"`

	// ProfileIcon is the public URL of the uploaded icon, nil until the
	// first upload.
	ProfileIcon *string `json:"icon"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Profile is the public projection of an account returned by /me.
type Profile struct {
	Nickname string  `json:"nickname"`
	Icon     *string `json:"icon"`
	Tag      Tag     `json:"tag"`
}

// Profile returns the public projection of the account.
func (a Account) Profile() Profile {
	return Profile{
		Nickname: a.Nickname,
		Icon:     a.ProfileIcon,
		Tag:      a.Tag,
	}
}
