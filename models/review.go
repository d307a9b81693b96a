package models

import "time"

// Review is a piece of text an account wrote about a restaurant.
type Review struct {
	ID           int64     `json:"id"`
	AccountID    int64     `json:"-"`
	RestaurantID int64     `json:"restaurantId"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}

// ReviewSummary is one row of an account's own review listing, joined with
// the reviewed restaurant.
type ReviewSummary struct {
	ID             int64     `json:"id"`
	RestaurantID   int64     `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`

	// Label is the restaurant's first label. A restaurant without labels
	// yields an explicit null.
	Label *string `json:"label"`
}

// RestaurantReview is one row of a restaurant's review listing, joined with
// the author's public identity.
type RestaurantReview struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Nickname  string    `json:"nickname"`
	Tag       Tag       `json:"tag"`
}
