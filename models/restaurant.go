package models

// MenuItem is a single dish on a restaurant menu.
type MenuItem struct {
	Name     string  `json:"name"`
	Price    string  `json:"price"`
	PhotoURL *string `json:"photoUrl"`
}

// Restaurant is the detail view of a restaurant.
//
// Labels keep their storage order; the first one is used as the
// representative label in review listings.
type Restaurant struct {
	ID      int64      `json:"restaurantId"`
	Name    string     `json:"name"`
	Labels  []string   `json:"labels"`
	Menu    []MenuItem `json:"menu"`
	Address string     `json:"address"`
	Hours   string     `json:"hours"`
	Phone   string     `json:"phone"`

	// IsScraped reports whether the viewing account bookmarked the
	// restaurant. Always false for anonymous viewers.
	IsScraped bool `json:"isScraped"`
}

// TableName returns the name of the database table
// associated with the Restaurant model.
func (r Restaurant) TableName() string {
	return "restaurants"
}
