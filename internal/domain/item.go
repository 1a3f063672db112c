package domain

// Item statuses.
const (
	ItemAvailable   = "available"
	ItemRequested   = "requested"
	ItemBorrowed    = "borrowed"
	ItemUnavailable = "unavailable"
)

type Item struct {
	ID        string `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	Category  string `db:"category" json:"category"`
	Condition string `db:"condition" json:"condition"`
	ImageURL  string `db:"image_url" json:"imageUrl"`
	UserID    string `db:"user_id" json:"userId"`
	Status    string `db:"status" json:"status"`
	ListedAt  string `db:"listed_at" json:"listedAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

// ValidItemStatus reports whether s is one of the allowed item statuses.
func ValidItemStatus(s string) bool {
	switch s {
	case ItemAvailable, ItemRequested, ItemBorrowed, ItemUnavailable:
		return true
	}
	return false
}
