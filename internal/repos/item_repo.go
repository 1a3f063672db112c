package repos

import (
	"rewear/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

// Create inserts a new item, stamping the listing time.
func (r *ItemRepo) Create(it *domain.Item) error {
	if it.ListedAt == "" {
		it.ListedAt = now()
	}
	_, err := r.db.Exec(`INSERT INTO items(id,title,category,condition,image_url,user_id,status,listed_at)
	                     VALUES(?,?,?,?,?,?,?,?)`,
		it.ID, it.Title, it.Category, it.Condition, it.ImageURL, it.UserID, it.Status, it.ListedAt)
	return err
}

func (r *ItemRepo) Get(id string) (domain.Item, error) {
	var it domain.Item
	err := r.db.Get(&it, `
	  SELECT id, title, category, condition, image_url, user_id, status,
	         listed_at, COALESCE(updated_at,'') AS updated_at
	  FROM items
	  WHERE id = ?
	`, id)
	return it, err
}

// ItemRow is an item joined with its owner's public fields.
type ItemRow struct {
	ID            string `db:"id"`
	Title         string `db:"title"`
	Category      string `db:"category"`
	Condition     string `db:"condition"`
	ImageURL      string `db:"image_url"`
	Status        string `db:"status"`
	ListedAt      string `db:"listed_at"`
	OwnerID       string `db:"owner_id"`
	OwnerName     string `db:"owner_name"`
	OwnerLocation string `db:"owner_location"`
}

func (r *ItemRepo) ListWithOwners() ([]ItemRow, error) {
	var out []ItemRow
	err := r.db.Select(&out, `
	  SELECT i.id, i.title, i.category, i.condition, i.image_url, i.status, i.listed_at,
	         u.id AS owner_id, u.name AS owner_name, u.location AS owner_location
	  FROM items i
	  JOIN users u ON u.id = i.user_id
	  ORDER BY i.listed_at DESC
	`)
	return out, err
}

func (r *ItemRepo) GetWithOwner(id string) (ItemRow, error) {
	var row ItemRow
	err := r.db.Get(&row, `
	  SELECT i.id, i.title, i.category, i.condition, i.image_url, i.status, i.listed_at,
	         u.id AS owner_id, u.name AS owner_name, u.location AS owner_location
	  FROM items i
	  JOIN users u ON u.id = i.user_id
	  WHERE i.id = ?
	`, id)
	return row, err
}

// SetStatus updates an item's status and returns the refreshed record.
func (r *ItemRepo) SetStatus(id, status string) (domain.Item, error) {
	if _, err := r.db.Exec(`UPDATE items SET status=?, updated_at=? WHERE id=?`,
		status, now(), id); err != nil {
		return domain.Item{}, err
	}
	return r.Get(id)
}
