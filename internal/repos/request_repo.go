package repos

import (
	"rewear/internal/domain"

	"github.com/jmoiron/sqlx"
)

type RequestRepo struct{ db *sqlx.DB }

func NewRequestRepo(db *sqlx.DB) *RequestRepo { return &RequestRepo{db: db} }

// Create inserts a new swap request, stamping the request time.
func (r *RequestRepo) Create(req *domain.SwapRequest) error {
	if req.RequestedAt == "" {
		req.RequestedAt = now()
	}
	_, err := r.db.Exec(`INSERT INTO swap_requests(id,item_id,from_user_id,to_user_id,status,requested_at)
	                     VALUES(?,?,?,?,?,?)`,
		req.ID, req.ItemID, req.FromUserID, req.ToUserID, req.Status, req.RequestedAt)
	return err
}

func (r *RequestRepo) Get(id string) (domain.SwapRequest, error) {
	var req domain.SwapRequest
	err := r.db.Get(&req, `
	  SELECT id, item_id, from_user_id, to_user_id, status, requested_at
	  FROM swap_requests
	  WHERE id = ?
	`, id)
	return req, err
}

// HasPending reports whether the requester already has a pending request
// against the item.
func (r *RequestRepo) HasPending(itemID, fromUserID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
	  SELECT COUNT(*) FROM swap_requests
	  WHERE item_id=? AND from_user_id=? AND status='pending'
	`, itemID, fromUserID)
	return n > 0, err
}

// Resolve writes the request decision and, when itemStatus is non-empty, the
// referenced item's status in the same transaction. Both writes apply or
// neither does.
func (r *RequestRepo) Resolve(id, decision, itemID, itemStatus string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE swap_requests SET status=? WHERE id=?`, decision, id); err != nil {
		return err
	}
	if itemStatus != "" {
		if _, err := tx.Exec(`UPDATE items SET status=?, updated_at=? WHERE id=?`,
			itemStatus, now(), itemID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SentRow is a request made by a user, joined with the item and its owner.
type SentRow struct {
	ID            string `db:"id"`
	ItemID        string `db:"item_id"`
	Status        string `db:"status"`
	RequestedAt   string `db:"requested_at"`
	ItemTitle     string `db:"item_title"`
	ItemCategory  string `db:"item_category"`
	ItemImageURL  string `db:"item_image_url"`
	ItemStatus    string `db:"item_status"`
	OwnerName     string `db:"owner_name"`
	OwnerLocation string `db:"owner_location"`
}

func (r *RequestRepo) SentBy(userID string) ([]SentRow, error) {
	var out []SentRow
	err := r.db.Select(&out, `
	  SELECT sr.id, sr.item_id, sr.status, sr.requested_at,
	         i.title AS item_title, i.category AS item_category,
	         i.image_url AS item_image_url, i.status AS item_status,
	         u.name AS owner_name, u.location AS owner_location
	  FROM swap_requests sr
	  JOIN items i ON i.id = sr.item_id
	  JOIN users u ON u.id = sr.to_user_id
	  WHERE sr.from_user_id = ?
	  ORDER BY sr.requested_at DESC
	`, userID)
	return out, err
}

// ReceivedRow is a request against a user's item, joined with the item and
// the requester's public profile.
type ReceivedRow struct {
	ID                string `db:"id"`
	ItemID            string `db:"item_id"`
	Status            string `db:"status"`
	RequestedAt       string `db:"requested_at"`
	ItemTitle         string `db:"item_title"`
	ItemCategory      string `db:"item_category"`
	ItemImageURL      string `db:"item_image_url"`
	ItemStatus        string `db:"item_status"`
	RequesterName     string `db:"requester_name"`
	RequesterLocation string `db:"requester_location"`
}

func (r *RequestRepo) ReceivedBy(userID string) ([]ReceivedRow, error) {
	var out []ReceivedRow
	err := r.db.Select(&out, `
	  SELECT sr.id, sr.item_id, sr.status, sr.requested_at,
	         i.title AS item_title, i.category AS item_category,
	         i.image_url AS item_image_url, i.status AS item_status,
	         u.name AS requester_name, u.location AS requester_location
	  FROM swap_requests sr
	  JOIN items i ON i.id = sr.item_id
	  JOIN users u ON u.id = sr.from_user_id
	  WHERE sr.to_user_id = ?
	  ORDER BY sr.requested_at DESC
	`, userID)
	return out, err
}
