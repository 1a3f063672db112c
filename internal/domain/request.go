package domain

// Swap request statuses. Pending is the only non-terminal state.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestDeclined = "declined"
)

type SwapRequest struct {
	ID          string `db:"id" json:"id"`
	ItemID      string `db:"item_id" json:"itemId"`
	FromUserID  string `db:"from_user_id" json:"fromUserId"`
	ToUserID    string `db:"to_user_id" json:"toUserId"`
	Status      string `db:"status" json:"status"`
	RequestedAt string `db:"requested_at" json:"requestedAt"`
}

// ValidDecision reports whether s is a terminal decision an owner may apply.
func ValidDecision(s string) bool {
	return s == RequestAccepted || s == RequestDeclined
}
