package domain

type User struct {
	ID       string `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	Name     string `db:"name" json:"name"`
	Hash     string `db:"password_hash" json:"-"`
	Location string `db:"location" json:"location"`
	Points   int    `db:"points" json:"points"`
	JoinDate string `db:"join_date" json:"joinDate"`
}
