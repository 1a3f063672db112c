package repos

import (
	"rewear/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,location,points,join_date
	                     FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,location,points,join_date
	                     FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user, stamping the join date.
func (r *UserRepo) Create(u *domain.User) error {
	if u.JoinDate == "" {
		u.JoinDate = now()
	}
	_, err := r.DB.Exec(`INSERT INTO users(id,email,name,password_hash,location,points,join_date)
	                     VALUES(?,?,?,?,?,?,?)`,
		u.ID, u.Email, u.Name, u.Hash, u.Location, u.Points, u.JoinDate)
	return err
}
