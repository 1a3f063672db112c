package services

import (
	"database/sql"
	"errors"

	"rewear/internal/auth"
	"rewear/internal/domain"
	"rewear/internal/repos"
	"rewear/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users  *repos.UserRepo
	Secret string
}

// Profile is the public view of a user, safe to return to callers.
type Profile struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location,omitempty"`
	Points   int    `json:"points"`
	JoinDate string `json:"joinDate,omitempty"`
}

func publicProfile(u *domain.User) Profile {
	return Profile{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Location: u.Location,
		Points:   u.Points,
		JoinDate: u.JoinDate,
	}
}

func (s *AuthService) Signup(name, email, password, location string) (Profile, error) {
	if name == "" || email == "" || password == "" || location == "" {
		return Profile{}, validation("All fields (name, email, password, location) are required")
	}
	email, ok := validate.Email(email)
	if !ok {
		return Profile{}, validation("A valid email address is required")
	}
	if !validate.Password(password) {
		return Profile{}, validation("Password must be between 8 and 72 characters")
	}

	if _, err := s.Users.ByEmail(email); err == nil {
		return Profile{}, conflict("User already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return Profile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Profile{}, err
	}

	u := &domain.User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Hash:     string(hash),
		Location: location,
		Points:   0,
	}
	if err := s.Users.Create(u); err != nil {
		return Profile{}, err
	}

	return publicProfile(u), nil
}

func (s *AuthService) Login(email, password string) (string, Profile, error) {
	if email == "" || password == "" {
		return "", Profile{}, validation("Email and password are required")
	}

	u, err := s.Users.ByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", Profile{}, notFound("User not found")
		}
		return "", Profile{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", Profile{}, &Error{Kind: ErrBadCreds, Message: "Invalid password"}
	}

	token, err := auth.GenerateToken(s.Secret, u.ID, u.Email)
	if err != nil {
		return "", Profile{}, err
	}
	return token, publicProfile(u), nil
}
