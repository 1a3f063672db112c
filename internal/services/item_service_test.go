package services_test

import (
	"errors"
	"testing"

	"rewear/internal/domain"
	"rewear/internal/repos"
	"rewear/internal/services"

	"github.com/jmoiron/sqlx"
)

func signupUser(t *testing.T, db *sqlx.DB, name, email string) services.Profile {
	t.Helper()
	svc := newAuthService(db)
	p, err := svc.Signup(name, email, "Passw0rd!", "College Park")
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}
	return p
}

func TestCreateItemForcesAvailable(t *testing.T) {
	db := memdb(t)
	owner := signupUser(t, db, "Alice", "alice@rewear.test")
	svc := services.NewItemService(repos.NewItemRepo(db))

	item, err := svc.Create(owner.ID, "Denim Jacket", "outerwear", "good", "https://cdn.test/a.jpg")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Status != domain.ItemAvailable {
		t.Errorf("expected status available, got %s", item.Status)
	}
	if item.UserID != owner.ID {
		t.Errorf("expected owner %s, got %s", owner.ID, item.UserID)
	}
	if item.ListedAt == "" {
		t.Error("expected listed_at to be stamped")
	}
}

func TestCreateItemMissingFields(t *testing.T) {
	db := memdb(t)
	owner := signupUser(t, db, "Alice", "alice@rewear.test")
	svc := services.NewItemService(repos.NewItemRepo(db))

	_, err := svc.Create(owner.ID, "Denim Jacket", "", "good", "https://cdn.test/a.jpg")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListItemsNewestFirstWithOwner(t *testing.T) {
	db := memdb(t)
	owner := signupUser(t, db, "Alice", "alice@rewear.test")
	svc := services.NewItemService(repos.NewItemRepo(db))

	first, _ := svc.Create(owner.ID, "First", "tops", "good", "u1")
	second, _ := svc.Create(owner.ID, "Second", "tops", "good", "u2")

	list, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("expected newest first, got %s then %s", list[0].Title, list[1].Title)
	}
	if list[0].Owner.Name != "Alice" || list[0].Owner.Location != "College Park" {
		t.Errorf("expected owner join, got %+v", list[0].Owner)
	}
	if list[0].Owner.ID != "" {
		t.Error("listing should not expose owner id")
	}
}

func TestGetItemIncludesOwnerID(t *testing.T) {
	db := memdb(t)
	owner := signupUser(t, db, "Alice", "alice@rewear.test")
	svc := services.NewItemService(repos.NewItemRepo(db))
	item, _ := svc.Create(owner.ID, "Denim Jacket", "outerwear", "good", "u")

	view, err := svc.Get(item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Owner.ID != owner.ID {
		t.Errorf("expected owner id %s, got %s", owner.ID, view.Owner.ID)
	}

	if _, err := svc.Get("missing-id"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestSetStatusOwnershipAndValidation(t *testing.T) {
	db := memdb(t)
	owner := signupUser(t, db, "Alice", "alice@rewear.test")
	stranger := signupUser(t, db, "Bob", "bob@rewear.test")
	svc := services.NewItemService(repos.NewItemRepo(db))
	item, _ := svc.Create(owner.ID, "Denim Jacket", "outerwear", "good", "u")

	if _, err := svc.SetStatus(item.ID, owner.ID, "lost"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation for bad status, got %v", err)
	}
	if _, err := svc.SetStatus("missing", owner.ID, domain.ItemUnavailable); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if _, err := svc.SetStatus(item.ID, stranger.ID, domain.ItemUnavailable); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}

	updated, err := svc.SetStatus(item.ID, owner.ID, domain.ItemUnavailable)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != domain.ItemUnavailable {
		t.Errorf("expected unavailable, got %s", updated.Status)
	}
	if updated.UpdatedAt == "" {
		t.Error("expected updated_at to be stamped")
	}
}
