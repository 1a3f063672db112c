package services

import (
	"database/sql"
	"errors"
	"fmt"

	"rewear/internal/domain"
	"rewear/internal/repos"

	"github.com/google/uuid"
)

type ItemService struct {
	Items *repos.ItemRepo
}

func NewItemService(items *repos.ItemRepo) *ItemService { return &ItemService{Items: items} }

// Owner is the public slice of a user attached to joined views.
type Owner struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ItemView is an item joined with its owner's public fields.
type ItemView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Condition string `json:"condition"`
	ImageURL  string `json:"imageUrl"`
	Status    string `json:"status"`
	ListedAt  string `json:"listedAt"`
	Owner     Owner  `json:"user"`
}

func (s *ItemService) Create(ownerID, title, category, condition, imageURL string) (domain.Item, error) {
	if title == "" || category == "" || condition == "" || imageURL == "" {
		return domain.Item{}, validation("All fields (title, category, condition, imageUrl) are required")
	}

	it := &domain.Item{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		Condition: condition,
		ImageURL:  imageURL,
		UserID:    ownerID,
		Status:    domain.ItemAvailable,
	}
	if err := s.Items.Create(it); err != nil {
		return domain.Item{}, err
	}
	return *it, nil
}

func (s *ItemService) List() ([]ItemView, error) {
	rows, err := s.Items.ListWithOwners()
	if err != nil {
		return nil, err
	}
	out := make([]ItemView, 0, len(rows))
	for _, row := range rows {
		v := itemView(row)
		v.Owner.ID = "" // listings expose owner name/location only
		out = append(out, v)
	}
	return out, nil
}

func (s *ItemService) Get(id string) (ItemView, error) {
	row, err := s.Items.GetWithOwner(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ItemView{}, notFound("Item not found")
		}
		return ItemView{}, err
	}
	return itemView(row), nil
}

func (s *ItemService) SetStatus(id, actingUserID, status string) (domain.Item, error) {
	if !domain.ValidItemStatus(status) {
		return domain.Item{}, validation(
			fmt.Sprintf("Invalid status. Allowed values: %s, %s, %s, %s",
				domain.ItemAvailable, domain.ItemRequested, domain.ItemBorrowed, domain.ItemUnavailable))
	}

	it, err := s.Items.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, notFound("Item not found")
		}
		return domain.Item{}, err
	}
	if !Owns(actingUserID, it.UserID) {
		return domain.Item{}, forbidden("You can only update the status of your own items")
	}

	return s.Items.SetStatus(id, status)
}

func itemView(row repos.ItemRow) ItemView {
	return ItemView{
		ID:        row.ID,
		Title:     row.Title,
		Category:  row.Category,
		Condition: row.Condition,
		ImageURL:  row.ImageURL,
		Status:    row.Status,
		ListedAt:  row.ListedAt,
		Owner: Owner{
			ID:       row.OwnerID,
			Name:     row.OwnerName,
			Location: row.OwnerLocation,
		},
	}
}
