package services

import (
	"database/sql"
	"errors"

	"rewear/internal/domain"
	"rewear/internal/repos"

	"github.com/google/uuid"
)

type RequestService struct {
	Requests *repos.RequestRepo
	Items    *repos.ItemRepo
}

func NewRequestService(requests *repos.RequestRepo, items *repos.ItemRepo) *RequestService {
	return &RequestService{Requests: requests, Items: items}
}

// ItemSummary is the slice of an item embedded in request views.
type ItemSummary struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Status   string `json:"status,omitempty"`
	Owner    *Owner `json:"user,omitempty"`
}

// RequestView is a swap request with its item summary.
type RequestView struct {
	ID          string      `json:"id"`
	ItemID      string      `json:"itemId"`
	FromUserID  string      `json:"fromUserId"`
	ToUserID    string      `json:"toUserId"`
	Status      string      `json:"status"`
	RequestedAt string      `json:"requestedAt"`
	Item        ItemSummary `json:"item"`
}

// Create runs the request-creation checks in order: item exists, requester is
// not the owner, item is available, no duplicate pending request.
func (s *RequestService) Create(itemID, fromUserID string) (RequestView, error) {
	if itemID == "" {
		return RequestView{}, validation("Item ID is required")
	}

	it, err := s.Items.Get(itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RequestView{}, notFound("Item not found")
		}
		return RequestView{}, err
	}
	if Owns(fromUserID, it.UserID) {
		return RequestView{}, validation("You cannot request your own item")
	}
	if it.Status != domain.ItemAvailable {
		return RequestView{}, validation("Item is not available for borrowing")
	}

	dup, err := s.Requests.HasPending(itemID, fromUserID)
	if err != nil {
		return RequestView{}, err
	}
	if dup {
		return RequestView{}, conflict("You already have a pending request for this item")
	}

	req := &domain.SwapRequest{
		ID:         uuid.NewString(),
		ItemID:     itemID,
		FromUserID: fromUserID,
		ToUserID:   it.UserID,
		Status:     domain.RequestPending,
	}
	if err := s.Requests.Create(req); err != nil {
		return RequestView{}, err
	}

	return RequestView{
		ID:          req.ID,
		ItemID:      req.ItemID,
		FromUserID:  req.FromUserID,
		ToUserID:    req.ToUserID,
		Status:      req.Status,
		RequestedAt: req.RequestedAt,
		Item:        ItemSummary{Title: it.Title, Category: it.Category},
	}, nil
}

// Resolve applies an owner's decision to a pending request. Accepting marks
// the item borrowed in the same transaction; first accept wins, so a request
// whose item is no longer available can only be declined.
func (s *RequestService) Resolve(requestID, actingUserID, decision string) (RequestView, error) {
	if !domain.ValidDecision(decision) {
		return RequestView{}, validation("Invalid status. Allowed values: accepted, declined")
	}

	req, err := s.Requests.Get(requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RequestView{}, notFound("Request not found")
		}
		return RequestView{}, err
	}
	if req.Status != domain.RequestPending {
		return RequestView{}, conflict("Request has already been processed")
	}
	if !Owns(actingUserID, req.ToUserID) {
		return RequestView{}, forbidden("You can only respond to requests for your own items")
	}

	it, err := s.Items.Get(req.ItemID)
	if err != nil {
		return RequestView{}, err
	}

	itemStatus := ""
	if decision == domain.RequestAccepted {
		if it.Status != domain.ItemAvailable {
			return RequestView{}, conflict("Item is no longer available")
		}
		itemStatus = domain.ItemBorrowed
	}

	if err := s.Requests.Resolve(requestID, decision, req.ItemID, itemStatus); err != nil {
		return RequestView{}, err
	}

	if itemStatus != "" {
		it.Status = itemStatus
	}
	return RequestView{
		ID:          req.ID,
		ItemID:      req.ItemID,
		FromUserID:  req.FromUserID,
		ToUserID:    req.ToUserID,
		Status:      decision,
		RequestedAt: req.RequestedAt,
		Item:        ItemSummary{ID: it.ID, Title: it.Title, Status: it.Status},
	}, nil
}

// SentView is a request the user made, with the item and its owner.
type SentView struct {
	ID          string      `json:"id"`
	ItemID      string      `json:"itemId"`
	Status      string      `json:"status"`
	RequestedAt string      `json:"requestedAt"`
	Item        ItemSummary `json:"item"`
}

// ReceivedView is a request against the user's item, with the requester.
type ReceivedView struct {
	ID          string      `json:"id"`
	ItemID      string      `json:"itemId"`
	Status      string      `json:"status"`
	RequestedAt string      `json:"requestedAt"`
	Item        ItemSummary `json:"item"`
	FromUser    Owner       `json:"fromUser"`
}

// Overview groups a user's requests by direction.
type Overview struct {
	Sent     []SentView     `json:"sent"`
	Received []ReceivedView `json:"received"`
}

func (s *RequestService) ListMine(userID string) (Overview, error) {
	sent, err := s.Requests.SentBy(userID)
	if err != nil {
		return Overview{}, err
	}
	received, err := s.Requests.ReceivedBy(userID)
	if err != nil {
		return Overview{}, err
	}

	ov := Overview{Sent: make([]SentView, 0, len(sent)), Received: make([]ReceivedView, 0, len(received))}
	for _, row := range sent {
		ov.Sent = append(ov.Sent, SentView{
			ID:          row.ID,
			ItemID:      row.ItemID,
			Status:      row.Status,
			RequestedAt: row.RequestedAt,
			Item: ItemSummary{
				Title:    row.ItemTitle,
				Category: row.ItemCategory,
				ImageURL: row.ItemImageURL,
				Status:   row.ItemStatus,
				Owner:    &Owner{Name: row.OwnerName, Location: row.OwnerLocation},
			},
		})
	}
	for _, row := range received {
		ov.Received = append(ov.Received, ReceivedView{
			ID:          row.ID,
			ItemID:      row.ItemID,
			Status:      row.Status,
			RequestedAt: row.RequestedAt,
			Item: ItemSummary{
				Title:    row.ItemTitle,
				Category: row.ItemCategory,
				ImageURL: row.ItemImageURL,
				Status:   row.ItemStatus,
			},
			FromUser: Owner{Name: row.RequesterName, Location: row.RequesterLocation},
		})
	}
	return ov, nil
}
