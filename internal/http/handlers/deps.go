package handlers

import (
	"rewear/internal/config"
	"rewear/internal/media"
	"rewear/internal/repos"
	"rewear/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ItemHandler    *ItemHandler
	RequestHandler *RequestHandler
	UploadHandler  *UploadHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, storage media.Storage) *Deps {
	userRepo := repos.NewUserRepo(db)
	itemRepo := repos.NewItemRepo(db)
	requestRepo := repos.NewRequestRepo(db)

	authSvc := &services.AuthService{Users: userRepo, Secret: cfg.JWTSecret}
	itemSvc := services.NewItemService(itemRepo)
	requestSvc := services.NewRequestService(requestRepo, itemRepo)

	return &Deps{
		AuthHandler:    &AuthHandler{Auth: authSvc},
		ItemHandler:    &ItemHandler{Items: itemSvc},
		RequestHandler: &RequestHandler{Requests: requestSvc},
		UploadHandler:  &UploadHandler{Storage: storage},
	}
}
