package handlers

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/hades874/10MS-Req-Dash/internal/auth"
	"github.com/hades874/10MS-Req-Dash/internal/directory"
	"github.com/hades874/10MS-Req-Dash/internal/models"
	"github.com/hades874/10MS-Req-Dash/internal/sheets"
)

// DirectoryStore is the team member directory as the handlers see it.
type DirectoryStore interface {
	List() ([]models.TeamMember, error)
	Get(id string) (*models.TeamMember, error)
	Authenticate(email, password string) (*models.TeamMember, error)
	Create(input directory.CreateMemberInput) (*models.TeamMember, error)
	Update(id string, patch directory.UpdateMemberInput) error
	Delete(id string) error
}

// SheetsService is the requisition sheet as the handlers see it.
type SheetsService interface {
	GetRequisitions(ctx context.Context) ([]models.Requisition, error)
	UpdateStatus(ctx context.Context, rowIndex int, status, expectedStatus string) error
	Health(ctx context.Context) (*sheets.SheetInfo, error)
}

type Handler struct {
	store    DirectoryStore
	sheets   SheetsService
	resolver *auth.Resolver
	userInfo auth.UserInfoFetcher
	oauth    *oauth2.Config
	env      string
}

func NewHandler(store DirectoryStore, sheetsSvc SheetsService, resolver *auth.Resolver, userInfo auth.UserInfoFetcher, oauthCfg *oauth2.Config, env string) *Handler {
	return &Handler{
		store:    store,
		sheets:   sheetsSvc,
		resolver: resolver,
		userInfo: userInfo,
		oauth:    oauthCfg,
		env:      env,
	}
}

// secureCookies reports whether session cookies should carry the Secure flag.
func (h *Handler) secureCookies() bool {
	return h.env == "production"
}
