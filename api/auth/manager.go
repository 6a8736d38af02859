package auth

import (
	"posadmin_server/services"
	"posadmin_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService *services.AuthService
	cfg         *structs.Config
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	cfg *structs.Config,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
		cfg:         cfg,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", arm.HandleLogin)
		r.Post("/logout", arm.HandleLogout)
		r.Get("/me", arm.HandleMe)
	})
}
