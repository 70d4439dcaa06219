package wire

import (
	"pos-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes (no auth middleware)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/register", authHandler.Register)
}
