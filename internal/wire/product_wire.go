package wire

import (
	"pos-backend/internal/adaptor"
	"pos-backend/internal/data/entity"
	"pos-backend/pkg/middleware"
	"pos-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/products", productHandler.GetProducts)
	r.Get("/products/{id}", productHandler.GetProductByID)

	// ==================== MUTATION ROUTES ====================
	// Token + role checks are gated by AUTH_ENABLED so the API can run open
	// during rollout.
	mutations := r.With()
	if config.App.AuthEnabled {
		mutations = r.With(
			middleware.Auth(config.JWT.Secret, log),
			middleware.RequireRole(string(entity.RoleAdmin), log),
		)
	}

	mutations.Post("/products", productHandler.CreateProduct)
	mutations.Put("/products/{id}", productHandler.UpdateProduct)
	mutations.Delete("/products/{id}", productHandler.DeleteProduct)
}
