package usecase

import (
	"context"
	"fmt"
	"time"

	"pos-backend/internal/data/entity"
	"pos-backend/internal/data/repository"
	"pos-backend/internal/dto/request"
	"pos-backend/internal/dto/response"
	"pos-backend/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	Create(ctx context.Context, req *request.CreateProductRequest) (string, error)
	List(ctx context.Context) (*response.ProductListResponse, error)
	GetByID(ctx context.Context, id string) (*response.ProductResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateProductRequest) error
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log,
	}
}

// Create stores a new product and returns its generated id.
func (s *productService) Create(ctx context.Context, req *request.CreateProductRequest) (string, error) {
	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		SKU:         req.SKU,
		Barcode:     req.Barcode,
		Category:    req.Category,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("sku", req.SKU))
		return "", fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("sku", product.SKU))

	return product.ID, nil
}

func (s *productService) List(ctx context.Context) (*response.ProductListResponse, error) {
	products, err := s.repo.Product.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}

	return response.ProductsToListResponse(products), nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindActiveByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", id))
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, entity.ErrNotFound
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// Update applies a partial patch. Only name, description and price are wired
// through; other fields in the request are ignored.
func (s *productService) Update(ctx context.Context, id string, req *request.UpdateProductRequest) error {
	patch := &entity.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.repo.Product.UpdatePartial(ctx, id, patch); err != nil {
		return err
	}

	s.log.Info("Product updated", zap.String("product_id", id))
	return nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Product.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Product deleted", zap.String("product_id", id))
	return nil
}
