package response

import (
	"time"

	"pos-backend/internal/data/entity"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	SKU         string    `json:"sku"`
	Barcode     *string   `json:"barcode,omitempty"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
}

type ProductIDResponse struct {
	ID string `json:"id"`
}

// Helper converters
func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Category:    p.Category,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ProductsToListResponse(products []*entity.Product) *ProductListResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductToResponse(p))
	}
	return &ProductListResponse{
		Products: out,
		Count:    len(out),
	}
}
