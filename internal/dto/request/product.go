package request

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	SKU         string  `json:"sku" validate:"required,min=1,max=100"`
	Barcode     *string `json:"barcode,omitempty"`
	Category    string  `json:"category" validate:"required,min=1,max=100"`
	Stock       int     `json:"stock" validate:"gte=0"`
	MinStock    int     `json:"min_stock" validate:"gte=0"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// UpdateProductRequest accepts the full patch shape, but only name,
// description and price are applied to the row.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Cost        *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	SKU         *string  `json:"sku,omitempty" validate:"omitempty,min=1,max=100"`
	Barcode     *string  `json:"barcode,omitempty"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	MinStock    *int     `json:"min_stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}
