package entity

type Product struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Price       float64 `db:"price"`
	Cost        float64 `db:"cost"`
	SKU         string  `db:"sku"`
	Barcode     *string `db:"barcode"`
	Category    string  `db:"category"`
	Stock       int     `db:"stock"`
	MinStock    int     `db:"min_stock"`
	ImageURL    *string `db:"image_url"`
	IsActive    bool    `db:"is_active"`
}

// ProductPatch carries the fields the partial update actually applies. The
// HTTP request accepts a wider shape; everything outside this set is ignored.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
}

func (p *ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil
}
