package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pos-backend/internal/data/entity"
	"pos-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAllActive(ctx context.Context) ([]*entity.Product, error)
	FindActiveByID(ctx context.Context, id string) (*entity.Product, error)
	UpdatePartial(ctx context.Context, id string, patch *entity.ProductPatch) error
	SoftDelete(ctx context.Context, id string) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

// Create inserts a new product. is_active is always true on create.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, cost, sku, barcode,
		                      category, stock, min_stock, image_url, is_active,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Cost,
		product.SKU,
		product.Barcode,
		product.Category,
		product.Stock,
		product.MinStock,
		product.ImageURL,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("sku", product.SKU),
		)
		return fmt.Errorf("create product %s: %w", product.SKU, err)
	}

	return nil
}

// FindAllActive lists active products, newest first.
func (r *productRepository) FindAllActive(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, cost, sku, barcode, category,
		       stock, min_stock, image_url, is_active, created_at, updated_at
		FROM products
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Cost,
			&p.SKU,
			&p.Barcode,
			&p.Category,
			&p.Stock,
			&p.MinStock,
			&p.ImageURL,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) FindActiveByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, cost, sku, barcode, category,
		       stock, min_stock, image_url, is_active, created_at, updated_at
		FROM products
		WHERE id = $1 AND is_active = true
	`

	var p entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Cost,
		&p.SKU,
		&p.Barcode,
		&p.Category,
		&p.Stock,
		&p.MinStock,
		&p.ImageURL,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id, err)
	}

	return &p, nil
}

// buildPartialUpdate assembles a parameterized UPDATE touching only the
// provided fields plus updated_at. Column names come from a fixed whitelist;
// every value stays a bound parameter.
func buildPartialUpdate(id string, patch *entity.ProductPatch, now time.Time) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, entity.ErrEmptyPatch
	}

	var sets []string
	var args []any
	bind := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Name != nil {
		sets = append(sets, "name = "+bind(*patch.Name))
	}
	if patch.Description != nil {
		sets = append(sets, "description = "+bind(*patch.Description))
	}
	if patch.Price != nil {
		sets = append(sets, "price = "+bind(*patch.Price))
	}
	sets = append(sets, "updated_at = "+bind(now))

	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = %s AND is_active = true",
		strings.Join(sets, ", "), bind(id),
	)

	return query, args, nil
}

// UpdatePartial applies the patch to an active product.
func (r *productRepository) UpdatePartial(ctx context.Context, id string, patch *entity.ProductPatch) error {
	query, args, err := buildPartialUpdate(id, patch, time.Now())
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", id),
		)
		return fmt.Errorf("update product %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// SoftDelete marks an active product inactive; the row stays queryable.
func (r *productRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE products
		SET is_active = false, updated_at = $2
		WHERE id = $1 AND is_active = true
	`

	result, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id),
		)
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	r.log.Info("Product deactivated", zap.String("product_id", id))
	return nil
}
