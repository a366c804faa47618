package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/boardgames-store/internal/domain"
	"github.com/jhoicas/boardgames-store/internal/domain/entity"
	"github.com/jhoicas/boardgames-store/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, category_id, name, slug, COALESCE(description, ''), price,
	min_players, max_players, play_time_min, play_time_max, age_rating,
	weight, COALESCE(dimensions, ''), COALESCE(publisher, ''), created_at, updated_at`

// Create persiste un producto nuevo. El slug es único; la violación se mapea
// a domain.ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, name, slug, description, price,
			min_players, max_players, play_time_min, play_time_max, age_rating,
			weight, dimensions, publisher, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Slug, product.Description, product.Price,
		product.MinPlayers, product.MaxPlayers, product.PlayTimeMin, product.PlayTimeMax, product.AgeRating,
		product.Weight, product.Dimensions, product.Publisher, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetBySlug obtiene un producto por su slug público.
func (r *ProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	return r.scanOne(query, slug)
}

// GetByNameAndPublisher obtiene un producto por nombre y editorial (cmd/seed).
func (r *ProductRepo) GetByNameAndPublisher(name, publisher string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 AND publisher = $2 LIMIT 1`
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, name, publisher).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.Price,
		&p.MinPlayers, &p.MaxPlayers, &p.PlayTimeMin, &p.PlayTimeMax, &p.AgeRating,
		&p.Weight, &p.Dimensions, &p.Publisher, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name/publisher: %w", err)
	}
	return &p, nil
}

// List lista productos con paginación, los más recientes primero.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.Price,
			&p.MinPlayers, &p.MaxPlayers, &p.PlayTimeMin, &p.PlayTimeMax, &p.AgeRating,
			&p.Weight, &p.Dimensions, &p.Publisher, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, name = $3, slug = $4, description = $5, price = $6,
			min_players = $7, max_players = $8, play_time_min = $9, play_time_max = $10,
			age_rating = $11, weight = $12, dimensions = $13, publisher = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Slug, product.Description, product.Price,
		product.MinPlayers, product.MaxPlayers, product.PlayTimeMin, product.PlayTimeMax,
		product.AgeRating, product.Weight, product.Dimensions, product.Publisher, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.Price,
		&p.MinPlayers, &p.MaxPlayers, &p.PlayTimeMin, &p.PlayTimeMax, &p.AgeRating,
		&p.Weight, &p.Dimensions, &p.Publisher, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
