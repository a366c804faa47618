package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/boardgames-store/internal/domain/entity"
	"github.com/jhoicas/boardgames-store/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	db Querier
}

// NewReviewRepository construye el adaptador de persistencia para reseñas.
func NewReviewRepository(db Querier) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Upsert inserta o actualiza la reseña de un usuario sobre un producto
// (única por product_id + user_id).
func (r *ReviewRepo) Upsert(review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id, user_id) DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment`
	_, err := r.db.Exec(context.Background(), query,
		review.ID, review.ProductID, review.UserID, review.Rating, review.Comment, review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert review: %w", err)
	}
	return nil
}

// ListByProduct lista reseñas de un producto, las más recientes primero.
func (r *ReviewRepo) ListByProduct(productID string) ([]*entity.Review, error) {
	query := `
		SELECT id, product_id, user_id, rating, COALESCE(comment, ''), created_at
		FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}

// AverageRating devuelve el promedio de rating y el total de reseñas de un producto.
func (r *ReviewRepo) AverageRating(productID string) (float64, int, error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE product_id = $1`
	var avg float64
	var count int
	if err := r.db.QueryRow(context.Background(), query, productID).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, count, nil
}
