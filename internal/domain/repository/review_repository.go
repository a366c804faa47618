package repository

import "github.com/jhoicas/boardgames-store/internal/domain/entity"

// ReviewRepository puerto de persistencia para Review.
type ReviewRepository interface {
	Upsert(review *entity.Review) error
	ListByProduct(productID string) ([]*entity.Review, error)
	AverageRating(productID string) (float64, int, error)
}
