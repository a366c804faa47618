package entity

import "time"

// Review reseña de un producto por un usuario. Única por (ProductID, UserID).
type Review struct {
	ID        string
	ProductID string
	UserID    string
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
}
