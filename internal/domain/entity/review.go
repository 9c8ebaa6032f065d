package entity

import "time"

// Rating bounds accepted for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating and optional comment owned by exactly one provider.
type Review struct {
	ID         int64     `json:"id"`
	Rating     int       `json:"calificacion"`
	Comment    *string   `json:"comentario"`
	CreatedAt  time.Time `json:"fecha_creacion"`
	ProviderID int64     `json:"proveedor_id"`
}

// ValidRating reports whether rating lies within [MinRating, MaxRating].
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
