package converter

import "time"

// ProductViewRedisModel — JSON-модель представления продукта в кэше.
type ProductViewRedisModel struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Price     int64      `json:"price"`
	Category  string     `json:"category"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}
