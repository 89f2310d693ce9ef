package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Price     int64      `db:"price"`
	Category  string     `db:"category"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
