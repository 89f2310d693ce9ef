package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
)

// ProductRepository — минимальный контракт хранилища, от которого зависит бизнес-логика.
// Активная и удалённая выборки разделены по признаку deleted_at.
type ProductRepository interface {
	FindActive(ctx context.Context, category *domain.Category, page PageReq, order Order) (*RecordPage, error)
	FindDeleted(ctx context.Context, category *domain.Category, page PageReq, order Order) (*RecordPage, error)
	// FindByID возвращает nil, nil если записи с таким id нет.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// Save вставляет запись при нулевом ID, иначе обновляет существующую.
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// ListActive возвращает полный активный набор без пагинации, используется только агрегацией.
	ListActive(ctx context.Context, category *domain.Category) ([]domain.Product, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	// GetProduct возвращает nil, nil при промахе кэша.
	GetProduct(ctx context.Context, id int64) (*ProductView, error)
	SetProduct(ctx context.Context, view ProductView) error
	DeleteProduct(ctx context.Context, id int64) error
}
