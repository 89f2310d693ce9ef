package usecase

import (
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
)

// PRODUCT USECASE

// PageReq — запрошенная страница: индекс (с нуля) и размер.
type PageReq struct {
	Page int
	Size int
}

// Order — нормализованная инструкция сортировки.
type Order struct {
	Field string
	Desc  bool
}

// ListProductsReq — запрос постраничной выборки с необязательным фильтром
// по категории и директивой сортировки вида "поле,направление".
type ListProductsReq struct {
	Category string
	Sort     string
	Page     PageReq
}

// ProductView — DTO продукта для внешнего использования.
type ProductView struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Price     int64      `json:"price"`
	Category  string     `json:"category"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// RecordPage — страница записей, возвращаемая хранилищем.
type RecordPage struct {
	Items []domain.Product
	Total int64
	Page  int
	Size  int
}

// ProductPage — страница представлений с честными метаданными пагинации.
type ProductPage struct {
	Items []ProductView `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
}

// CreateProductReq — запрос на создание продукта.
type CreateProductReq struct {
	Name     string
	Price    int64
	Category string
}

// UpdateProductReq — частичное обновление: nil-поле не затрагивает
// сохранённое значение, текстовые поля дополнительно должны быть непустыми.
type UpdateProductReq struct {
	Name     *string
	Price    *int64
	Category *string
}

// ProductSummary — агрегат по активной выборке: количество и средняя цена.
type ProductSummary struct {
	Count     int64 `json:"count"`
	MeanPrice int64 `json:"meanPrice"`
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductCreated OutboxEventType = "product.created"
	ProductUpdated OutboxEventType = "product.updated"
	ProductDeleted OutboxEventType = "product.deleted"
)

type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// ProductChangePayload — JSON-тело события изменения продукта.
type ProductChangePayload struct {
	EventID    string      `json:"eventId"`
	EventType  string      `json:"eventType"`
	OccurredAt time.Time   `json:"occurredAt"`
	Product    ProductView `json:"product"`
}

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// MAPPERS

func NewProductView(product *domain.Product) ProductView {
	return ProductView{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category.String(),
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
		DeletedAt: product.DeletedAt,
	}
}

func NewProductPage(page *RecordPage) *ProductPage {
	items := make([]ProductView, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, NewProductView(&page.Items[i]))
	}

	return &ProductPage{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
	}
}

func NewRecordPage(items []domain.Product, total int64, page PageReq) *RecordPage {
	return &RecordPage{
		Items: items,
		Total: total,
		Page:  page.Page,
		Size:  page.Size,
	}
}

func NewListProductsReq(category, sort string, page PageReq) *ListProductsReq {
	return &ListProductsReq{
		Category: category,
		Sort:     sort,
		Page:     page,
	}
}

func NewCreateProductReq(name string, price int64, category string) *CreateProductReq {
	return &CreateProductReq{
		Name:     name,
		Price:    price,
		Category: category,
	}
}

func NewProductSummary(count, meanPrice int64) *ProductSummary {
	return &ProductSummary{
		Count:     count,
		MeanPrice: meanPrice,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, productID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}
