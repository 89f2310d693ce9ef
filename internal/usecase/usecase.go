package usecase

import "context"

type ProductUC interface {
	ListActive(ctx context.Context, req *ListProductsReq) (*ProductPage, error)
	ListDeleted(ctx context.Context, req *ListProductsReq) (*ProductPage, error)
	GetByID(ctx context.Context, id int64) (*ProductView, error)
	Create(ctx context.Context, req *CreateProductReq) (*ProductView, error)
	Update(ctx context.Context, id int64, req *UpdateProductReq) (*ProductView, error)
	Delete(ctx context.Context, id int64) error
}

type SummaryUC interface {
	Summarize(ctx context.Context, category string) (*ProductSummary, error)
}
