package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/pkg/e"
)

// SummaryUseCase считает агрегаты по активной части каталога.
type SummaryUseCase struct {
	productRepo ProductRepository
}

func NewSummaryUC(productRepo ProductRepository) *SummaryUseCase {
	return &SummaryUseCase{productRepo: productRepo}
}

// Summarize возвращает количество активных продуктов и их среднюю цену,
// при необходимости с фильтром по категории. Средняя цена — целочисленное
// деление с усечением к нулю; пустая выборка даёт {0, 0} без деления на ноль.
func (s *SummaryUseCase) Summarize(ctx context.Context, category string) (*ProductSummary, error) {
	const op = "SummaryUseCase.Summarize"

	filter, err := categoryFilter(category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := s.productRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(products) == 0 {
		return NewProductSummary(0, 0), nil
	}

	var sum int64
	for i := range products {
		sum += products[i].Price
	}

	count := int64(len(products))
	return NewProductSummary(count, sum/count), nil
}
