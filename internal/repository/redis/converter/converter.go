//go:generate goverter gen github.com/DRSN-tech/catalog-service/internal/repository/redis/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
)

// ProductViewConverter преобразует представление продукта между usecase и моделью Redis.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductViewConverter interface {
	ToUseCase(model *ProductViewRedisModel) *usecase.ProductView
	ToRedisModel(view usecase.ProductView) ProductViewRedisModel
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}
