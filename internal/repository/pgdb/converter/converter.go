//go:generate goverter gen github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertCategory
// goverter:extend ConvertCategoryFromModel
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertOutboxStatusFromModel
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertOutboxEventTypeFromModel
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertCategory(c domain.Category) string {
	return string(c)
}

func ConvertCategoryFromModel(s string) domain.Category {
	return domain.Category(s)
}

func ConvertOutboxStatus(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutboxStatusFromModel(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxEventType(t usecase.OutboxEventType) string {
	return string(t)
}

func ConvertOutboxEventTypeFromModel(s string) usecase.OutboxEventType {
	return usecase.OutboxEventType(s)
}
