package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/google/uuid"
)

// ProductUseCase реализует бизнес-логику каталога продуктов.
// Сервис не держит состояния между запросами: каждая операция —
// функция от входа и текущего состояния хранилища.
type ProductUseCase struct {
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	txManager   Transactor
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	txManager Transactor,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListActive возвращает страницу активных продуктов (deleted_at IS NULL)
// с необязательным фильтром по категории и директивой сортировки.
func (p *ProductUseCase) ListActive(ctx context.Context, req *ListProductsReq) (*ProductPage, error) {
	const op = "ProductUseCase.ListActive"

	filter, err := categoryFilter(req.Category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order, _ := ParseSortDirective(req.Sort, DefaultSortField)

	page, err := p.productRepo.FindActive(ctx, filter, req.Page, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewProductPage(page), nil
}

// ListDeleted возвращает страницу логически удалённых продуктов, та же форма запроса.
func (p *ProductUseCase) ListDeleted(ctx context.Context, req *ListProductsReq) (*ProductPage, error) {
	const op = "ProductUseCase.ListDeleted"

	filter, err := categoryFilter(req.Category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order, _ := ParseSortDirective(req.Sort, DefaultSortField)

	page, err := p.productRepo.FindDeleted(ctx, filter, req.Page, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewProductPage(page), nil
}

// GetByID возвращает продукт по идентификатору независимо от признака удаления.
func (p *ProductUseCase) GetByID(ctx context.Context, id int64) (*ProductView, error) {
	const op = "ProductUseCase.GetByID"

	if cached, err := p.cacheRepo.GetProduct(ctx, id); err != nil {
		p.logger.Warnf("Cache lookup failed: %v", e.Wrap(op, err))
	} else if cached != nil {
		return cached, nil
	}

	product, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	view := NewProductView(product)

	// Фоновое добавление продукта в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProduct(bgCtx, view); err != nil {
			p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return &view, nil
}

// Create сохраняет новый продукт: категория проходит через словарь,
// createdAt и updatedAt устанавливаются одной меткой, id назначает хранилище.
func (p *ProductUseCase) Create(ctx context.Context, req *CreateProductReq) (*ProductView, error) {
	const op = "ProductUseCase.Create"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	category, err := domain.CategoryFromString(req.Category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	now := time.Now()
	product := domain.NewProduct(req.Name, req.Price, category)
	product.CreatedAt = now
	product.UpdatedAt = now

	var saved *domain.Product
	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		saved, txErr = p.productRepo.Save(ctx, product)
		if txErr != nil {
			return txErr
		}

		return p.createOutboxEvent(ctx, ProductCreated, saved)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	view := NewProductView(saved)
	return &view, nil
}

// Update применяет частичное обновление: поле из запроса перезаписывает
// сохранённое значение только если оно передано и, для текстовых полей,
// непустое. updatedAt обновляется всегда, даже если не изменилось ни одно поле.
func (p *ProductUseCase) Update(ctx context.Context, id int64, req *UpdateProductReq) (*ProductView, error) {
	const op = "ProductUseCase.Update"

	if id == 0 {
		return nil, e.Wrap(op, e.ErrMissingID)
	}

	product, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		category, err := domain.CategoryFromString(*req.Category)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		product.Category = category
	}
	product.UpdatedAt = time.Now()

	var saved *domain.Product
	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		saved, txErr = p.productRepo.Save(ctx, product)
		if txErr != nil {
			return txErr
		}

		return p.createOutboxEvent(ctx, ProductUpdated, saved)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, id, op)

	view := NewProductView(saved)
	return &view, nil
}

// Delete выполняет логическое удаление: запись остаётся в хранилище,
// deletedAt получает текущую метку. Повторный вызов находит уже удалённую
// запись и переставляет метку заново — физического удаления нет.
func (p *ProductUseCase) Delete(ctx context.Context, id int64) error {
	const op = "ProductUseCase.Delete"

	product, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if product == nil {
		return e.Wrap(op, e.ErrProductNotFound)
	}

	now := time.Now()
	product.DeletedAt = &now

	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		if _, txErr := p.productRepo.Save(ctx, product); txErr != nil {
			return txErr
		}

		return p.createOutboxEvent(ctx, ProductDeleted, product)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateCache(ctx, id, op)

	return nil
}

// createOutboxEvent записывает outbox-событие в той же транзакции, что и продукт.
func (p *ProductUseCase) createOutboxEvent(ctx context.Context, eventType OutboxEventType, product *domain.Product) error {
	eventID := uuid.NewString()

	payload, err := json.Marshal(ProductChangePayload{
		EventID:    eventID,
		EventType:  string(eventType),
		OccurredAt: time.Now(),
		Product:    NewProductView(product),
	})
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, NewOutboxEvent(eventID, eventType, product.ID, payload))
	return err
}

// invalidateCache удаляет устаревшее представление из кэша, ошибки только логируются.
func (p *ProductUseCase) invalidateCache(ctx context.Context, id int64, op string) {
	if err := p.cacheRepo.DeleteProduct(ctx, id); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}
}

// categoryFilter разрешает необязательный текстовый фильтр категории через словарь.
func categoryFilter(category string) (*domain.Category, error) {
	if strings.TrimSpace(category) == "" {
		return nil, nil
	}

	c, err := domain.CategoryFromString(category)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
