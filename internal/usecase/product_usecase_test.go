package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_AssignsIDAndSingleTimestamp(t *testing.T) {
	uc, _, outboxRepo, _ := newTestProductUC()

	view, err := uc.Create(context.Background(), NewCreateProductReq("Кеды", 599_90, "SHOES"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), view.ID)
	assert.Equal(t, "Кеды", view.Name)
	assert.Equal(t, int64(599_90), view.Price)
	assert.Equal(t, "shoes", view.Category)
	assert.True(t, view.CreatedAt.Equal(view.UpdatedAt))
	assert.Nil(t, view.DeletedAt)

	assert.Equal(t, []OutboxEventType{ProductCreated}, outboxRepo.types())
}

func TestCreate_BlankName(t *testing.T) {
	uc, _, _, _ := newTestProductUC()

	_, err := uc.Create(context.Background(), NewCreateProductReq("   ", 100, "shoes"))

	assert.ErrorIs(t, err, e.ErrNameRequired)
}

func TestCreate_UnknownCategory(t *testing.T) {
	uc, _, outboxRepo, _ := newTestProductUC()

	_, err := uc.Create(context.Background(), NewCreateProductReq("Кеды", 100, "electronics"))

	assert.ErrorIs(t, err, e.ErrInvalidCategory)
	assert.Empty(t, outboxRepo.types())
}

func TestGetByID_NotFound(t *testing.T) {
	uc, _, _, _ := newTestProductUC()

	_, err := uc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestGetByID_CacheHit(t *testing.T) {
	uc, _, _, cacheRepo := newTestProductUC()

	cached := ProductView{ID: 7, Name: "из кэша", Category: "clothes"}
	require.NoError(t, cacheRepo.SetProduct(context.Background(), cached))

	// Запись в хранилище отсутствует: ответ может прийти только из кэша.
	view, err := uc.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, cached, *view)
}

func TestUpdate_PartialFields(t *testing.T) {
	uc, _, outboxRepo, _ := newTestProductUC()

	created, err := uc.Create(context.Background(), NewCreateProductReq("Футболка", 1500, "clothes"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	newPrice := int64(1200)
	view, err := uc.Update(context.Background(), created.ID, &UpdateProductReq{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Футболка", view.Name)
	assert.Equal(t, newPrice, view.Price)
	assert.Equal(t, "clothes", view.Category)
	assert.True(t, view.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, view.UpdatedAt.After(created.UpdatedAt))

	assert.Equal(t, []OutboxEventType{ProductCreated, ProductUpdated}, outboxRepo.types())
}

func TestUpdate_BlankTextFieldsIgnored(t *testing.T) {
	uc, _, _, _ := newTestProductUC()

	created, err := uc.Create(context.Background(), NewCreateProductReq("Носки", 300, "underwear"))
	require.NoError(t, err)

	blank := "   "
	view, err := uc.Update(context.Background(), created.ID, &UpdateProductReq{Name: &blank, Category: &blank})
	require.NoError(t, err)

	assert.Equal(t, "Носки", view.Name)
	assert.Equal(t, "underwear", view.Category)
}

func TestUpdate_TouchesUpdatedAtWithoutChanges(t *testing.T) {
	uc, _, _, _ := newTestProductUC()

	created, err := uc.Create(context.Background(), NewCreateProductReq("Ремень", 900, "accessories"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	view, err := uc.Update(context.Background(), created.ID, &UpdateProductReq{})
	require.NoError(t, err)

	assert.True(t, view.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdate_MissingID(t *testing.T) {
	uc, _, _, _ := newTestProductUC()

	_, err := uc.Update(context.Background(), 0, &UpdateProductReq{})

	assert.ErrorIs(t, err, e.ErrMissingID)
}

func TestUpdate_NotFound(t *testing.T) {
	uc, _, _, _ := newTestProductUC()

	_, err := uc.Update(context.Background(), 99, &UpdateProductReq{})

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestUpdate_InvalidCategory(t *testing.T) {
	uc, _, _, _ := newTestProductUC()

	created, err := uc.Create(context.Background(), NewCreateProductReq("Кеды", 100, "shoes"))
	require.NoError(t, err)

	bad := "furniture"
	_, err = uc.Update(context.Background(), created.ID, &UpdateProductReq{Category: &bad})

	assert.ErrorIs(t, err, e.ErrInvalidCategory)
}

func TestDelete_LogicalOnly(t *testing.T) {
	uc, _, outboxRepo, _ := newTestProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, NewCreateProductReq("Кеды", 100, "shoes"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	// Запись остаётся доступной по id.
	view, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, view.DeletedAt)

	// В активной выборке её больше нет, в удалённой — есть.
	active, err := uc.ListActive(ctx, NewListProductsReq("", "", PageReq{Page: 0, Size: 10}))
	require.NoError(t, err)
	assert.Empty(t, active.Items)
	assert.Equal(t, int64(0), active.Total)

	deleted, err := uc.ListDeleted(ctx, NewListProductsReq("", "", PageReq{Page: 0, Size: 10}))
	require.NoError(t, err)
	require.Len(t, deleted.Items, 1)
	assert.Equal(t, created.ID, deleted.Items[0].ID)

	assert.Equal(t, []OutboxEventType{ProductCreated, ProductDeleted}, outboxRepo.types())
}

func TestDelete_RepeatRestampsDeletedAt(t *testing.T) {
	uc, _, _, _ := newTestProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, NewCreateProductReq("Кеды", 100, "shoes"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	first, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, first.DeletedAt)

	time.Sleep(5 * time.Millisecond)

	require.NoError(t, uc.Delete(ctx, created.ID))
	second, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, second.DeletedAt)

	assert.True(t, second.DeletedAt.After(*first.DeletedAt))
}

func TestDelete_NotFound(t *testing.T) {
	uc, _, _, _ := newTestProductUC()

	err := uc.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestListActive_CategoryFilter(t *testing.T) {
	uc, _, _, _ := newTestProductUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, NewCreateProductReq("Кеды", 100, "shoes"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, NewCreateProductReq("Футболка", 200, "clothes"))
	require.NoError(t, err)

	page, err := uc.ListActive(ctx, NewListProductsReq("SHOES", "", PageReq{Page: 0, Size: 10}))
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Кеды", page.Items[0].Name)
	assert.Equal(t, int64(1), page.Total)
}

func TestListActive_InvalidCategoryFilter(t *testing.T) {
	uc, _, _, _ := newTestProductUC()

	_, err := uc.ListActive(context.Background(), NewListProductsReq("toys", "", PageReq{Page: 0, Size: 10}))

	assert.ErrorIs(t, err, e.ErrInvalidCategory)
}

func TestListActive_PassesSortToStore(t *testing.T) {
	uc, productRepo, _, _ := newTestProductUC()

	_, err := uc.ListActive(context.Background(), NewListProductsReq("", "price,desc", PageReq{Page: 0, Size: 10}))
	require.NoError(t, err)

	assert.Equal(t, Order{Field: "price", Desc: true}, productRepo.lastOrder)
}

func TestListActive_Pagination(t *testing.T) {
	uc, _, _, _ := newTestProductUC()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := uc.Create(ctx, NewCreateProductReq("Товар", int64(100+i), "shoes"))
		require.NoError(t, err)
	}

	page, err := uc.ListActive(ctx, NewListProductsReq("", "", PageReq{Page: 1, Size: 2}))
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Size)
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	uc, _, _, cacheRepo := newTestProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, NewCreateProductReq("Кеды", 100, "shoes"))
	require.NoError(t, err)

	require.NoError(t, cacheRepo.SetProduct(ctx, *created))

	newPrice := int64(50)
	_, err = uc.Update(ctx, created.ID, &UpdateProductReq{Price: &newPrice})
	require.NoError(t, err)

	stale, err := cacheRepo.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stale)
}

func TestCategoryFilter_Blank(t *testing.T) {
	filter, err := categoryFilter("  ")

	require.NoError(t, err)
	assert.Nil(t, filter)
}

func TestCategoryFilter_CaseInsensitive(t *testing.T) {
	filter, err := categoryFilter("ShOeS")

	require.NoError(t, err)
	require.NotNil(t, filter)
	assert.Equal(t, domain.CategoryShoes, *filter)
}
