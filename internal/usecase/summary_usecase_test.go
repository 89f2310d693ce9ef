package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSummaryUC(t *testing.T) (*SummaryUseCase, *ProductUseCase) {
	t.Helper()
	productUC, productRepo, _, _ := newTestProductUC()

	return NewSummaryUC(productRepo), productUC
}

func TestSummarize_CountAndMean(t *testing.T) {
	summaryUC, productUC := newTestSummaryUC(t)
	ctx := context.Background()

	_, err := productUC.Create(ctx, NewCreateProductReq("Кеды", 1000, "shoes"))
	require.NoError(t, err)
	_, err = productUC.Create(ctx, NewCreateProductReq("Ботинки", 2000, "shoes"))
	require.NoError(t, err)

	summary, err := summaryUC.Summarize(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.Count)
	assert.Equal(t, int64(1500), summary.MeanPrice)
}

func TestSummarize_MeanTruncatesTowardZero(t *testing.T) {
	summaryUC, productUC := newTestSummaryUC(t)
	ctx := context.Background()

	_, err := productUC.Create(ctx, NewCreateProductReq("Кеды", 1000, "shoes"))
	require.NoError(t, err)
	_, err = productUC.Create(ctx, NewCreateProductReq("Ботинки", 1001, "shoes"))
	require.NoError(t, err)

	summary, err := summaryUC.Summarize(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, int64(1000), summary.MeanPrice)
}

func TestSummarize_EmptySet(t *testing.T) {
	summaryUC, _ := newTestSummaryUC(t)

	summary, err := summaryUC.Summarize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.Count)
	assert.Equal(t, int64(0), summary.MeanPrice)
}

func TestSummarize_CategoryFilter(t *testing.T) {
	summaryUC, productUC := newTestSummaryUC(t)
	ctx := context.Background()

	_, err := productUC.Create(ctx, NewCreateProductReq("Кеды", 1000, "shoes"))
	require.NoError(t, err)
	_, err = productUC.Create(ctx, NewCreateProductReq("Футболка", 500, "clothes"))
	require.NoError(t, err)

	summary, err := summaryUC.Summarize(ctx, "clothes")
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Count)
	assert.Equal(t, int64(500), summary.MeanPrice)
}

func TestSummarize_SkipsDeleted(t *testing.T) {
	summaryUC, productUC := newTestSummaryUC(t)
	ctx := context.Background()

	_, err := productUC.Create(ctx, NewCreateProductReq("Кеды", 1000, "shoes"))
	require.NoError(t, err)
	gone, err := productUC.Create(ctx, NewCreateProductReq("Ботинки", 9000, "shoes"))
	require.NoError(t, err)
	require.NoError(t, productUC.Delete(ctx, gone.ID))

	summary, err := summaryUC.Summarize(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Count)
	assert.Equal(t, int64(1000), summary.MeanPrice)
}

func TestSummarize_InvalidCategory(t *testing.T) {
	summaryUC, _ := newTestSummaryUC(t)

	_, err := summaryUC.Summarize(context.Background(), "toys")

	assert.ErrorIs(t, err, e.ErrInvalidCategory)
}
