package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = "id, name, price, category, created_at, updated_at, deleted_at"

// sortColumns — допустимые поля сортировки и их колонки.
// Имя поля приходит из клиентской директивы, поэтому в запрос
// подставляются только значения из этого списка.
var sortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"price":      "price",
	"category":   "category",
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
}

// ProductRepo реализует хранилище каталога поверх PostgreSQL.
type ProductRepo struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
	conv   converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, getter *trmpgx.CtxGetter, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool:   pool,
		getter: getter,
		conv:   conv,
	}
}

// FindActive возвращает страницу записей с deleted_at IS NULL.
func (p *ProductRepo) FindActive(ctx context.Context, category *domain.Category, page usecase.PageReq, order usecase.Order) (*usecase.RecordPage, error) {
	return p.findPage(ctx, false, category, page, order)
}

// FindDeleted возвращает страницу логически удалённых записей.
func (p *ProductRepo) FindDeleted(ctx context.Context, category *domain.Category, page usecase.PageReq, order usecase.Order) (*usecase.RecordPage, error) {
	return p.findPage(ctx, true, category, page, order)
}

// FindByID возвращает запись независимо от признака удаления, nil при отсутствии.
func (p *ProductRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Price, &model.Category,
		&model.CreatedAt, &model.UpdatedAt, &model.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Save вставляет запись при нулевом ID, иначе обновляет существующую.
// Запись идёт через транзакцию из контекста, если она открыта.
func (p *ProductRepo) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	db := p.getter.DefaultTrOrDB(ctx, p.pool)
	model := p.conv.ToModel(product)

	var row pgx.Row
	if model.ID == 0 {
		query := fmt.Sprintf(`
			INSERT INTO products (name, price, category, created_at, updated_at, deleted_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING %s
		`, productColumns)

		row = db.QueryRow(ctx, query,
			model.Name, model.Price, model.Category,
			model.CreatedAt, model.UpdatedAt, model.DeletedAt,
		)
	} else {
		query := fmt.Sprintf(`
			UPDATE products
			SET name = $2, price = $3, category = $4, updated_at = $5, deleted_at = $6
			WHERE id = $1
			RETURNING %s
		`, productColumns)

		row = db.QueryRow(ctx, query,
			model.ID, model.Name, model.Price, model.Category,
			model.UpdatedAt, model.DeletedAt,
		)
	}

	var saved converter.ProductModel
	if err := row.Scan(
		&saved.ID, &saved.Name, &saved.Price, &saved.Category,
		&saved.CreatedAt, &saved.UpdatedAt, &saved.DeletedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&saved), nil
}

// ListActive возвращает весь активный набор без пагинации, только для агрегации.
func (p *ProductRepo) ListActive(ctx context.Context, category *domain.Category) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE deleted_at IS NULL AND ($1::text IS NULL OR category = $1)
		ORDER BY id
	`, productColumns)

	rows, err := p.pool.Query(ctx, query, categoryArg(category))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

func (p *ProductRepo) findPage(ctx context.Context, deleted bool, category *domain.Category, page usecase.PageReq, order usecase.Order) (*usecase.RecordPage, error) {
	orderBy, err := orderClause(order)
	if err != nil {
		return nil, err
	}

	partition := "deleted_at IS NULL"
	if deleted {
		partition = "deleted_at IS NOT NULL"
	}

	filter := categoryArg(category)

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM products
		WHERE %s AND ($1::text IS NULL OR category = $1)
	`, partition)

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, filter).Scan(&total); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE %s AND ($1::text IS NULL OR category = $1)
		%s
		LIMIT $2 OFFSET $3
	`, productColumns, partition, orderBy)

	rows, err := p.pool.Query(ctx, query, filter, page.Size, page.Page*page.Size)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	items, err := p.scanProducts(rows)
	if err != nil {
		return nil, err
	}

	return usecase.NewRecordPage(items, total, page), nil
}

func (p *ProductRepo) scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Price, &model.Category,
			&model.CreatedAt, &model.UpdatedAt, &model.DeletedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// orderClause строит ORDER BY по допустимой колонке.
func orderClause(order usecase.Order) (string, error) {
	column, ok := sortColumns[order.Field]
	if !ok {
		return "", e.Wrap(order.Field, e.ErrInvalidSortField)
	}

	direction := "ASC"
	if order.Desc {
		direction = "DESC"
	}

	return fmt.Sprintf("ORDER BY %s %s", column, direction), nil
}

func categoryArg(category *domain.Category) *string {
	if category == nil {
		return nil
	}

	s := category.String()
	return &s
}
