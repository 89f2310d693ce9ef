package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

type OutboxEventRepo struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
	conv   converter.OutboxEventConverter
}

func NewOutboxEventRepo(pool *pgxpool.Pool, getter *trmpgx.CtxGetter, conv converter.OutboxEventConverter) *OutboxEventRepo {
	return &OutboxEventRepo{
		pool:   pool,
		getter: getter,
		conv:   conv,
	}
}

// Create записывает событие в outbox в текущей транзакции
// и будит воркера через NOTIFY.
func (o *OutboxEventRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	db := o.getter.DefaultTrOrDB(ctx, o.pool)

	model := o.conv.ToModel(event)
	query := `
		INSERT INTO outbox_events (
			event_id,
			event_type,
			product_id,
			payload,
			status,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`

	if err := db.QueryRow(ctx, query,
		model.EventID,
		model.EventType,
		model.ProductID,
		model.Payload,
		model.Status,
		model.CreatedAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: event with id %s already exists", whereami.WhereAmI(), event.EventID)
		}

		return nil, fmt.Errorf("%s: failed to insert event: %w", whereami.WhereAmI(), err)
	}

	if _, err := db.Exec(ctx, "NOTIFY outbox_pending;"); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}

// GetAndMarkAsProcessing забирает пачку ожидающих событий, помечая их
// как обрабатываемые. FOR UPDATE SKIP LOCKED исключает гонку воркеров.
func (o *OutboxEventRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	tx, err := o.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", whereami.WhereAmI(), err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	query := `
		UPDATE outbox_events
        SET status = $1, processing_started_at = now()
        WHERE id IN (
            SELECT id FROM outbox_events
            WHERE status = $2
            ORDER BY created_at
            LIMIT $3
            FOR UPDATE SKIP LOCKED
        )
        RETURNING id, event_id, event_type, product_id, payload, status, created_at, processed_at
	`

	rows, err := tx.Query(ctx, query, usecase.Processing, usecase.Pending, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query pending events: %w", whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.OutboxEventModel
	for rows.Next() {
		var model converter.OutboxEventModel

		err := rows.Scan(
			&model.ID,
			&model.EventID,
			&model.EventType,
			&model.ProductID,
			&model.Payload,
			&model.Status,
			&model.CreatedAt,
			&model.ProcessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iterator error: %w", whereami.WhereAmI(), err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: failed to commit transaction: %w", whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), nil
}

func (o *OutboxEventRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	query := `
		UPDATE outbox_events
		SET status = $1, processed_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := o.pool.Exec(ctx, query, usecase.Processed, id, usecase.Processing)
	if err != nil {
		return fmt.Errorf("%s: failed to mark event %d as processed: %w", whereami.WhereAmI(), id, err)
	}

	if result.RowsAffected() == 0 {
		// Событие уже было обработано другим worker'ом или не существует
		return nil
	}

	return nil
}

func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
