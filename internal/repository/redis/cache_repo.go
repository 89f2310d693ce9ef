package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/catalog-service/internal/cfg"
	"github.com/DRSN-tech/catalog-service/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/clients"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo кэширует представления продуктов для ускорения чтения по ID.
// Любой сбой кэша трактуется как промах, запросы не падают из-за Redis.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductViewConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductViewConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProduct возвращает закэшированное представление, nil при промахе.
func (c *CacheRepo) GetProduct(ctx context.Context, id int64) (*usecase.ProductView, error) {
	data, err := c.client.Client.Get(ctx, c.productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductViewRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), c.productKey(id)).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // повреждённая запись считается промахом
	}

	if model.ID != id {
		c.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", id, model.ID)
		if err := c.client.Client.Del(context.Background(), c.productKey(id)).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return c.conv.ToUseCase(&model), nil
}

// SetProduct кэширует представление с TTL из конфигурации.
func (c *CacheRepo) SetProduct(ctx context.Context, view usecase.ProductView) error {
	model := c.conv.ToRedisModel(view)

	data, err := json.Marshal(model)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.productKey(model.ID), data, c.cfg.ProductTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteProduct убирает представление из кэша.
func (c *CacheRepo) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.client.Client.Del(ctx, c.productKey(id)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// productKey возвращает Redis-ключ для одного продукта
func (c *CacheRepo) productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
