package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/domain"
)

const salesKey = "pos:sales"

// RedisStore mirrors the ledger into a redis hash, one field per sale id.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisStore(addr string, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("Connected to redis", zap.String("addr", addr))

	return &RedisStore{client: client, logger: logger}, nil
}

func (s *RedisStore) PutSale(ctx context.Context, sale domain.Sale) error {
	b, err := json.Marshal(encodeSale(sale))
	if err != nil {
		return fmt.Errorf("failed to marshal sale: %w", err)
	}
	if err := s.client.HSet(ctx, salesKey, sale.ID, b).Err(); err != nil {
		return fmt.Errorf("failed to store sale: %w", err)
	}
	return nil
}

func (s *RedisStore) DeleteSale(ctx context.Context, id string) error {
	if err := s.client.HDel(ctx, salesKey, id).Err(); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return nil
}

func (s *RedisStore) LoadSales(ctx context.Context) ([]domain.Sale, error) {
	fields, err := s.client.HGetAll(ctx, salesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	sales := make([]domain.Sale, 0, len(fields))
	for id, raw := range fields {
		var record saleRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sale %s: %w", id, err)
		}
		sale, err := decodeSale(record)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	sortByTimestamp(sales)
	return sales, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
