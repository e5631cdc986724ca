package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	// カート退避キー: cart:session:{session_id} -> LineItemのJSON配列
	keyCartSession = "cart:session:%s"
)

// 放置されたセッションのカートはTTLで消える
var TTLCart = 24 * time.Hour

// RedisCartStore はRedisをセッション単位のカート退避先として使う。
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

// NewClient はCartStore用のRedisクライアントを作る。
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func cartKey(sessionID string) string {
	return fmt.Sprintf(keyCartSession, sessionID)
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) ([]model.LineItem, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repo.ErrNoSavedCart
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []model.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		//壊れた保存値で初期化を落とさない。「無い」扱いにする。
		log.Printf("cartstore: malformed saved cart for session=%s: %v", sessionID, err)
		return nil, repo.ErrNoSavedCart
	}
	return items, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, items []model.LineItem) error {
	if items == nil {
		items = []model.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), data, TTLCart).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
