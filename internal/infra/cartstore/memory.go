package cartstore

import (
	"context"
	"encoding/json"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// MemoryCartStore はRedisなしで動かすためのインメモリ実装（開発・テスト用）。
// Redis実装と同じく保存値はJSONで持ち、キーの有無を区別する。
type MemoryCartStore struct {
	mu    sync.RWMutex
	slots map[string][]byte // sessionID -> LineItemのJSON配列
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{slots: make(map[string][]byte)}
}

func (s *MemoryCartStore) Load(ctx context.Context, sessionID string) ([]model.LineItem, error) {
	s.mu.RLock()
	data, ok := s.slots[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, repo.ErrNoSavedCart
	}

	var items []model.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		//壊れた保存値は「無い」扱い
		return nil, repo.ErrNoSavedCart
	}
	return items, nil
}

func (s *MemoryCartStore) Save(ctx context.Context, sessionID string, items []model.LineItem) error {
	if items == nil {
		items = []model.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.slots[sessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.slots, sessionID)
	s.mu.Unlock()
	return nil
}

// テストから「スロットが存在するか」を確認するために使う。
func (s *MemoryCartStore) Has(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.slots[sessionID]
	return ok
}

// テスト用：壊れたJSONを直接流し込む。
func (s *MemoryCartStore) PutRaw(sessionID string, raw []byte) {
	s.mu.Lock()
	s.slots[sessionID] = raw
	s.mu.Unlock()
}
