package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const selectionTTL = 24 * time.Hour

// RedisStore persists each dealer's selection per entity list so checkbox
// state survives navigation between dashboard views.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

type storedSelection struct {
	IDs         []string `json:"ids"`
	AllSelected bool     `json:"all_selected"`
}

func selectionKey(dealerID, entity string) string {
	return fmt.Sprintf("admin:selection:%s:%s", dealerID, entity)
}

func (s *RedisStore) Load(ctx context.Context, dealerID, entity string) (*SelectionSet, error) {
	set := New()

	raw, err := s.rdb.Get(ctx, selectionKey(dealerID, entity)).Result()
	if errors.Is(err, redis.Nil) {
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load selection: %w", err)
	}

	var stored storedSelection
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("decode selection: %w", err)
	}

	for _, recordID := range stored.IDs {
		set.ToggleOne(recordID, true)
	}
	set.allSelected = stored.AllSelected
	return set, nil
}

func (s *RedisStore) Save(ctx context.Context, dealerID, entity string, set *SelectionSet) error {
	payload, err := json.Marshal(storedSelection{
		IDs:         set.IDs(),
		AllSelected: set.AllSelected(),
	})
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	if err := s.rdb.Set(ctx, selectionKey(dealerID, entity), payload, selectionTTL).Err(); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, dealerID, entity string) error {
	return s.rdb.Del(ctx, selectionKey(dealerID, entity)).Err()
}
