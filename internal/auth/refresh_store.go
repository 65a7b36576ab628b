package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RefreshStore tracks issued refresh token IDs so they can be revoked on
// logout and rotated on refresh. A token whose jti is absent here is dead no
// matter what its signature says.
type RefreshStore struct {
	rdb *redis.Client
}

func NewRefreshStore(rdb *redis.Client) *RefreshStore {
	return &RefreshStore{rdb: rdb}
}

func key(jti string) string {
	return fmt.Sprintf("refresh:%s", jti)
}

func (s *RefreshStore) Save(ctx context.Context, jti string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, key(jti), userID, ttl).Err()
}

func (s *RefreshStore) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RefreshStore) Revoke(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, key(jti)).Err()
}
