package mem

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// TokenDenylist remembers revoked access tokens until they would have expired anyway.
type TokenDenylist interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
}

type tokenDenylist struct {
	store *cache.Cache
}

func NewTokenDenylist() TokenDenylist {
	return &tokenDenylist{
		store: cache.New(time.Hour, 10*time.Minute),
	}
}

func (d *tokenDenylist) Revoke(token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	d.store.Set(token, struct{}{}, ttl)
}

func (d *tokenDenylist) IsRevoked(token string) bool {
	_, found := d.store.Get(token)
	return found
}
