package memcache_fx

import (
	"go.uber.org/fx"

	mem "aitrip/pkg/memcache"
)

var Module = fx.Provide(provideTokenDenylist)

func provideTokenDenylist() mem.TokenDenylist {
	return mem.NewTokenDenylist()
}
