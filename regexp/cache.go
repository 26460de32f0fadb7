package regexp

import (
	"sync"

	"go.dw1.io/fastcache"
)

const cacheSize = 4_096

var (
	cacheOnce sync.Once
	compiled  *fastcache.Cache[string, *Regexp]
)

func getCache() *fastcache.Cache[string, *Regexp] {
	cacheOnce.Do(func() {
		compiled = fastcache.New[string, *Regexp](cacheSize)
	})

	return compiled
}
