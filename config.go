package regexcache

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "REGEXCACHE"

// Config collects the library's tunables. CacheSize bounds the compiled
// pattern caches; the result cache fields configure the regexp facade's
// memoization layer and have no effect on the core types.
type Config struct {
	// CacheSize is the capacity of a compiled pattern cache, in patterns.
	CacheSize int `json:"cache_size"`
	// ResultCacheExpire is how long the regexp facade keeps a memoized
	// operation result, in seconds.
	ResultCacheExpire int `json:"result_cache_expire"`
	// DisableResultCache turns the facade's result memoization off. Pattern
	// compilation stays cached either way.
	DisableResultCache bool `json:"disable_result_cache"`
}

// Default is the configuration used when nothing is overridden.
var Default = Config{
	CacheSize:         1024,
	ResultCacheExpire: 60,
}

// Load sets conf to Default overlaid with REGEXCACHE_* environment
// variables.
func Load(conf *Config) error {
	*conf = Default
	if err := envconfig.Process(envPrefix, conf); err != nil {
		return fmt.Errorf("failed to process config env vars: %v", err)
	}

	return nil
}

// ResultCacheTTL returns ResultCacheExpire as a time.Duration.
func (c Config) ResultCacheTTL() time.Duration {
	return time.Duration(c.ResultCacheExpire) * time.Second
}
