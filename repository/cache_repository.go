package repository

// CacheRepository caches serialized amortization schedules keyed by their
// input parameters. A miss is reported via the bool, never an error.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
