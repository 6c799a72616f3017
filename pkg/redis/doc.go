// Package redis opens the redis client backing the cached usage counters.
package redis
