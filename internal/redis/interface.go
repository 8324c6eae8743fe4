package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis shared by single, cluster and sentinel
// clients. Repositories depend on it rather than a concrete client.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}

// Nil is returned by the client when a key does not exist
var Nil = redis.Nil
