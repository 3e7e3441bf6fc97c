// Package db defines the storage interfaces consumed by repositories.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
type Store interface {
	Pinger
	JSONStore
	KVStore
	KeyStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// JSONStore provides JSON document operations.
type JSONStore interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// KeyStore provides key lifecycle and enumeration operations.
type KeyStore interface {
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}
