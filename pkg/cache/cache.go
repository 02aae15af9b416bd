// Package cache stores computed cabling results and rendered artifacts.
//
// The CLI caches on disk with [FileCache]; the API server shares a Redis
// instance through [RedisCache]. [NullCache] disables caching. Keys are built
// by a [Keyer] so that every backend sees the same key layout.
//
// # Keys
//
// Inputs are hashed before they become keys. A result key covers everything
// that changes a wall's cabling (grid, knockouts, overrides, routing); an
// artifact key adds the output format on top of the result hash:
//
//	k := cache.NewDefaultKeyer()
//	rk := k.ResultKey(cache.Hash(input))                    // result:<sha256>
//	ak := k.ArtifactKey(rk, cache.ArtifactKeyOpts{Format: "svg"})
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ResultKey is the key of a computed cabling result.
	ResultKey(inputHash string) string
	// BOMKey is the key of a project-wide bill of materials.
	BOMKey(projectHash string) string
	// ArtifactKey is the key of a rendered diagram.
	ArtifactKey(resultHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Title  string `json:"title,omitempty"`
}

// DefaultKeyer is the standard key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements Keyer.
func (DefaultKeyer) ResultKey(inputHash string) string {
	return "result:" + inputHash
}

// BOMKey implements Keyer.
func (DefaultKeyer) BOMKey(projectHash string) string {
	return "bom:" + projectHash
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(resultHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", resultHash, opts)
}

var _ Keyer = DefaultKeyer{}

// TTLs per entry kind. Results depend only on their inputs, so they live
// long; artifacts are cheap to rebuild.
const (
	TTLResult   = 30 * 24 * time.Hour
	TTLBOM      = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
