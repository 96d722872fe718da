package cas

import (
	"context"

	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/tscache/internal/core/ports"
)

// Cache implements ports.Cache over one or more blob stores, nearest first.
// A hit in a farther tier is copied into every nearer tier.
type Cache struct {
	codec *Codec
	tiers []ports.BlobStore
}

// NewCache creates a Cache reading tiers in order.
func NewCache(codec *Codec, tiers ...ports.BlobStore) *Cache {
	return &Cache{codec: codec, tiers: tiers}
}

// Get returns the cached output for key.
func (c *Cache) Get(ctx context.Context, key domain.CacheParams) (string, bool, error) {
	address := c.codec.Address(key)

	for i, tier := range c.tiers {
		data, ok, err := tier.Get(ctx, address)
		if err != nil {
			return "", false, err
		}
		if !ok {
			continue
		}

		value, hit, err := c.codec.Decode(key, data)
		if err != nil {
			return "", false, err
		}
		if !hit {
			continue
		}

		for _, nearer := range c.tiers[:i] {
			if err := nearer.Put(ctx, address, data); err != nil {
				return "", false, err
			}
		}
		return value, true, nil
	}

	return "", false, nil
}

// Set stores value under key in every tier.
func (c *Cache) Set(ctx context.Context, key domain.CacheParams, value string) error {
	data, err := c.codec.Encode(key, value)
	if err != nil {
		return err
	}

	address := c.codec.Address(key)
	for _, tier := range c.tiers {
		if err := tier.Put(ctx, address, data); err != nil {
			return err
		}
	}
	return nil
}
