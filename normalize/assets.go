package normalize

import (
	"context"

	"github.com/ava-labs/ava-explorer/explorer"
	"github.com/ava-labs/ava-explorer/utils"

	"golang.org/x/sync/errgroup"
)

// Source of asset metadata (symbol, denomination, NFT flag) needed to scale
// raw amounts
type AssetSource interface {
	Asset(ctx context.Context, assetID string) (*explorer.Asset, error)
}

// AssetSource that can resolve several assets ahead of time
type AssetPrefetcher interface {
	Prefetch(ctx context.Context, assetIDs []string) error
}

// Asset source backed by the explorer API with a bounded cache. Asset
// denomination is fixed at asset creation, so cached entries never go stale;
// the bound only limits memory.
type CachedAssetSource struct {
	client explorer.Client
	cache  utils.Cache[string, *explorer.Asset]
}

func NewCachedAssetSource(client explorer.Client, cacheSize int) *CachedAssetSource {
	return &CachedAssetSource{
		client: client,
		cache:  utils.NewCache[string, *explorer.Asset](cacheSize),
	}
}

func (s *CachedAssetSource) Asset(ctx context.Context, assetID string) (*explorer.Asset, error) {
	if asset, ok := s.cache.Get(assetID); ok {
		return asset, nil
	}
	asset, err := s.client.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	s.cache.Add(assetID, asset)
	return asset, nil
}

// Prefetch resolves all uncached assets concurrently. Normalization is
// order-independent across assets, so the fan-out does not change observable
// results.
func (s *CachedAssetSource) Prefetch(ctx context.Context, assetIDs []string) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, assetID := range utils.Distinct(assetIDs) {
		if _, ok := s.cache.Get(assetID); ok {
			continue
		}
		assetID := assetID
		g.Go(func() error {
			asset, err := s.client.GetAsset(gCtx, assetID)
			if err != nil {
				return err
			}
			s.cache.Add(assetID, asset)
			return nil
		})
	}
	return g.Wait()
}
