package context

import (
	globalConfig "github.com/ava-labs/ava-explorer/config"
	"github.com/ava-labs/ava-explorer/explorer"
	"github.com/ava-labs/ava-explorer/normalize"
	"github.com/ava-labs/ava-explorer/services/config"
	"github.com/ava-labs/ava-explorer/store"
)

// BuildTestContext wires the services context on a recorded client instead
// of the live API
func BuildTestContext(cfg *config.Config, client *explorer.RecordedClient) (ServicesContext, error) {
	globalConfig.GlobalConfigCallback.Call(cfg)

	assets := normalize.NewCachedAssetSource(client, cfg.Chain.AssetCacheSize)
	return &servicesContext{
		config:  cfg,
		client:  client,
		service: normalize.NewService(client, assets, cfg.Chain.AvaxAssetID),
		store:   store.New(),
	}, nil
}
