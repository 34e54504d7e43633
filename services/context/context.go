package context

import (
	globalConfig "github.com/ava-labs/ava-explorer/config"
	"github.com/ava-labs/ava-explorer/explorer"
	"github.com/ava-labs/ava-explorer/normalize"
	"github.com/ava-labs/ava-explorer/services/config"
	"github.com/ava-labs/ava-explorer/store"
)

type ServicesContext interface {
	Config() *config.Config
	Client() explorer.Client
	Service() *normalize.Service
	Store() *store.Store
}

type servicesContext struct {
	config  *config.Config
	client  explorer.Client
	service *normalize.Service
	store   *store.Store
}

func BuildContext() (ServicesContext, error) {
	cfg, err := config.BuildConfig()
	if err != nil {
		return nil, err
	}
	globalConfig.GlobalConfigCallback.Call(cfg)

	client := explorer.NewClient(&cfg.Explorer)
	assets := normalize.NewCachedAssetSource(client, cfg.Chain.AssetCacheSize)

	return &servicesContext{
		config:  cfg,
		client:  client,
		service: normalize.NewService(client, assets, cfg.Chain.AvaxAssetID),
		store:   store.New(),
	}, nil
}

func (c *servicesContext) Config() *config.Config { return c.config }

func (c *servicesContext) Client() explorer.Client { return c.client }

func (c *servicesContext) Service() *normalize.Service { return c.service }

func (c *servicesContext) Store() *store.Store { return c.store }
