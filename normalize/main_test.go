package normalize

import (
	"github.com/ava-labs/ava-explorer/explorer"
)

// Fee-paying native asset, denominated to 6 places in the fixtures
const feeAssetID = "FvwEAhmxKfeiG8SnEvq42hc6whRyY3EFYAvebMqDNDGCgxN5Z"

const nftAssetID = "2pYGetDWyKdHxpFxh2LHeoLNCH6H5vxxCxHQtFnnFaYxLsqtHC"

const xChainID = "2oYMBNV4eNHyqk2fjjV5nVQLDbtmNJzq5s3qs3Lo6ftnC6FByM"

func newRecordedClient() *explorer.RecordedClient {
	return explorer.NewRecordedClient().
		AddAsset(&explorer.Asset{ID: feeAssetID, Symbol: "AVAX", Denomination: 6}).
		AddAsset(&explorer.Asset{ID: nftAssetID, Symbol: "NFT", Denomination: 0, Nft: 1})
}

func newTestNormalizer(client *explorer.RecordedClient) *Normalizer {
	return NewNormalizer(NewCachedAssetSource(client, 100), feeAssetID)
}

func transferOutput(id string, assetID string, amount string, addresses ...string) *explorer.Output {
	return &explorer.Output{
		ID:         id,
		ChainID:    xChainID,
		AssetID:    assetID,
		Amount:     amount,
		OutputType: 7,
		Addresses:  addresses,
	}
}
