package explorer

import (
	"context"

	"github.com/pkg/errors"
)

// Client implementation serving recorded data, for tests. Lookups follow the
// same semantics as the live API for the parameters used in this codebase.
type RecordedClient struct {
	txs    map[string]*Transaction
	assets map[string]*Asset

	// When set, every call fails with this error
	Err error
}

func NewRecordedClient() *RecordedClient {
	return &RecordedClient{
		txs:    make(map[string]*Transaction),
		assets: make(map[string]*Asset),
	}
}

func (c *RecordedClient) AddTransaction(tx *Transaction) *RecordedClient {
	c.txs[tx.ID] = tx
	return c
}

func (c *RecordedClient) AddAsset(asset *Asset) *RecordedClient {
	c.assets[asset.ID] = asset
	return c
}

func (c *RecordedClient) GetTransaction(ctx context.Context, txID string) (*Transaction, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	if tx, ok := c.txs[txID]; ok {
		return tx, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "transaction %s", txID)
}

func (c *RecordedClient) ListTransactions(ctx context.Context, params *TxQueryParams) (*TxList, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	result := TxList{Transactions: make([]*Transaction, 0)}
	for _, tx := range c.txs {
		if !matches(tx, params) {
			continue
		}
		result.Transactions = append(result.Transactions, tx)
		if params != nil && params.Limit > 0 && len(result.Transactions) == params.Limit {
			break
		}
	}
	return &result, nil
}

func (c *RecordedClient) GetAsset(ctx context.Context, assetID string) (*Asset, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	if asset, ok := c.assets[assetID]; ok {
		return asset, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "asset %s", assetID)
}

func matches(tx *Transaction, params *TxQueryParams) bool {
	if params == nil {
		return true
	}
	if len(params.ChainID) > 0 && tx.ChainID != params.ChainID {
		return false
	}
	if len(params.TxType) > 0 && tx.Type != params.TxType {
		return false
	}
	if len(params.BlockID) > 0 && tx.TxBlockID != params.BlockID {
		return false
	}
	if len(params.AssetID) > 0 {
		if _, ok := tx.InputTotals[params.AssetID]; !ok {
			if _, ok := tx.OutputTotals[params.AssetID]; !ok {
				return false
			}
		}
	}
	if len(params.Address) > 0 && !hasAddress(tx, params.Address) {
		return false
	}
	return true
}

func hasAddress(tx *Transaction, address string) bool {
	for _, in := range tx.Inputs {
		if in.Output != nil && contains(in.Output.Addresses, address) {
			return true
		}
	}
	for _, out := range tx.Outputs {
		if contains(out.Addresses, address) {
			return true
		}
	}
	return false
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
