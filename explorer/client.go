package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ava-labs/ava-explorer/config"

	"github.com/pkg/errors"
)

var (
	// Upstream API unavailable, timed out or returned garbage. Retrying is
	// the caller's business, not ours.
	ErrFetchFailed = errors.New("fetch failed")

	// The requested record does not exist upstream
	ErrNotFound = errors.New("not found")
)

// Parameters of a transaction list query. Zero values are omitted from the
// request.
type TxQueryParams struct {
	Address    string
	AssetID    string
	ChainID    string
	BlockID    string
	TxType     string
	Limit      int
	StartTime  string
	EndTime    string
	NextCursor string
}

func (p *TxQueryParams) values() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}
	set := func(key, value string) {
		if len(value) > 0 {
			values.Set(key, value)
		}
	}
	set("address", p.Address)
	set("assetID", p.AssetID)
	set("chainID", p.ChainID)
	set("blockID", p.BlockID)
	set("type", p.TxType)
	set("startTime", p.StartTime)
	set("endTime", p.EndTime)
	set("next", p.NextCursor)
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	return values
}

// Client for the explorer indexing API delivering raw (already finalized)
// transactions, UTXOs and asset metadata
type Client interface {
	GetTransaction(ctx context.Context, txID string) (*Transaction, error)
	ListTransactions(ctx context.Context, params *TxQueryParams) (*TxList, error)
	GetAsset(ctx context.Context, assetID string) (*Asset, error)
}

type httpClient struct {
	txURL     string
	assetsURL string
	client    *http.Client
}

func NewClient(cfg *config.ExplorerAPIConfig) Client {
	return &httpClient{
		txURL:     strings.TrimSuffix(cfg.TxURL, "/"),
		assetsURL: strings.TrimSuffix(cfg.AssetsURL, "/"),
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *httpClient) GetTransaction(ctx context.Context, txID string) (*Transaction, error) {
	tx := Transaction{}
	err := c.get(ctx, fmt.Sprintf("%s/%s", c.txURL, url.PathEscape(txID)), nil, &tx)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *httpClient) ListTransactions(ctx context.Context, params *TxQueryParams) (*TxList, error) {
	list := TxList{}
	err := c.get(ctx, c.txURL, params.values(), &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *httpClient) GetAsset(ctx context.Context, assetID string) (*Asset, error) {
	asset := Asset{}
	err := c.get(ctx, fmt.Sprintf("%s/%s", c.assetsURL, url.PathEscape(assetID)), nil, &asset)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *httpClient) get(ctx context.Context, rawURL string, query url.Values, result any) error {
	if len(query) > 0 {
		rawURL = rawURL + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrapf(ErrFetchFailed, "building request for %s: %v", rawURL, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(ErrFetchFailed, "GET %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(ErrNotFound, "GET %s", rawURL)
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrFetchFailed, "GET %s: status %d", rawURL, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return errors.Wrapf(ErrFetchFailed, "decoding response of %s: %v", rawURL, err)
	}
	return nil
}
