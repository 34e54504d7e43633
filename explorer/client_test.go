package explorer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/ava-explorer/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&config.ExplorerAPIConfig{
		TxURL:     server.URL + "/transactions",
		AssetsURL: server.URL + "/assets",
		Timeout:   time.Second,
	})
}

func TestClientGetTransaction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transactions/tx1", r.URL.Path)
		w.Write([]byte(`{"id":"tx1","chainID":"chain1","type":"base","txFee":1000}`))
	})

	tx, err := client.GetTransaction(context.Background(), "tx1")
	require.NoError(t, err)
	require.Equal(t, "tx1", tx.ID)
	require.Equal(t, "chain1", tx.ChainID)
	require.Equal(t, uint64(1000), tx.Txfee)
}

func TestClientListTransactions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transactions", r.URL.Path)
		query := r.URL.Query()
		require.Equal(t, "chain1", query.Get("chainID"))
		require.Equal(t, "base", query.Get("type"))
		require.Equal(t, "25", query.Get("limit"))
		require.Empty(t, query.Get("address"))
		w.Write([]byte(`{"transactions":[{"id":"tx1"}],"next":"cursor"}`))
	})

	list, err := client.ListTransactions(context.Background(), &TxQueryParams{
		ChainID: "chain1",
		TxType:  "base",
		Limit:   25,
	})
	require.NoError(t, err)
	require.Len(t, list.Transactions, 1)
	require.Equal(t, "cursor", list.Next)
}

func TestClientGetAsset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/assets/asset1", r.URL.Path)
		w.Write([]byte(`{"id":"asset1","symbol":"AVAX","denomination":9}`))
	})

	asset, err := client.GetAsset(context.Background(), "asset1")
	require.NoError(t, err)
	require.Equal(t, uint8(9), asset.Denomination)
	require.False(t, asset.IsNFT())
}

func TestClientNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetTransaction(context.Background(), "missing")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestClientUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetTransaction(context.Background(), "tx1")
	require.True(t, errors.Is(err, ErrFetchFailed))
}

func TestClientMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":`))
	})

	_, err := client.GetTransaction(context.Background(), "tx1")
	require.True(t, errors.Is(err, ErrFetchFailed))
}
