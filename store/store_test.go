package store

import (
	"testing"

	"github.com/ava-labs/ava-explorer/normalize"

	"github.com/stretchr/testify/require"
)

func TestStoreTransaction(t *testing.T) {
	s := New()
	require.Nil(t, s.Transaction())

	tx := &normalize.Transaction{ID: "tx1"}
	s.SetTransaction(tx)
	require.Same(t, tx, s.Transaction())
}

func TestStoreQueryContexts(t *testing.T) {
	s := New()

	recent := normalize.NewTxQuery()
	recent.Transactions = append(recent.Transactions, &normalize.Transaction{ID: "tx1"})
	s.SetQuery(QueryRecent, recent)

	byAsset := normalize.NewTxQuery()
	byAsset.Transactions = append(byAsset.Transactions, &normalize.Transaction{ID: "tx2"})
	s.SetQuery(QueryByAsset, byAsset)

	// Contexts never bleed into each other
	require.Equal(t, "tx1", s.Query(QueryRecent).Transactions[0].ID)
	require.Equal(t, "tx2", s.Query(QueryByAsset).Transactions[0].ID)
}

func TestStoreEmptyQuery(t *testing.T) {
	s := New()

	result := s.Query(QueryByAddress)
	require.NotNil(t, result)
	require.Empty(t, result.Transactions)

	// Mutating the empty result must not affect later reads
	result.Transactions = append(result.Transactions, &normalize.Transaction{ID: "tx1"})
	require.Empty(t, s.Query(QueryByAddress).Transactions)
}
