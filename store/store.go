package store

import (
	"sync"

	"github.com/ava-labs/ava-explorer/normalize"
)

// Query contexts whose latest result is kept. Each context keeps its own
// result value; there is no shared default object.
type QueryContext string

const (
	QueryRecent     QueryContext = "recent"
	QueryByAsset    QueryContext = "asset"
	QueryByAddress  QueryContext = "address"
	QueryByChain    QueryContext = "blockchain"
	QueryUnfiltered QueryContext = "all"
)

// In-memory state of the latest normalized results, the presentation-layer
// cache. Holds finished results only, never partially normalized data.
type Store struct {
	mu sync.RWMutex

	tx      *normalize.Transaction
	queries map[QueryContext]*normalize.TxQuery
}

func New() *Store {
	return &Store{
		queries: make(map[QueryContext]*normalize.TxQuery),
	}
}

func (s *Store) SetTransaction(tx *normalize.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tx = tx
}

func (s *Store) Transaction() *normalize.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tx
}

func (s *Store) SetQuery(qc QueryContext, result *normalize.TxQuery) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queries[qc] = result
}

// Query returns the latest result for the context, or a fresh empty result
// if none was stored yet
func (s *Store) Query(qc QueryContext) *normalize.TxQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if result, ok := s.queries[qc]; ok {
		return result
	}
	return normalize.NewTxQuery()
}
