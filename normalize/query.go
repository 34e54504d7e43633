package normalize

import (
	"context"

	"github.com/ava-labs/ava-explorer/explorer"
	"github.com/ava-labs/ava-explorer/logger"

	"github.com/pkg/errors"
)

// One normalized page of transactions with pagination cursors. Anomalies
// lists records that could not be normalized; the page itself survives them.
type TxQuery struct {
	StartTime    string         `json:"startTime"`
	EndTime      string         `json:"endTime"`
	Next         string         `json:"next"`
	Transactions []*Transaction `json:"transactions"`
	Anomalies    []Anomaly      `json:"anomalies"`
}

// NewTxQuery is the explicit empty result for a query context. Each caller
// gets its own value, results are never shared mutable state.
func NewTxQuery() *TxQuery {
	return &TxQuery{
		Transactions: make([]*Transaction, 0),
		Anomalies:    make([]Anomaly, 0),
	}
}

type Assembler struct {
	normalizer *Normalizer
}

func NewAssembler(normalizer *Normalizer) *Assembler {
	return &Assembler{normalizer: normalizer}
}

// Assemble normalizes every transaction of a raw page. A record that fails
// normalization is reported as an anomaly instead of discarding the page; a
// failed or cancelled upstream fetch fails the whole call, partially
// normalized pages are never exposed.
func (a *Assembler) Assemble(ctx context.Context, list *explorer.TxList) (*TxQuery, error) {
	query := NewTxQuery()
	query.StartTime = list.StartTime
	query.EndTime = list.EndTime
	query.Next = list.Next

	for _, raw := range list.Transactions {
		tx, err := a.normalizer.Normalize(ctx, raw)
		if err != nil {
			if errors.Is(err, explorer.ErrFetchFailed) || ctx.Err() != nil {
				return nil, err
			}
			recordsFailed.Inc()
			query.Anomalies = append(query.Anomalies, Anomaly{TxID: raw.ID, Message: err.Error()})
			logger.Warn("Skipping transaction %s: %v", raw.ID, err)
			continue
		}
		transactionsNormalized.Inc()
		anomaliesFound.Add(float64(len(tx.Anomalies)))
		query.Transactions = append(query.Transactions, tx)
	}
	return query, nil
}
