package normalize

import (
	"context"
	"testing"

	"github.com/ava-labs/ava-explorer/explorer"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestAssembler(client *explorer.RecordedClient) *Assembler {
	return NewAssembler(newTestNormalizer(client))
}

func TestAssemblePage(t *testing.T) {
	tx1 := newBaseTx("tx1")
	tx1.Outputs = []*explorer.Output{transferOutput("o1", feeAssetID, "100", "addr1")}
	tx2 := newBaseTx("tx2")
	tx2.Outputs = []*explorer.Output{transferOutput("o2", feeAssetID, "200", "addr2")}

	query, err := newTestAssembler(newRecordedClient()).Assemble(context.Background(), &explorer.TxList{
		StartTime:    "2023-02-15T00:00:00Z",
		EndTime:      "2023-02-16T00:00:00Z",
		Next:         "cursor",
		Transactions: []*explorer.Transaction{tx1, tx2},
	})
	require.NoError(t, err)
	require.Len(t, query.Transactions, 2)
	require.Empty(t, query.Anomalies)
	require.Equal(t, "cursor", query.Next)
	require.Equal(t, "2023-02-15T00:00:00Z", query.StartTime)
}

func TestAssembleRecordFailureIsolated(t *testing.T) {
	good := newBaseTx("tx1")
	good.Outputs = []*explorer.Output{transferOutput("o1", feeAssetID, "100", "addr1")}
	bad := newBaseTx("tx2")
	bad.Outputs = []*explorer.Output{transferOutput("o2", feeAssetID, "not-a-number", "addr2")}

	query, err := newTestAssembler(newRecordedClient()).Assemble(context.Background(), &explorer.TxList{
		Transactions: []*explorer.Transaction{good, bad},
	})
	require.NoError(t, err)
	require.Len(t, query.Transactions, 1)
	require.Equal(t, "tx1", query.Transactions[0].ID)
	require.Len(t, query.Anomalies, 1)
	require.Equal(t, "tx2", query.Anomalies[0].TxID)
}

func TestAssembleFetchFailureFailsPage(t *testing.T) {
	client := newRecordedClient()
	client.Err = errors.Wrap(explorer.ErrFetchFailed, "upstream down")

	tx := newBaseTx("tx1")
	tx.Outputs = []*explorer.Output{transferOutput("o1", feeAssetID, "100", "addr1")}

	_, err := newTestAssembler(client).Assemble(context.Background(), &explorer.TxList{
		Transactions: []*explorer.Transaction{tx},
	})
	require.True(t, errors.Is(err, explorer.ErrFetchFailed))
}

func TestAssembleEmptyPage(t *testing.T) {
	query, err := newTestAssembler(newRecordedClient()).Assemble(context.Background(), &explorer.TxList{})
	require.NoError(t, err)
	require.NotNil(t, query.Transactions)
	require.Empty(t, query.Transactions)
}

func TestNewTxQueryIndependentValues(t *testing.T) {
	q1 := NewTxQuery()
	q2 := NewTxQuery()
	q1.Transactions = append(q1.Transactions, &Transaction{ID: "tx1"})
	require.Empty(t, q2.Transactions)
}
