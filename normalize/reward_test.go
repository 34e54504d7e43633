package normalize

import (
	"context"
	"testing"

	"github.com/ava-labs/ava-explorer/explorer"
	"github.com/ava-labs/ava-explorer/utils"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const pChainID = "11111111111111111111111111111111LpoYY"
const nodeID = "NodeID-7Xhw2mDxuDS44j42TCB6U5579esbSt3Lg"

func stakeAddTx(id string) *explorer.Transaction {
	return &explorer.Transaction{
		ID:              id,
		ChainID:         pChainID,
		Type:            "add_validator",
		ValidatorNodeID: nodeID,
		ValidatorStart:  1676455200,
		ValidatorEnd:    1707991200,
		Timestamp:       utils.ParseTime("2023-02-15T10:00:00Z"),
	}
}

func stakeRemoveTx(id string, blockID string) *explorer.Transaction {
	return &explorer.Transaction{
		ID:              id,
		ChainID:         pChainID,
		Type:            "reward_validator",
		ValidatorNodeID: nodeID,
		ValidatorStart:  1676455200,
		ValidatorEnd:    1707991200,
		TxBlockID:       blockID,
		Timestamp:       utils.ParseTime("2024-02-15T10:00:00Z"),
	}
}

func TestRewardPending(t *testing.T) {
	client := newRecordedClient().AddTransaction(stakeAddTx("add1"))

	status, err := NewRewardTracker(client).Status(context.Background(), "add1")
	require.NoError(t, err)
	require.Equal(t, RewardPending, status.State)
	require.Nil(t, status.At)
}

func TestRewardRewarded(t *testing.T) {
	removeTx := stakeRemoveTx("rem1", "blk1")
	client := newRecordedClient().
		AddTransaction(stakeAddTx("add1")).
		AddTransaction(removeTx).
		// The single other transaction in the commit block is the reward
		AddTransaction(&explorer.Transaction{
			ID: "reward1", ChainID: pChainID, Type: "base", TxBlockID: "blk1",
		})

	status, err := NewRewardTracker(client).Status(context.Background(), "add1")
	require.NoError(t, err)
	require.Equal(t, RewardRewarded, status.State)
	require.NotNil(t, status.At)
	require.Equal(t, removeTx.Timestamp, *status.At)
}

func TestRewardMissed(t *testing.T) {
	// Abort block: removal is the only transaction with the block id
	client := newRecordedClient().
		AddTransaction(stakeAddTx("add1")).
		AddTransaction(stakeRemoveTx("rem1", "blk1"))

	status, err := NewRewardTracker(client).Status(context.Background(), "add1")
	require.NoError(t, err)
	require.Equal(t, RewardMissed, status.State)
	require.NotNil(t, status.At)
}

func TestRewardDoubleDecision(t *testing.T) {
	// Two decision transactions sharing the block means no single commit;
	// treated as missed
	client := newRecordedClient().
		AddTransaction(stakeAddTx("add1")).
		AddTransaction(stakeRemoveTx("rem1", "blk1")).
		AddTransaction(&explorer.Transaction{
			ID: "other1", ChainID: pChainID, Type: "base", TxBlockID: "blk1",
		}).
		AddTransaction(&explorer.Transaction{
			ID: "other2", ChainID: pChainID, Type: "base", TxBlockID: "blk1",
		})

	status, err := NewRewardTracker(client).Status(context.Background(), "add1")
	require.NoError(t, err)
	require.Equal(t, RewardMissed, status.State)
}

func TestRewardDelegator(t *testing.T) {
	addTx := stakeAddTx("add1")
	addTx.Type = "add_delegator"
	client := newRecordedClient().
		AddTransaction(addTx).
		AddTransaction(stakeRemoveTx("rem1", "blk1")).
		AddTransaction(&explorer.Transaction{
			ID: "reward1", ChainID: pChainID, Type: "base", TxBlockID: "blk1",
		})

	status, err := NewRewardTracker(client).Status(context.Background(), "add1")
	require.NoError(t, err)
	require.Equal(t, RewardRewarded, status.State)
}

func TestRewardIgnoresOtherValidators(t *testing.T) {
	otherRemove := stakeRemoveTx("rem1", "blk1")
	otherRemove.ValidatorNodeID = "NodeID-MFrZFVCXPv5iCn6M9K6XduxGTYp891xXZ"
	client := newRecordedClient().
		AddTransaction(stakeAddTx("add1")).
		AddTransaction(otherRemove)

	status, err := NewRewardTracker(client).Status(context.Background(), "add1")
	require.NoError(t, err)
	require.Equal(t, RewardPending, status.State)
}

func TestRewardNotStakeAdd(t *testing.T) {
	client := newRecordedClient().AddTransaction(&explorer.Transaction{
		ID: "tx1", ChainID: pChainID, Type: "base",
	})

	_, err := NewRewardTracker(client).Status(context.Background(), "tx1")
	require.True(t, errors.Is(err, ErrMalformedRecord))
}

func TestRewardUnknownTransaction(t *testing.T) {
	_, err := NewRewardTracker(newRecordedClient()).Status(context.Background(), "missing")
	require.True(t, errors.Is(err, explorer.ErrNotFound))
}
