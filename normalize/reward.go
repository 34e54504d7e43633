package normalize

import (
	"context"
	"time"

	"github.com/ava-labs/ava-explorer/explorer"

	"github.com/pkg/errors"
)

type RewardState string

const (
	// Stake is active, no decision block observed yet
	RewardPending RewardState = "PENDING"
	// A decision block executed but did not reward this stake
	RewardMissed RewardState = "MISSED"
	// A commit block credited the reward
	RewardRewarded RewardState = "REWARDED"
)

// Tri-state staking reward status. At is the decision time for MISSED and
// REWARDED and nil while PENDING.
type RewardStatus struct {
	State RewardState `json:"state"`
	At    *time.Time  `json:"at"`
}

func PendingReward() RewardStatus {
	return RewardStatus{State: RewardPending}
}

// RewardTracker correlates a stake-add transaction with its eventual stake
// removal and the block that finalized it
type RewardTracker struct {
	client explorer.Client
}

func NewRewardTracker(client explorer.Client) *RewardTracker {
	return &RewardTracker{client: client}
}

// Status resolves the reward lifecycle of a stake-add transaction.
//
// The protocol removes a stake with a remove transaction whose outputs are
// created by rule, without inputs; whether a reward was paid is encoded
// solely in the transaction count of the finalizing block: such blocks hold
// exactly one transaction (commit, rewarded) or none (abort, missed). No
// UTXO inside the remove transaction carries this information.
func (t *RewardTracker) Status(ctx context.Context, stakeAddTxID string) (RewardStatus, error) {
	addTx, err := t.client.GetTransaction(ctx, stakeAddTxID)
	if err != nil {
		return RewardStatus{}, err
	}
	if kind := txTypeToKind[addTx.Type]; !kind.IsStakeAdd() {
		return RewardStatus{}, errors.Wrapf(ErrMalformedRecord,
			"transaction %s has type %s, not a stake-add", stakeAddTxID, addTx.Type)
	}

	removeTx, err := t.findRemoveTx(ctx, addTx)
	if err != nil {
		return RewardStatus{}, err
	}
	if removeTx == nil {
		return PendingReward(), nil
	}

	block, err := t.client.ListTransactions(ctx, &explorer.TxQueryParams{
		ChainID: removeTx.ChainID,
		BlockID: removeTx.TxBlockID,
	})
	if err != nil {
		return RewardStatus{}, err
	}
	return decideReward(removeTx, block.Transactions), nil
}

// findRemoveTx locates the stake removal matching the add transaction by
// validator node id and stake window. Nil result means no removal was
// observed yet.
func (t *RewardTracker) findRemoveTx(ctx context.Context, addTx *explorer.Transaction) (*explorer.Transaction, error) {
	list, err := t.client.ListTransactions(ctx, &explorer.TxQueryParams{
		ChainID: addTx.ChainID,
		TxType:  "reward_validator",
	})
	if err != nil {
		return nil, err
	}
	for _, tx := range list.Transactions {
		if tx.ValidatorNodeID == addTx.ValidatorNodeID &&
			tx.ValidatorStart == addTx.ValidatorStart &&
			tx.ValidatorEnd == addTx.ValidatorEnd {
			return tx, nil
		}
	}
	return nil, nil
}

// decideReward turns the finalizing block's transaction count into the
// status. The removal itself shares the block id with its decision block and
// does not count; one other transaction is the reward (commit), zero is an
// abort. More than one is the double-decision race and counts as missed as
// well.
func decideReward(removeTx *explorer.Transaction, blockTxs []*explorer.Transaction) RewardStatus {
	count := 0
	for _, tx := range blockTxs {
		if tx.ID != removeTx.ID {
			count++
		}
	}
	at := removeTx.Timestamp
	if count == 1 {
		return RewardStatus{State: RewardRewarded, At: &at}
	}
	return RewardStatus{State: RewardMissed, At: &at}
}
