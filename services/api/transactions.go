package api

import (
	"time"

	"github.com/ava-labs/ava-explorer/normalize"
	"github.com/ava-labs/ava-explorer/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type ApiAssetTotal struct {
	AssetID string `json:"assetID"`
	Amount  string `json:"amount"`
}

type ApiOutput struct {
	ID            string               `json:"id"`
	TxID          string               `json:"transactionID"`
	RedeemingTxID string               `json:"redeemingTransactionID,omitempty"`
	Index         uint32               `json:"outputIndex"`
	AssetID       string               `json:"assetID"`
	Amount        string               `json:"amount"`
	Kind          normalize.OutputKind `json:"kind"`
	Stake         bool                 `json:"stake"`
	Stakeable     bool                 `json:"stakeable"`
	StakeLocktime uint64               `json:"stakeLocktime,omitempty"`
	Reward        bool                 `json:"reward"`
	Frozen        bool                 `json:"frozen"`
	Genesis       bool                 `json:"genesis"`
	Locktime      uint64               `json:"locktime"`
	Threshold     uint32               `json:"threshold"`
	GroupID       uint32               `json:"groupID,omitempty"`
	Payload       []byte               `json:"payload,omitempty"`
	Addresses     []string             `json:"addresses,omitempty"`
	CAddresses    []string             `json:"caddresses,omitempty"`
}

type ApiTransaction struct {
	ID              string                 `json:"id"`
	ChainID         string                 `json:"chainID"`
	Type            string                 `json:"type"`
	Kind            normalize.TxKind       `json:"kind"`
	Timestamp       time.Time              `json:"timestamp"`
	Memo            []byte                 `json:"memo,omitempty"`
	Fee             string                 `json:"fee"`
	InputTotals     []ApiAssetTotal        `json:"inputTotals"`
	OutputTotals    []ApiAssetTotal        `json:"outputTotals"`
	Inputs          []ApiOutput            `json:"inputs"`
	Outputs         []ApiOutput            `json:"outputs"`
	Epoch           uint64                 `json:"epoch,omitempty"`
	Genesis         bool                   `json:"genesis"`
	BlockID         string                 `json:"txBlockId,omitempty"`
	ValidatorNodeID string                 `json:"validatorNodeID,omitempty"`
	ValidatorStart  *time.Time             `json:"validatorStart,omitempty"`
	ValidatorEnd    *time.Time             `json:"validatorEnd,omitempty"`
	Reward          normalize.RewardStatus `json:"reward"`
	Anomalies       []normalize.Anomaly    `json:"anomalies,omitempty"`
}

type ApiTxQuery struct {
	StartTime    string              `json:"startTime"`
	EndTime      string              `json:"endTime"`
	Next         string              `json:"next"`
	Transactions []ApiTransaction    `json:"transactions"`
	Anomalies    []normalize.Anomaly `json:"anomalies"`
}

func NewApiTransaction(tx *normalize.Transaction) ApiTransaction {
	return ApiTransaction{
		ID:              tx.ID,
		ChainID:         tx.ChainID,
		Type:            tx.Type,
		Kind:            tx.Kind,
		Timestamp:       tx.Timestamp,
		Memo:            tx.Memo,
		Fee:             tx.Fee.String(),
		InputTotals:     newApiAssetTotals(tx.InputTotals),
		OutputTotals:    newApiAssetTotals(tx.OutputTotals),
		Inputs:          newApiInputs(tx.Inputs),
		Outputs:         newApiOutputs(tx.Outputs),
		Epoch:           tx.Epoch,
		Genesis:         tx.Genesis,
		BlockID:         tx.BlockID,
		ValidatorNodeID: tx.ValidatorNodeID,
		ValidatorStart:  tx.ValidatorStart,
		ValidatorEnd:    tx.ValidatorEnd,
		Reward:          tx.Reward,
		Anomalies:       tx.Anomalies,
	}
}

func NewApiTxQuery(query *normalize.TxQuery) ApiTxQuery {
	transactions := make([]ApiTransaction, len(query.Transactions))
	for i, tx := range query.Transactions {
		transactions[i] = NewApiTransaction(tx)
	}
	return ApiTxQuery{
		StartTime:    query.StartTime,
		EndTime:      query.EndTime,
		Next:         query.Next,
		Transactions: transactions,
		Anomalies:    query.Anomalies,
	}
}

// Totals are sorted by asset id so responses are deterministic
func newApiAssetTotals(totals map[string]decimal.Decimal) []ApiAssetTotal {
	assetIDs := utils.Keys(totals)
	slices.Sort(assetIDs)

	result := make([]ApiAssetTotal, len(assetIDs))
	for i, assetID := range assetIDs {
		result[i] = ApiAssetTotal{AssetID: assetID, Amount: totals[assetID].String()}
	}
	return result
}

func newApiOutputs(outs []normalize.Output) []ApiOutput {
	result := make([]ApiOutput, len(outs))
	for i, out := range outs {
		result[i] = newApiOutput(out)
	}
	return result
}

func newApiInputs(ins []normalize.Input) []ApiOutput {
	result := make([]ApiOutput, len(ins))
	for i, in := range ins {
		result[i] = newApiOutput(in.Output)
	}
	return result
}

func newApiOutput(out normalize.Output) ApiOutput {
	return ApiOutput{
		ID:            out.ID,
		TxID:          out.TxID,
		RedeemingTxID: out.RedeemingTxID,
		Index:         out.Index,
		AssetID:       out.AssetID,
		Amount:        out.Amount.String(),
		Kind:          out.Kind,
		Stake:         out.Stake,
		Stakeable:     out.Stakeable,
		StakeLocktime: out.StakeLocktime,
		Reward:        out.Reward,
		Frozen:        out.Frozen,
		Genesis:       out.Genesis,
		Locktime:      out.Locktime,
		Threshold:     out.Threshold,
		GroupID:       out.GroupID,
		Payload:       out.Payload,
		Addresses:     out.Addresses,
		CAddresses:    out.CAddresses,
	}
}
