package explorer

import (
	"time"
)

// Raw models as delivered by the explorer (Ortelius-style) indexing API.
// Amounts are string-encoded integers in base units, memo and payload are
// base64 in the wire JSON, ids are CB58 strings.

type Transaction struct {
	ID      string `json:"id"`
	ChainID string `json:"chainID"`
	Type    string `json:"type"`

	Inputs  []*Input  `json:"inputs"`
	Outputs []*Output `json:"outputs"`

	Memo []byte `json:"memo"`

	InputTotals  map[string]string `json:"inputTotals"`
	OutputTotals map[string]string `json:"outputTotals"`

	Timestamp time.Time `json:"timestamp"`

	Txfee uint64 `json:"txFee"`

	Genesis bool `json:"genesis"`

	Rewarded     bool       `json:"rewarded"`
	RewardedTime *time.Time `json:"rewardedTime"`

	Epoch uint64 `json:"epoch"`

	VertexID string `json:"vertexId"`

	ValidatorNodeID string `json:"validatorNodeID"`
	ValidatorStart  uint64 `json:"validatorStart"`
	ValidatorEnd    uint64 `json:"validatorEnd"`

	TxBlockID string `json:"txBlockId"`
}

type Input struct {
	Output *Output       `json:"output"`
	Creds  []Credentials `json:"credentials"`
}

type Output struct {
	ID                     string    `json:"id"`
	TransactionID          string    `json:"transactionID"`
	RedeemingTransactionID string    `json:"redeemingTransactionID"`
	OutputIndex            uint32    `json:"outputIndex"`
	ChainID                string    `json:"chainID"`
	AssetID                string    `json:"assetID"`
	Timestamp              time.Time `json:"timestamp"`
	Amount                 string    `json:"amount"`

	OutputType int    `json:"outputType"`
	GroupID    uint32 `json:"groupID"`

	Stake         bool   `json:"stake"`
	Stakeableout  bool   `json:"stakeableout"`
	StakeLocktime uint64 `json:"stakeLocktime"`
	RewardUtxo    bool   `json:"rewardUtxo"`

	Genesisutxo bool   `json:"genesisutxo"`
	Frozen      bool   `json:"frozen"`
	Locktime    uint64 `json:"locktime"`
	Threshold   uint32 `json:"threshold"`
	Payload     []byte `json:"payload"`

	Addresses []string `json:"addresses"`

	CAddresses []string `json:"caddresses"`
	Block      string   `json:"block"`
	Nonce      uint64   `json:"nonce"`

	InChainID  string `json:"inChainID"`
	OutChainID string `json:"outChainID"`
}

type Credentials struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Address   string `json:"address"`
}

type Asset struct {
	ID           string `json:"id"`
	ChainID      string `json:"chainID"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Alias        string `json:"alias"`
	Denomination uint8  `json:"denomination"`
	Nft          uint8  `json:"nft"`
}

func (a *Asset) IsNFT() bool {
	return a.Nft != 0
}

// One page of raw transactions
type TxList struct {
	StartTime    string         `json:"startTime"`
	EndTime      string         `json:"endTime"`
	Next         string         `json:"next"`
	Transactions []*Transaction `json:"transactions"`
}
