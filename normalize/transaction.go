package normalize

import (
	"context"
	"strconv"
	"time"

	"github.com/ava-labs/ava-explorer/explorer"
	"github.com/ava-labs/ava-explorer/logger"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Semantic kind of a whole transaction
type TxKind string

const (
	TxTransfer        TxKind = "TRANSFER"
	TxCreateAsset     TxKind = "CREATE_ASSET"
	TxAddValidator    TxKind = "ADD_VALIDATOR"
	TxAddDelegator    TxKind = "ADD_DELEGATOR"
	TxRewardValidator TxKind = "REWARD_VALIDATOR" // stake removal, reward decided by the finalizing block
	TxAtomicExport    TxKind = "ATOMIC_EXPORT"
	TxAtomicImport    TxKind = "ATOMIC_IMPORT"
	TxNFTMint         TxKind = "NFT_MINT"
	TxNFTTransfer     TxKind = "NFT_TRANSFER"
	TxUnknown         TxKind = "UNKNOWN"
)

// Raw upstream type discriminators. The upstream field is authoritative;
// transaction structure is only used as a cross-check.
var txTypeToKind = map[string]TxKind{
	"base":             TxTransfer,
	"create_asset":     TxCreateAsset,
	"add_validator":    TxAddValidator,
	"add_delegator":    TxAddDelegator,
	"reward_validator": TxRewardValidator,
	"import":           TxAtomicImport,
	"export":           TxAtomicExport,
	"pvm_import":       TxAtomicImport,
	"pvm_export":       TxAtomicExport,
	"atomic_import_tx": TxAtomicImport,
	"atomic_export_tx": TxAtomicExport,
}

func (k TxKind) IsStakeAdd() bool {
	return k == TxAddValidator || k == TxAddDelegator
}

func (k TxKind) IsStakeRemove() bool {
	return k == TxRewardValidator
}

// ConservationExempt reports whether input = output + fee is NOT expected to
// hold for this kind. Stake removal fabricates outputs by protocol rule and
// atomic transfers move value across a chain boundary invisible within a
// single transaction. This is modeled protocol behavior, not an error.
func (k TxKind) ConservationExempt() bool {
	switch k {
	case TxRewardValidator, TxAtomicExport, TxAtomicImport:
		return true
	}
	return false
}

// Canonical UTXO. Immutable once built, ledger data is append-only.
type Output struct {
	ID            string
	TxID          string
	RedeemingTxID string // empty if unspent
	Index         uint32
	ChainID       string
	AssetID       string
	Amount        decimal.Decimal
	Kind          OutputKind

	// Independent boolean facts, preserved whatever the kind is
	Stake         bool
	Stakeable     bool
	StakeLocktime uint64
	Reward        bool
	Frozen        bool
	Genesis       bool

	Locktime  uint64
	Threshold uint32
	GroupID   uint32
	Payload   []byte

	// Either a set of owner addresses or a contract-style address set, never
	// both (the atomic cross-chain boundary)
	Addresses  []string
	CAddresses []string
}

// Canonical input: the spent output plus spend credentials. An input has no
// amount of its own.
type Input struct {
	Output
	Creds []explorer.Credentials
}

// Something about a record that did not stop normalization but should not be
// silently dropped either
type Anomaly struct {
	TxID    string `json:"txId"`
	Message string `json:"message"`
}

// Canonical transaction
type Transaction struct {
	ID      string
	ChainID string
	Type    string // raw upstream type
	Kind    TxKind

	Inputs  []Input
	Outputs []Output

	Memo []byte

	InputTotals  map[string]decimal.Decimal
	OutputTotals map[string]decimal.Decimal
	Fee          decimal.Decimal

	Timestamp time.Time
	Epoch     uint64
	Genesis   bool
	VertexID  string
	BlockID   string

	ValidatorNodeID string
	ValidatorStart  *time.Time
	ValidatorEnd    *time.Time

	Reward RewardStatus

	Anomalies []Anomaly
}

type Normalizer struct {
	assets      AssetSource
	avaxAssetID string
}

// NewNormalizer builds a normalizer. avaxAssetID identifies the native asset
// transaction fees are paid in.
func NewNormalizer(assets AssetSource, avaxAssetID string) *Normalizer {
	return &Normalizer{
		assets:      assets,
		avaxAssetID: avaxAssetID,
	}
}

// Normalize builds the canonical transaction from a raw record: classifies
// every input and output, computes exact per-asset totals and determines the
// transaction kind. Reward reconciliation needs an extra lookup and is a
// separate step (RewardTracker); here the reward status is the pending
// default.
//
// Outputs with an unrecognized type code degrade to plain transferable with a
// recorded anomaly; a malformed amount fails the whole record.
func (n *Normalizer) Normalize(ctx context.Context, raw *explorer.Transaction) (*Transaction, error) {
	if raw == nil {
		return nil, errors.Wrap(ErrMalformedRecord, "nil transaction")
	}

	denominations, err := n.resolveDenominations(ctx, raw)
	if err != nil {
		return nil, err
	}
	denomination := func(assetID string) int32 {
		return denominations[assetID]
	}

	tx := &Transaction{
		ID:              raw.ID,
		ChainID:         raw.ChainID,
		Type:            raw.Type,
		Memo:            raw.Memo,
		Timestamp:       raw.Timestamp,
		Epoch:           raw.Epoch,
		Genesis:         raw.Genesis,
		VertexID:        raw.VertexID,
		BlockID:         raw.TxBlockID,
		ValidatorNodeID: raw.ValidatorNodeID,
		Reward:          PendingReward(),
	}
	if len(raw.ValidatorNodeID) > 0 {
		start := time.Unix(int64(raw.ValidatorStart), 0).UTC()
		end := time.Unix(int64(raw.ValidatorEnd), 0).UTC()
		tx.ValidatorStart = &start
		tx.ValidatorEnd = &end
	}

	rawInOuts := make([]*explorer.Output, 0, len(raw.Inputs))
	tx.Inputs = make([]Input, 0, len(raw.Inputs))
	for _, in := range raw.Inputs {
		if in.Output == nil {
			return nil, errors.Wrapf(ErrMalformedRecord, "transaction %s has an input without its source output", raw.ID)
		}
		out, err := n.normalizeOutput(tx, in.Output, denomination)
		if err != nil {
			return nil, err
		}
		tx.Inputs = append(tx.Inputs, Input{Output: out, Creds: in.Creds})
		rawInOuts = append(rawInOuts, in.Output)
	}

	tx.Outputs = make([]Output, 0, len(raw.Outputs))
	for _, rawOut := range raw.Outputs {
		out, err := n.normalizeOutput(tx, rawOut, denomination)
		if err != nil {
			return nil, err
		}
		tx.Outputs = append(tx.Outputs, out)
	}

	tx.InputTotals, err = Aggregate(rawInOuts, denomination)
	if err != nil {
		return nil, errors.WithMessagef(err, "transaction %s input totals", raw.ID)
	}
	tx.OutputTotals, err = Aggregate(raw.Outputs, denomination)
	if err != nil {
		return nil, errors.WithMessagef(err, "transaction %s output totals", raw.ID)
	}
	tx.Fee, err = DecodeAmount(strconv.FormatUint(raw.Txfee, 10), denominations[n.avaxAssetID])
	if err != nil {
		return nil, errors.WithMessagef(err, "transaction %s fee", raw.ID)
	}

	tx.Kind = n.resolveKind(tx)
	n.checkConservation(tx)

	return tx, nil
}

func (n *Normalizer) normalizeOutput(tx *Transaction, raw *explorer.Output, denomination func(string) int32) (Output, error) {
	kind, err := Classify(raw)
	if err != nil {
		if !errors.Is(err, ErrUnrecognizedOutputKind) {
			return Output{}, err
		}
		// Degrade instead of dropping the record; never guess a
		// conservation-breaking kind
		kind = OutputTransferable
		tx.addAnomaly(err.Error())
		logger.Warn("Transaction %s: %v, treating as transferable", tx.ID, err)
	}

	amount, err := DecodeAmount(raw.Amount, denomination(raw.AssetID))
	if err != nil {
		return Output{}, errors.WithMessagef(err, "output %s", raw.ID)
	}

	if len(raw.ChainID) > 0 && raw.ChainID != tx.ChainID {
		// Known upstream inconsistency for some atomic transactions; record
		// it, do not attempt a fix
		tx.addAnomaly("output " + raw.ID + " reports chain " + raw.ChainID + " in a transaction on chain " + tx.ChainID)
	}

	return Output{
		ID:            raw.ID,
		TxID:          raw.TransactionID,
		RedeemingTxID: raw.RedeemingTransactionID,
		Index:         raw.OutputIndex,
		ChainID:       raw.ChainID,
		AssetID:       raw.AssetID,
		Amount:        amount,
		Kind:          kind,
		Stake:         raw.Stake,
		Stakeable:     raw.Stakeableout,
		StakeLocktime: raw.StakeLocktime,
		Reward:        raw.RewardUtxo,
		Frozen:        raw.Frozen,
		Genesis:       raw.Genesisutxo,
		Locktime:      raw.Locktime,
		Threshold:     raw.Threshold,
		GroupID:       raw.GroupID,
		Payload:       raw.Payload,
		Addresses:     raw.Addresses,
		CAddresses:    raw.CAddresses,
	}, nil
}

// resolveKind maps the upstream type to a semantic kind, with structural
// cross-checks where the type alone is ambiguous
func (n *Normalizer) resolveKind(tx *Transaction) TxKind {
	if kind, ok := txTypeToKind[tx.Type]; ok {
		if kind.IsStakeRemove() && len(tx.Inputs) > 0 {
			// Stake removal outputs are created by protocol rule without
			// inputs; a remove tx with inputs contradicts its own type
			tx.addAnomaly("stake removal transaction has " + strconv.Itoa(len(tx.Inputs)) + " inputs")
		}
		return kind
	}
	if tx.Type == "operation" {
		return operationKind(tx.Outputs)
	}
	tx.addAnomaly("unknown transaction type " + strconv.Quote(tx.Type))
	return TxUnknown
}

// NFT mints and transfers both arrive as operation transactions; the outputs
// tell them apart
func operationKind(outs []Output) TxKind {
	kind := TxTransfer
	for _, out := range outs {
		switch out.Kind {
		case OutputNFTMintRights:
			return TxNFTMint
		case OutputNFTTransferable:
			kind = TxNFTTransfer
		}
	}
	return kind
}

// checkConservation verifies input = output + fee per asset for kinds where
// value is actually conserved. Violations become anomalies; the exempt kinds
// are skipped entirely because the imbalance is protocol behavior.
func (n *Normalizer) checkConservation(tx *Transaction) {
	if tx.Kind.ConservationExempt() || tx.Kind == TxUnknown {
		return
	}
	for assetID, inTotal := range tx.InputTotals {
		outTotal := tx.OutputTotals[assetID]
		expected := outTotal
		if assetID == n.avaxAssetID {
			expected = outTotal.Add(tx.Fee)
		}
		if !inTotal.Equal(expected) {
			tx.addAnomaly("asset " + assetID + " does not conserve value: in " +
				inTotal.String() + ", out " + outTotal.String() + ", fee " + tx.Fee.String())
		}
	}
}

func (n *Normalizer) resolveDenominations(ctx context.Context, raw *explorer.Transaction) (map[string]int32, error) {
	assetIDs := make([]string, 0, len(raw.Outputs)+len(raw.Inputs)+1)
	for _, in := range raw.Inputs {
		if in.Output != nil {
			assetIDs = append(assetIDs, in.Output.AssetID)
		}
	}
	for _, out := range raw.Outputs {
		assetIDs = append(assetIDs, out.AssetID)
	}
	assetIDs = append(assetIDs, n.avaxAssetID)

	if prefetcher, ok := n.assets.(AssetPrefetcher); ok {
		if err := prefetcher.Prefetch(ctx, assetIDs); err != nil {
			return nil, err
		}
	}

	denominations := make(map[string]int32)
	for _, assetID := range assetIDs {
		if _, ok := denominations[assetID]; ok {
			continue
		}
		asset, err := n.assets.Asset(ctx, assetID)
		if err != nil {
			return nil, err
		}
		denominations[assetID] = int32(asset.Denomination)
	}
	return denominations, nil
}

func (tx *Transaction) addAnomaly(message string) {
	tx.Anomalies = append(tx.Anomalies, Anomaly{TxID: tx.ID, Message: message})
}
