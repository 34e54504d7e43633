package normalize

import (
	"context"
	"fmt"

	"github.com/ava-labs/ava-explorer/explorer"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
)

// Payload attached to an NFT group by a mint operation
type NFTPayload struct {
	Payload []byte `json:"payload"`
	GroupID uint32 `json:"groupID"`
}

// PayloadExtractor recovers the payloads of an NFT family by walking the
// redemption chain of the family's minting-rights output
type PayloadExtractor struct {
	client explorer.Client
}

func NewPayloadExtractor(client explorer.Client) *PayloadExtractor {
	return &PayloadExtractor{client: client}
}

// Payloads fetches the transaction that created the NFT family, finds its
// minting-rights output and collects the distinct (payload, group) pairs of
// the transaction that redeemed it. Empty payloads are dropped, first-seen
// order is kept.
func (e *PayloadExtractor) Payloads(ctx context.Context, mintTxID string) ([]NFTPayload, error) {
	tx, err := e.client.GetTransaction(ctx, mintTxID)
	if err != nil {
		return nil, err
	}

	mintOut := findMintRightsOutput(tx)
	if mintOut == nil {
		return nil, errors.Wrapf(ErrMintRightsNotFound, "transaction %s", mintTxID)
	}
	if len(mintOut.RedeemingTransactionID) == 0 {
		return nil, errors.Wrapf(ErrRedemptionNotFound, "minting rights output %s is unspent", mintOut.ID)
	}

	redeemTx, err := e.client.GetTransaction(ctx, mintOut.RedeemingTransactionID)
	if err != nil {
		if errors.Is(err, explorer.ErrNotFound) {
			return nil, errors.Wrapf(ErrRedemptionNotFound, "transaction %s", mintOut.RedeemingTransactionID)
		}
		return nil, err
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	payloads := make([]NFTPayload, 0, len(redeemTx.Outputs))
	for _, out := range redeemTx.Outputs {
		if len(out.Payload) == 0 {
			continue
		}
		key := fmt.Sprintf("%d:%s", out.GroupID, out.Payload)
		if !seen.Add(key) {
			continue
		}
		payloads = append(payloads, NFTPayload{Payload: out.Payload, GroupID: out.GroupID})
	}
	return payloads, nil
}

func findMintRightsOutput(tx *explorer.Transaction) *explorer.Output {
	for _, out := range tx.Outputs {
		if kind, err := Classify(out); err == nil && kind == OutputNFTMintRights {
			return out
		}
	}
	return nil
}
