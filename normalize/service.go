package normalize

import (
	"context"

	"github.com/ava-labs/ava-explorer/explorer"
)

// Service bundles the normalization pipeline behind the operations the
// presentation layer consumes
type Service struct {
	client    explorer.Client
	assembler *Assembler
	rewards   *RewardTracker
	payloads  *PayloadExtractor
}

func NewService(client explorer.Client, assets AssetSource, avaxAssetID string) *Service {
	return &Service{
		client:    client,
		assembler: NewAssembler(NewNormalizer(assets, avaxAssetID)),
		rewards:   NewRewardTracker(client),
		payloads:  NewPayloadExtractor(client),
	}
}

// GetTransaction fetches and normalizes a single transaction. Unlike page
// assembly, a malformed record fails the request.
func (s *Service) GetTransaction(ctx context.Context, txID string) (*Transaction, error) {
	raw, err := s.client.GetTransaction(ctx, txID)
	if err != nil {
		return nil, err
	}
	return s.assembler.normalizer.Normalize(ctx, raw)
}

// GetTransactions fetches one page of raw transactions and assembles it
func (s *Service) GetTransactions(ctx context.Context, params *explorer.TxQueryParams) (*TxQuery, error) {
	list, err := s.client.ListTransactions(ctx, params)
	if err != nil {
		return nil, err
	}
	return s.assembler.Assemble(ctx, list)
}

func (s *Service) GetRewardStatus(ctx context.Context, stakeAddTxID string) (RewardStatus, error) {
	return s.rewards.Status(ctx, stakeAddTxID)
}

func (s *Service) GetNFTPayloads(ctx context.Context, mintTxID string) ([]NFTPayload, error) {
	return s.payloads.Payloads(ctx, mintTxID)
}
