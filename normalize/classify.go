package normalize

import (
	"github.com/ava-labs/ava-explorer/explorer"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Semantic kind of a UTXO. The raw API encodes these as combinations of
// type codes, address sets and payload markers; classification happens in
// exactly one place so every feature interprets outputs the same way.
type OutputKind string

const (
	OutputTransferable    OutputKind = "TRANSFERABLE"
	OutputNFTTransferable OutputKind = "NFT_TRANSFERABLE"
	OutputMintRights      OutputKind = "MINT_RIGHTS"
	OutputNFTMintRights   OutputKind = "NFT_MINT_RIGHTS"
	OutputAtomicExport    OutputKind = "ATOMIC_EXPORT"
	OutputAtomicImport    OutputKind = "ATOMIC_IMPORT"
)

// On-chain codec type ids as reported in the raw outputType field
const (
	outputTypeSecpMint      = 6
	outputTypeSecpTransfer  = 7
	outputTypeNftMint       = 10
	outputTypeNftTransfer   = 11
	outputTypeStakeableLock = 22
)

// Classify assigns a raw output its semantic kind. The raw flags are not
// mutually exclusive, so the checks run in a fixed precedence order and the
// first match wins.
//
// Side flags (stake, stakeable lock, reward, frozen, genesis) are independent
// facts about the output and are carried on the canonical Output separately,
// whatever kind is returned here.
func Classify(out *explorer.Output) (OutputKind, error) {
	// Value that entered this chain through the shared cross-chain ledger is
	// owned by a contract-style address instead of a regular owner set
	if len(out.Addresses) == 0 && hasContractAddress(out) {
		return OutputAtomicImport, nil
	}
	// No owners at all and a destination chain recorded: the output left this
	// chain through the shared ledger
	if len(out.Addresses) == 0 && len(out.CAddresses) == 0 && exportedToOtherChain(out) {
		return OutputAtomicExport, nil
	}
	if len(out.Payload) > 0 || out.GroupID > 0 {
		switch out.OutputType {
		case outputTypeNftMint:
			return OutputNFTMintRights, nil
		case outputTypeNftTransfer:
			return OutputNFTTransferable, nil
		}
	}
	switch out.OutputType {
	case outputTypeSecpMint:
		return OutputMintRights, nil
	case outputTypeNftMint:
		return OutputNFTMintRights, nil
	case outputTypeNftTransfer:
		return OutputNFTTransferable, nil
	case outputTypeSecpTransfer, outputTypeStakeableLock:
		return OutputTransferable, nil
	}
	return "", errors.Wrapf(ErrUnrecognizedOutputKind, "output %s has type code %d", out.ID, out.OutputType)
}

func hasContractAddress(out *explorer.Output) bool {
	for _, addr := range out.CAddresses {
		if common.IsHexAddress(addr) {
			return true
		}
	}
	return false
}

func exportedToOtherChain(out *explorer.Output) bool {
	return len(out.OutChainID) > 0 && out.OutChainID != out.ChainID
}
