package normalize

import (
	"testing"

	"github.com/ava-labs/ava-explorer/explorer"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const cAddress = "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae"

func TestClassifyAtomicImport(t *testing.T) {
	out := &explorer.Output{
		ID:         "o1",
		ChainID:    xChainID,
		AssetID:    feeAssetID,
		Amount:     "100",
		OutputType: 7,
		CAddresses: []string{cAddress},
	}
	kind, err := Classify(out)
	require.NoError(t, err)
	require.Equal(t, OutputAtomicImport, kind)
}

func TestClassifyAtomicExport(t *testing.T) {
	out := &explorer.Output{
		ID:         "o1",
		ChainID:    xChainID,
		OutChainID: "11111111111111111111111111111111LpoYY",
		AssetID:    feeAssetID,
		Amount:     "100",
		OutputType: 7,
	}
	kind, err := Classify(out)
	require.NoError(t, err)
	require.Equal(t, OutputAtomicExport, kind)
}

func TestClassifyNFT(t *testing.T) {
	mint := &explorer.Output{ID: "o1", AssetID: nftAssetID, Amount: "0", OutputType: 10, GroupID: 1}
	kind, err := Classify(mint)
	require.NoError(t, err)
	require.Equal(t, OutputNFTMintRights, kind)

	transfer := &explorer.Output{
		ID: "o2", AssetID: nftAssetID, Amount: "0", OutputType: 11,
		Payload: []byte("artwork"), Addresses: []string{"addr1"},
	}
	kind, err = Classify(transfer)
	require.NoError(t, err)
	require.Equal(t, OutputNFTTransferable, kind)

	// Payload on a fungible transfer output does not make it an NFT
	withPayload := transferOutput("o3", feeAssetID, "100", "addr1")
	withPayload.Payload = []byte("junk")
	kind, err = Classify(withPayload)
	require.NoError(t, err)
	require.Equal(t, OutputTransferable, kind)
}

func TestClassifyMintRights(t *testing.T) {
	out := &explorer.Output{ID: "o1", AssetID: feeAssetID, Amount: "0", OutputType: 6, Addresses: []string{"addr1"}}
	kind, err := Classify(out)
	require.NoError(t, err)
	require.Equal(t, OutputMintRights, kind)
}

func TestClassifyTransferable(t *testing.T) {
	kind, err := Classify(transferOutput("o1", feeAssetID, "100", "addr1"))
	require.NoError(t, err)
	require.Equal(t, OutputTransferable, kind)

	// Stakeable-locked outputs are still plain transferable value
	locked := transferOutput("o2", feeAssetID, "100", "addr1")
	locked.OutputType = 22
	locked.Stakeableout = true
	locked.StakeLocktime = 1735689600
	kind, err = Classify(locked)
	require.NoError(t, err)
	require.Equal(t, OutputTransferable, kind)
}

// Flags in the raw data are not mutually exclusive; the precedence order
// decides
func TestClassifyPrecedence(t *testing.T) {
	// Contract address wins over NFT markers and type codes
	out := &explorer.Output{
		ID:         "o1",
		ChainID:    xChainID,
		AssetID:    nftAssetID,
		Amount:     "0",
		OutputType: 10,
		GroupID:    2,
		Payload:    []byte("abc"),
		CAddresses: []string{cAddress},
	}
	kind, err := Classify(out)
	require.NoError(t, err)
	require.Equal(t, OutputAtomicImport, kind)

	// With owner addresses present the same output is a mint-rights one
	out.CAddresses = nil
	out.Addresses = []string{"addr1"}
	kind, err = Classify(out)
	require.NoError(t, err)
	require.Equal(t, OutputNFTMintRights, kind)

	// Export artifact wins over the NFT markers too
	out.Addresses = nil
	out.OutChainID = "11111111111111111111111111111111LpoYY"
	kind, err = Classify(out)
	require.NoError(t, err)
	require.Equal(t, OutputAtomicExport, kind)
}

func TestClassifyUnknownTypeCode(t *testing.T) {
	out := transferOutput("o1", feeAssetID, "100", "addr1")
	out.OutputType = 99
	_, err := Classify(out)
	require.True(t, errors.Is(err, ErrUnrecognizedOutputKind))
}
