package normalize

import (
	"github.com/pkg/errors"
)

var (
	// Record cannot be interpreted at all (non-numeric amount, impossible
	// field combination). Fatal for single-record requests, isolated per
	// record during page assembly.
	ErrMalformedRecord = errors.New("malformed record")

	// Output carries a type code this version does not know. Callers may
	// degrade the output to a plain transferable one, recording an anomaly.
	ErrUnrecognizedOutputKind = errors.New("unrecognized output kind")

	// The source transaction of an NFT payload walk has no minting-rights
	// output
	ErrMintRightsNotFound = errors.New("mint rights output not found")

	// The minting-rights output was never spent, so no payloads are attached
	// yet
	ErrRedemptionNotFound = errors.New("redemption transaction not found")
)
