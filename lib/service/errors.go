package service

import "errors"

// The transition error taxonomy. Every failure of the five ledger
// operations is one of these; the mutation phase itself cannot fail, so a
// caller that gets an error can rely on zero state change.
var (
	ErrInvalidSupply     = errors.New("total supply must be greater than zero")
	ErrInvalidPrice      = errors.New("list price must be greater than zero")
	ErrNotAuthorized     = errors.New("capability does not authorize operations on this asset")
	ErrNotListed         = errors.New("asset is not listed for sale")
	ErrSupplyExhausted   = errors.New("no licences left for this asset")
	ErrInsufficientFunds = errors.New("payment does not cover the list price")
	ErrListingUnchanged  = errors.New("listing flag already has the requested value")
)

// Lookup failures are transport-level: a request referenced a durable
// object that does not exist. They are not part of the transition taxonomy.
var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrCapabilityNotFound = errors.New("capability not found")
	ErrCoinNotFound       = errors.New("coin not found")
)
