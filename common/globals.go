package common

const (
	CapabilityKindAdmin   = "admin"
	CapabilityKindLicence = "licence"

	EventTypeAssetMinted        = "asset_minted"
	EventTypeAssetUpdated       = "asset_updated"
	EventTypeWithdrawn          = "withdrawn"
	EventTypeLicenceMinted      = "licence_minted"
	EventTypeLicenceTransferred = "licence_transferred"
)
