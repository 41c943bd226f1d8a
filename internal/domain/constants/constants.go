// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Entitlement sync reasons
const (
	SyncReasonLogin     = "login"
	SyncReasonRehydrate = "rehydrate"
)
