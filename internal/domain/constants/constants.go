package constants

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Domain event types published for external consumers
const (
	EventIdentitySubmitted  = "identity.submitted"
	EventIdentityRegistered = "identity.registered"
	EventIdentityDecided    = "identity.decided"
	EventAccountLinked      = "account.linked"
	EventBroadcastCompleted = "broadcast.completed"
)

const (
	// HeaderBotSecret carries the shared secret of the chat transport gateway.
	HeaderBotSecret = "X-Bot-Secret"
)
