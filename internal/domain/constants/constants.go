// Package constants holds values shared across layers.
package constants

const (
	// DateLayout is the wire format of calendar dates.
	DateLayout = "2006-01-02"

	// MaxLogRangeDays bounds the span of a log or range summary query.
	MaxLogRangeDays = 366

	// SuggestionLookbackDays is how far back meals are read for suggestions.
	SuggestionLookbackDays = 7

	// LocalUserID is the user every request maps to when authentication is off.
	LocalUserID = "local-user"
)

// Pub/Sub provider types
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Food lookup provider types
const (
	FoodLookupProviderGemini = "gemini"
	FoodLookupProviderNone   = "none"
)

// EnvLocal is the environment name used for local development.
const EnvLocal = "local"
