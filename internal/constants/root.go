package constants

const (
	AppName           = "quinzena"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/quinzena/quinzena.json"

	// DefaultSavingsPercentage is the savings rate applied to fresh installations.
	DefaultSavingsPercentage = 15

	// SuggestedSavingsPercentage is the rate used for per-payday funding
	// suggestions. It is intentionally fixed and independent of the user's
	// configured percentage.
	SuggestedSavingsPercentage = 15

	// MaxSavingsPercentage bounds the percentage accepted by the CLI and TUI
	// forms. The tracker itself stores whatever it is given.
	MaxSavingsPercentage = 50

	// MinPaymentDay and MaxPaymentDay bound the day-of-month of a payment.
	// Days 29-31 are allowed even though not every month has them.
	MinPaymentDay = 1
	MaxPaymentDay = 31
)

// Tray helper integration.
const (
	TrayAppIdentifier      = "quinzena-tray"
	NotifierLockfileName   = "quinzena-tray.lock"
	NotificationDurationMs = 8000
)
