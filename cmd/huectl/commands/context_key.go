package commands

// Context keys for values handed to command handlers. Typed empty
// structs so keys cannot collide across packages.
type (
	bridgeContextKey   struct{}
	loggerContextKey   struct{}
	registerContextKey struct{}
)
