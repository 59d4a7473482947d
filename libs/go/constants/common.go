package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment  = "prod"
	LocalEnvironment = "local"
	TestEnvironment  = "test"

	// Endpoint roles
	PrimaryEndpointRole        = "primary"
	FallbackEndpointRole       = "fallback"
	WalletSuppliedEndpointRole = "wallet"

	// Status values
	FailedStatus  = "failed"
	SuccessStatus = "success"
)
