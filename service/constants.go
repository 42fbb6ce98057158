package service

const (
	MaxPeriods   = 600             // 50 years of monthly payments
	MaxPrincipal = 1_000_000_000.0 // request sanity bound, not a domain rule

	// Guess-sweep limits for the root scan.
	DefaultScanSteps = 32
	MaxScanSteps     = 256
	// Roots closer than this are the same root reached from different guesses.
	ScanRootTolerance = 1e-6

	DefaultHistoryLimit = 50
)
