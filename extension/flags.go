// flags.go defines constants for CLI flag names shared between cmd and
// extensions, so Flags().Bool and GetBool never disagree on spelling.

package extension

const (
	FlagIgnoreCase = "ignore-case" // Case-insensitive matching
	FlagOutput     = "output"      // Output format
)
