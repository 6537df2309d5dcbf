// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// ErrorEntry is one layer of a formatted error chain.
type ErrorEntry = errorEntry

// NewErrorEntry builds an ErrorEntry.
func NewErrorEntry(message, fields string) ErrorEntry {
	return errorEntry{message: message, fields: fields}
}
