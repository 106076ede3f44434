// Package output renders hashtag-cli results.
//
// Results are printed as an aligned table (the default), JSON or YAML.
// Table columns come from struct fields; a field tagged table:"wide" is
// only shown with --wide and one tagged table:"-" is never shown.
// ProgressBar and Spinner draw on stderr for long-running commands.
package output
