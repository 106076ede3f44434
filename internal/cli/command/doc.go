// Package command defines the hashtag-cli commands on urfave/cli/v2.
//
// The Before hook of App loads the configuration, builds the logger, the
// metric registry and the scan service, and stores them as the Runtime of
// the invocation. Commands print their results through the formatter
// selected by --output and write to the app's Writer, so tests can capture
// them.
package command
