// Package config defines the hashtag-cli configuration.
//
// The file lives at ~/.hashtag/cli.yaml unless --config names another one.
// Values are layered by confloader: defaults, then the file, then HASHTAG_*
// environment variables, then command-line flags.
package config
