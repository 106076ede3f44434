// Command hashtag-cli finds hashtags and their byte offsets in text.
//
// Usage:
//
//	hashtag-cli scan "#rust is #awesome"
//	hashtag-cli -o json scan -f notes.txt --watch
//	hashtag-cli count sample_tags.txt
//	hashtag-cli bench --copies 100000
//	hashtag-cli config show
//
// Configuration is read from ~/.hashtag/cli.yaml (or --config) and from
// HASHTAG_* environment variables; flags override both.
package main
