// Package repl implements the interactive mode of hashtag-cli.
//
// Every line typed at the prompt is handed to an evaluation function,
// which for the shell command scans it for hashtags. Lines starting with
// ':' are shell commands (:help, :history). exit, quit or end of input
// leave the loop. History is kept in ~/.hashtag/history between sessions.
package repl
