// Package service runs hashtag scans over real inputs.
//
// ScanService wraps the pure scanner in pkg/hashtag with the concerns a
// command-line tool needs: line-oriented reading with a length limit,
// context cancellation, structured logging, metrics and the timing
// reports of the count and bench commands. It holds no mutable state
// and is safe for concurrent use.
package service
