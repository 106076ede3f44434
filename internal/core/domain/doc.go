// Package domain defines the value types shared by the hashtag tooling.
//
// The scanner itself lives in pkg/hashtag and has no error cases. This
// package holds what grows around it:
//
//   - LineMatch: a hashtag located by file and line
//   - ScanSummary, CountReport, BenchReport: results of service operations
//   - Errors: coded errors for input, configuration and benchmark failures
package domain
