// Package buildinfo exposes build information for the hashtag tools.
//
// Values are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/hashtag-go/internal/infra/buildinfo.Version=v1.0.0 \
//	  -X github.com/yndnr/hashtag-go/internal/infra/buildinfo.Commit=abc123" ./cmd/hashtag-cli
//
// GoVersion falls back to the running toolchain when not injected.
package buildinfo
