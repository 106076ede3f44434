package command

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
)

// syncBuffer is safe for the watch goroutine and the test to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

// runApp runs hashtag-cli with args in an isolated home directory.
func runApp(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr syncBuffer
	err := runAppContext(context.Background(), strings.NewReader(stdin), &stdout, &stderr, args...)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func runAppContext(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args ...string) error {
	app := App()
	app.Reader = stdin
	app.Writer = stdout
	app.ErrWriter = stderr
	return app.RunContext(ctx, append([]string{"hashtag-cli"}, args...))
}
