// Package shutdown runs cleanup hooks when the process is asked to stop.
//
// A Handler waits for SIGINT or SIGTERM (or for a context to end), then
// runs its hooks in reverse registration order under a timeout:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(func(ctx context.Context) error { return watcher.Stop() })
//	err := h.WaitContext(ctx)
package shutdown
