// Package thread gives each goroutine a human-readable display name.
//
// Go has no goroutine-local storage, so names are kept in a registry
// keyed by the runtime id of the goroutine that set them. Every function
// acts on the calling goroutine only; there is no way to read or change
// another goroutine's name.
//
// A goroutine that never calls SetName is shown as "goroutine-<id>".
// Nothing is stored for it. Names that are set stay registered until the
// goroutine calls ClearName, so long-running programs that spawn many
// named goroutines should use Go, which clears the name on exit:
//
//	thread.Go("worker-1", func() {
//	    logger.Info("started")
//	})
package thread
