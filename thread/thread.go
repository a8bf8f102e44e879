package thread

import (
	"strconv"
	"sync"

	"github.com/petermattis/goid"
)

// names maps goroutine id to display name. Each key is only ever
// written by the goroutine it identifies.
var names sync.Map

// ID returns the runtime id of the calling goroutine.
func ID() int64 {
	return goid.Get()
}

// DefaultName is the display name of a goroutine that never set one.
func DefaultName(id int64) string {
	return "goroutine-" + strconv.FormatInt(id, 10)
}

// Name returns the calling goroutine's display name.
func Name() string {
	id := goid.Get()
	if v, ok := names.Load(id); ok {
		return v.(string)
	}
	return DefaultName(id)
}

// SetName sets the calling goroutine's display name. It affects only
// lines logged afterwards by this goroutine. An empty name reverts to the
// default.
func SetName(name string) {
	if name == "" {
		ClearName()
		return
	}
	names.Store(goid.Get(), name)
}

// ClearName forgets the calling goroutine's display name, reverting it to
// the default. A name set with SetName stays in memory until it is
// cleared, so goroutines that set one directly should call ClearName
// before they exit.
func ClearName() {
	names.Delete(goid.Get())
}

// Go starts fn in a new goroutine named name. The name is released when
// fn returns or panics.
func Go(name string, fn func()) {
	go func() {
		SetName(name)
		defer ClearName()
		fn()
	}()
}
