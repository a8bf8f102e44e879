package logger

// Destination is where a Logger writes: the console or a file. The zero
// value is the console.
type Destination struct {
	path string
}

// Console returns the console destination.
func Console() Destination {
	return Destination{}
}

// File returns a destination that appends to path, creating it if
// absent. An empty path is the console.
func File(path string) Destination {
	return Destination{path: path}
}

// IsConsole reports whether d is the console.
func (d Destination) IsConsole() bool {
	return d.path == ""
}

// Path returns the file path, or "" for the console.
func (d Destination) Path() string {
	return d.path
}

func (d Destination) String() string {
	if d.IsConsole() {
		return "console"
	}
	return "file:" + d.path
}
