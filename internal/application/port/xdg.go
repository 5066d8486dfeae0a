package port

// XDGPaths resolves per-user directories following the XDG base directory spec.
type XDGPaths interface {
	ConfigDir() (string, error)
	StateDir() (string, error)
	LogFile() (string, error)
	// ManDir is the user man1 directory, shared with other programs.
	ManDir() (string, error)
}
