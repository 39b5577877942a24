// Package link creates, removes, and inspects the directory links that graft
// a managed mod repository into a game's plugin tree without copying files.
//
// The platform operation itself lives behind the Provider interface: a
// directory junction on Windows, a symbolic link on POSIX. Exactly one
// provider is selected at process start by a platform probe; Manager never
// branches on the OS per call.
package link

// Kind identifies what currently occupies a link path.
type Kind string

const (
	KindJunction Kind = "junction"
	KindSymlink  Kind = "symlink"
	KindPlainDir Kind = "directory"
	KindAbsent   Kind = "absent"
)

// Provider performs the platform-specific link operation. Implementations
// must guarantee that a failed Create leaves no entry behind at linkPath.
type Provider interface {
	// Kind returns the kind of link this provider creates.
	Kind() Kind

	// Create materializes a directory link at linkPath resolving to
	// targetDir. Both paths are absolute and normalized by the caller, and
	// nothing exists at linkPath when this is called.
	Create(linkPath, targetDir string) error

	// ReadTarget resolves the target path stored in the link at linkPath.
	ReadTarget(linkPath string) (string, error)
}
