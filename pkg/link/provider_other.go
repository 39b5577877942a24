//go:build !unix && !windows

package link

// No link facility on this platform; Manager reports PLATFORM_UNSUPPORTED.
func newPlatformProvider() Provider {
	return nil
}
