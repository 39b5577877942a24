//go:build unix

package link

import (
	"os"

	"github.com/arthur-debert/modgraft/pkg/errors"
	"github.com/arthur-debert/modgraft/pkg/logging"
)

// symlinkProvider creates POSIX symbolic links. The native API covers both
// creation and introspection, so no child process is spawned; symlink(2) is
// atomic, so a failed create leaves nothing behind.
type symlinkProvider struct{}

func newPlatformProvider() Provider {
	return &symlinkProvider{}
}

func (p *symlinkProvider) Kind() Kind {
	return KindSymlink
}

func (p *symlinkProvider) Create(linkPath, targetDir string) error {
	logger := logging.GetLogger("link.symlink")
	logger.Debug().Str("link", linkPath).Str("target", targetDir).Msg("Creating symlink")

	if err := os.Symlink(targetDir, linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrProviderFailure,
			"failed to create symlink %s -> %s", linkPath, targetDir)
	}
	return nil
}

func (p *symlinkProvider) ReadTarget(linkPath string) (string, error) {
	return os.Readlink(linkPath)
}
