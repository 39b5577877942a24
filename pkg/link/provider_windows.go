//go:build windows

package link

import (
	stderrors "errors"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/modgraft/pkg/errors"
	"github.com/arthur-debert/modgraft/pkg/logging"
)

// junctionProvider creates Windows directory junctions by shelling out to
// mklink /J, the one link kind that needs no elevated rights. The standard
// library has no junction-creation API, but os.Readlink does resolve
// mount-point reparse data, so introspection stays native.
type junctionProvider struct{}

func newPlatformProvider() Provider {
	return &junctionProvider{}
}

func (p *junctionProvider) Kind() Kind {
	return KindJunction
}

func (p *junctionProvider) Create(linkPath, targetDir string) error {
	logger := logging.GetLogger("link.junction")
	logger.Debug().Str("link", linkPath).Str("target", targetDir).Msg("Creating junction")

	// mklink is a cmd.exe builtin, not a standalone executable.
	cmd := exec.Command("cmd", "/C", "mklink", "/J", linkPath, targetDir)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			// mklink refuses to touch an existing destination and removes
			// nothing on failure, so the filesystem is unchanged here.
			return errors.Newf(errors.ErrProviderFailure,
				"mklink exited with status %d: %s",
				exitErr.ExitCode(), strings.TrimSpace(string(out))).
				WithDetail("link", linkPath).
				WithDetail("target", targetDir)
		}
		return errors.Wrap(err, errors.ErrSpawnFailure,
			"could not start mklink; elevated rights may be required").
			WithDetail("link", linkPath)
	}

	// Belt and braces: mklink reports success but the entry must exist.
	if _, statErr := os.Lstat(linkPath); statErr != nil {
		return errors.Wrap(statErr, errors.ErrProviderFailure,
			"mklink reported success but no junction exists")
	}
	return nil
}

func (p *junctionProvider) ReadTarget(linkPath string) (string, error) {
	// os.Readlink understands IO_REPARSE_TAG_MOUNT_POINT.
	return os.Readlink(linkPath)
}
