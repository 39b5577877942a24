package link

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/modgraft/pkg/errors"
	"github.com/arthur-debert/modgraft/pkg/logging"
	"github.com/rs/zerolog"
)

// Manager is the platform-agnostic facade over the active Provider. It
// validates arguments, normalizes paths, enforces the overwrite policy, and
// keeps the link-vs-directory delete discipline. The filesystem is the source
// of truth: no link state is cached across calls.
//
// Create and Remove are blocking and must not run concurrently against the
// same link path; callers serialize per-path. Distinct paths are independent.
type Manager struct {
	provider Provider
	logger   zerolog.Logger
}

// NewManager returns a Manager bound to the provider for the current
// platform. On platforms without a link facility the Manager is still usable
// for inspection but every mutation fails with PLATFORM_UNSUPPORTED.
func NewManager() *Manager {
	return &Manager{
		provider: newPlatformProvider(),
		logger:   logging.GetLogger("link.manager"),
	}
}

// NewManagerWithProvider returns a Manager using the given provider.
func NewManagerWithProvider(p Provider) *Manager {
	return &Manager{
		provider: p,
		logger:   logging.GetLogger("link.manager"),
	}
}

// Supported reports whether a link provider exists for this platform.
func (m *Manager) Supported() bool {
	return m.provider != nil
}

// Create materializes a directory link at linkPath resolving to targetDir.
// targetDir must exist as a directory. When something already occupies
// linkPath the call fails with ALREADY_EXISTS unless overwrite is set, in
// which case the existing entry is removed first - making Create with
// overwrite idempotent regardless of prior state. The link's parent
// directory is created as needed.
func (m *Manager) Create(linkPath, targetDir string, overwrite bool) error {
	if strings.TrimSpace(linkPath) == "" || strings.TrimSpace(targetDir) == "" {
		return errors.New(errors.ErrInvalidInput, "link path and target directory must be non-blank")
	}
	if !m.Supported() {
		return errors.New(errors.ErrPlatformUnsupported, "no link provider for this platform")
	}

	linkPath, err := normalizePath(linkPath)
	if err != nil {
		return err
	}
	targetDir, err = normalizePath(targetDir)
	if err != nil {
		return err
	}

	info, err := os.Stat(targetDir)
	if err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrTargetNotFound,
			"target directory does not exist: %s", targetDir).
			WithDetail("target", targetDir)
	}

	if _, err := os.Lstat(linkPath); err == nil {
		if !overwrite {
			return errors.Newf(errors.ErrAlreadyExists,
				"destination already exists: %s", linkPath).
				WithDetail("link", linkPath)
		}
		if err := m.Remove(linkPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create parent directory for %s", linkPath)
	}

	m.logger.Info().
		Str("link", linkPath).
		Str("target", targetDir).
		Str("kind", string(m.provider.Kind())).
		Msg("Creating link")

	return m.provider.Create(linkPath, targetDir)
}

// Remove deletes whatever occupies linkPath. A link is deleted as a single
// entry - never by recursing through it, so the repository contents behind it
// are untouched. A plain directory is deleted recursively. Nothing at the
// path is a no-op success.
func (m *Manager) Remove(linkPath string) error {
	if strings.TrimSpace(linkPath) == "" {
		return errors.New(errors.ErrInvalidInput, "link path must be non-blank")
	}

	linkPath, err := normalizePath(linkPath)
	if err != nil {
		return err
	}

	info, err := os.Lstat(linkPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", linkPath)
	}

	if m.IsSymbolicLink(linkPath) {
		m.logger.Info().Str("link", linkPath).Msg("Removing link entry")
		if err := os.Remove(linkPath); err != nil {
			return errors.Wrapf(err, errors.ErrDirRemove, "failed to remove link %s", linkPath)
		}
		return nil
	}

	if info.IsDir() {
		m.logger.Info().Str("path", linkPath).Msg("Removing plain directory recursively")
		if err := os.RemoveAll(linkPath); err != nil {
			return errors.Wrapf(err, errors.ErrDirRemove, "failed to remove directory %s", linkPath)
		}
		return nil
	}

	if err := os.Remove(linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrDirRemove, "failed to remove %s", linkPath)
	}
	return nil
}

// IsSymbolicLink reports whether path is a link entry (symlink or reparse
// point) rather than a plain file or directory. It never escalates: a
// vanished path or permission failure degrades to false, since a false
// negative here only changes the delete strategy.
func (m *Manager) IsSymbolicLink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			m.logger.Debug().Err(err).Str("path", path).Msg("Lstat failed during link check")
		}
		return false
	}
	// Junctions surface as ModeIrregular on some Go/Windows combinations.
	return info.Mode()&(os.ModeSymlink|os.ModeIrregular) != 0
}

// GetTarget resolves the target of the link at linkPath. Returns false when
// the path is not a link or when resolution fails for any reason.
func (m *Manager) GetTarget(linkPath string) (string, bool) {
	if m.provider == nil || !m.IsSymbolicLink(linkPath) {
		return "", false
	}

	linkPath, err := normalizePath(linkPath)
	if err != nil {
		return "", false
	}

	target, rerr := m.provider.ReadTarget(linkPath)
	if rerr != nil {
		m.logger.Debug().Err(rerr).Str("link", linkPath).Msg("Failed to resolve link target")
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), target)
	}
	return filepath.Clean(target), true
}

// Inspect classifies what occupies path right now.
func (m *Manager) Inspect(path string) Kind {
	info, err := os.Lstat(path)
	if err != nil {
		return KindAbsent
	}
	if m.IsSymbolicLink(path) {
		if m.provider != nil {
			return m.provider.Kind()
		}
		return KindSymlink
	}
	if info.IsDir() {
		return KindPlainDir
	}
	return KindAbsent
}

// normalizePath resolves path to absolute form with trailing separators
// stripped, so equivalent spellings of the same path produce identical
// on-disk state across calls.
func normalizePath(path string) (string, error) {
	abs, err := filepath.Abs(strings.TrimSpace(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", path)
	}
	return filepath.Clean(abs), nil
}
