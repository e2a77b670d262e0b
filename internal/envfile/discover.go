package envfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/envlint/pkg/shared/files"
)

// FilePrefix is the name prefix a file must carry to be picked up from a directory.
const FilePrefix = ".env"

// DiscoverOptions controls how input paths are expanded into env files.
type DiscoverOptions struct {
	Exclude   []string
	Recursive bool
}

// Discover expands the given paths into a sorted, de-duplicated list of env files.
// Files passed explicitly are taken as they are; directories are searched for
// files whose name starts with FilePrefix.
func Discover(paths []string, opts DiscoverOptions, logger hclog.Logger) ([]string, error) {
	excluded, err := absSet(opts.Exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var result []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		result = append(result, path)
	}

	for _, p := range paths {
		expanded, err := files.ExpandPath(p)
		if err != nil {
			return nil, fmt.Errorf("failed to expand path %q: %w", p, err)
		}
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %q: %w", p, err)
		}
		if _, skip := excluded[abs]; skip {
			logger.Debug("skipping excluded path", "path", p)
			continue
		}

		info, err := os.Stat(expanded)
		if err != nil {
			return nil, fmt.Errorf("path stat error: %w", err)
		}
		if !info.IsDir() {
			add(filepath.Clean(expanded))
			continue
		}

		found, err := scanDir(filepath.Clean(expanded), opts.Recursive, excluded, logger)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	sort.Strings(result)
	logger.Debug("discovered env files", "count", len(result))
	return result, nil
}

// scanDir lists env files below root, descending into subdirectories only when recursive.
func scanDir(root string, recursive bool, excluded map[string]struct{}, logger hclog.Logger) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access %q: %w", path, err)
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve path %q: %w", path, err)
		}
		if _, skip := excluded[abs]; skip {
			logger.Debug("skipping excluded path", "path", path)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && !recursive {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && IsEnvFileName(d.Name()) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// IsEnvFileName reports whether a bare file name looks like an env file.
func IsEnvFileName(name string) bool {
	return strings.HasPrefix(name, FilePrefix)
}

func absSet(paths []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		expanded, err := files.ExpandPath(p)
		if err != nil {
			return nil, fmt.Errorf("failed to expand exclude path %q: %w", p, err)
		}
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve exclude path %q: %w", p, err)
		}
		set[abs] = struct{}{}
	}
	return set, nil
}
