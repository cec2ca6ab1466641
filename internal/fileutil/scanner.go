package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ScanResult contains the results of a directory walk
type ScanResult struct {
	// Files contains the paths of every regular file found, joined onto the root
	Files []string
	// Errors contains any non-fatal errors encountered during the walk
	Errors []error
}

// ListFiles walks root recursively and returns every regular file beneath it.
//
// Symlinks that resolve to regular files are listed; symlinked directories are
// not descended. A root that is itself a symlink to a directory is followed,
// and the listed paths stay joined onto root as given. A root that cannot be accessed yields an empty file list with
// the access error recorded in Errors rather than a fatal error.
func ListFiles(root string) *ScanResult {
	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	info, err := os.Stat(root)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("failed to access directory: %w", err))
		return result
	}
	if !info.IsDir() {
		result.Errors = append(result.Errors, fmt.Errorf("path is not a directory: %s", root))
		return result
	}

	walkRoot, err := resolveRoot(root)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("failed to resolve directory: %w", err))
		return result
	}
	display := func(path string) string {
		if walkRoot == root {
			return path
		}
		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return path
		}
		return filepath.Join(root, rel)
	}

	walkErr := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		path = display(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // Continue walking
		}

		if d.IsDir() {
			return nil
		}

		if d.Type().IsRegular() {
			result.Files = append(result.Files, path)
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("broken symlink %s: %w", path, err))
				return nil
			}
			if target.Mode().IsRegular() {
				result.Files = append(result.Files, path)
			}
		}

		// Sockets, devices and pipes are never listed
		return nil
	})
	if walkErr != nil {
		result.Errors = append(result.Errors, fmt.Errorf("failed to walk directory: %w", walkErr))
	}

	// Sort files for consistent dispatch order
	sort.Strings(result.Files)

	return result
}

// resolveRoot returns the directory to walk for root. WalkDir does not follow
// a symlinked root, so such a root is resolved to its target.
func resolveRoot(root string) (string, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return "", err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return root, nil
	}
	return filepath.EvalSymlinks(root)
}
