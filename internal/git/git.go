// Package git provides git repository detection for pystack. It uses the
// go-git library so commit-hook activation can be gated on an enclosing work
// tree without requiring the git CLI.
package git

import (
	stderrors "errors"
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
)

// IsRepository reports whether path (or the current working directory when
// path is empty) is inside a git repository. DetectDotGit traverses up the
// directory tree, matching git's own discovery behavior.
func IsRepository(path string) (bool, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return false, fmt.Errorf("getting current directory: %w", err)
		}
	}

	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if stderrors.Is(err, gogit.ErrRepositoryNotExists) {
			return false, nil
		}
		return false, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return true, nil
}
