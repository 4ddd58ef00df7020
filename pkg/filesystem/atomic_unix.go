//go:build !windows

package filesystem

import (
	"os"

	"github.com/google/renameio/v2"
)

// WriteFileAtomicUnix writes through a temp file in the target directory and
// renames it into place. Durability depends on the filesystem's fsync behavior.
func WriteFileAtomicUnix(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}
