//go:build !windows

package filesystem

import "os"

// writeFileAtomicImpl routes WriteFileAtomic to renameio.
func writeFileAtomicImpl(filename string, data []byte, perm os.FileMode) error {
	return WriteFileAtomicUnix(filename, data, perm)
}
