package rom

import (
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// CreateFS defines a file system interface that supports creating files.
type CreateFS interface {
	// Create creates a new file for writing. The file is visible under
	// name once Close returns without error.
	Create(name string) (file io.WriteCloser, err error)
}

// Aborter is implemented by files from a CreateFS that can discard
// their content instead of committing it on Close.
type Aborter interface {
	Abort() error
}

// DirFS is a CreateFS rooted at an OS directory. Files are written to a
// temporary file in the directory, and renamed into place on Close.
type DirFS string

var _ CreateFS = DirFS("")

// pendingFile is a temporary file renamed to its final path on Close.
type pendingFile struct {
	*renameio.PendingFile
}

func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	pending, err := renameio.NewPendingFile(filepath.Join(string(dir), name),
		renameio.WithTempDir(string(dir)),
		renameio.WithPermissions(0644),
	)
	if err != nil {
		return
	}

	file = &pendingFile{PendingFile: pending}

	return
}

func (pf *pendingFile) Close() (err error) {
	err = pf.CloseAtomicallyReplace()
	if err != nil {
		pf.Cleanup()
	}

	return
}

// Abort discards the temporary file.
func (pf *pendingFile) Abort() error {
	return pf.Cleanup()
}
