// Package fs implements the file-system ports: ledger exporters and the
// batch form reader.
package fs

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
)

// writeAtomic streams content into a temp file next to path and renames it
// into place, so a failed export never leaves a truncated file.
func writeAtomic(ctx context.Context, path string, write func(w io.Writer) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmp.Name(), path)
}
