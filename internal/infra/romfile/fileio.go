package romfile

import (
	"bufio"
	"errors"
	"io/fs"
	"os"

	"github.com/aalvaropc/romconv/internal/domain"
)

// checkEvery is how many input units pass between context checks.
const checkEvery = 4096

const outputMode fs.FileMode = 0o644

// readInput loads the whole input file. Nothing is created on failure.
func readInput(op, path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   op + ".read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}

// writeOutput creates (or truncates) path and hands a buffered writer to fn.
// Whatever fn managed to write is flushed and the file closed even when fn
// fails; the partial output is left in place.
func writeOutput(op, path string, fn func(w *bufio.Writer) error) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, outputMode)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return &domain.OpError{
			Op:   op + ".create",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	w := bufio.NewWriter(f)
	runErr := fn(w)

	if err := w.Flush(); err != nil && runErr == nil {
		runErr = &domain.OpError{Op: op + ".write", Kind: domain.KindIO, Path: path, Err: err}
	}
	if err := f.Close(); err != nil && runErr == nil {
		runErr = &domain.OpError{Op: op + ".close", Kind: domain.KindIO, Path: path, Err: err}
	}
	return runErr
}

func writeErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op + ".write",
		Kind: domain.KindIO,
		Path: path,
		Err:  err,
	}
}
