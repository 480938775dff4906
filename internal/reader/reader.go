// Package reader loads the whole search source into memory
package reader

import (
	"errors"
	"fmt"
	"os"
)

// ReadError carries the file path and the OS reason it could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("couldn't read file %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

var errIsDir = errors.New("is a directory")

// ReadInput reads the file in one go, no retries.
func ReadInput(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", &ReadError{Path: fileName, Err: err}
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", &ReadError{Path: fileName, Err: errIsDir}
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", &ReadError{Path: fileName, Err: err}
	}
	return string(raw), nil
}
