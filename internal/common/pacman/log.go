// Package pacman reads and parses the pacman transaction log.
package pacman

import (
	"os"
)

// DefaultLogPath is where pacman writes its transaction log
const DefaultLogPath = "/var/log/pacman.log"

// ReadError reports a log file that could not be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return "failed to read `" + e.Path + "`, check permissions?: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadLog reads the whole log file into memory
func ReadLog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return string(data), nil
}
