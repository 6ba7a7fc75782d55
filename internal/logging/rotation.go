package logging

import (
	"os"
	"path/filepath"
	"slices"
	"time"
)

const (
	logFilePrefix = "g-project_"
	logFileSuffix = ".log"
)

type logFile struct {
	path    string
	modTime time.Time
}

// rotate keeps the newest maxFiles session logs in dir. Files that do not
// follow the session log naming are left alone.
func rotate(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, logFilePrefix+"*"+logFileSuffix))
	if err != nil {
		return err
	}
	if len(matches) <= maxFiles {
		return nil
	}

	files := make([]logFile, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, logFile{path: path, modTime: info.ModTime()})
	}
	slices.SortFunc(files, func(a, b logFile) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		// same mtime: the embedded timestamp orders them
		if a.path < b.path {
			return -1
		}
		return 1
	})

	for len(files) > maxFiles {
		_ = os.Remove(files[0].path)
		files = files[1:]
	}
	return nil
}
