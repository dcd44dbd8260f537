// FILE: ctime_other.go
//go:build !linux && !darwin && !freebsd && !netbsd && !windows

package daylog

import (
	"io/fs"
	"time"
)

// creationTime uses the modification time where no birth time is exposed
func creationTime(_ string, info fs.FileInfo) time.Time {
	return info.ModTime()
}
