// FILE: ctime_linux.go
//go:build linux

package daylog

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// creationTime reads the statx birth time, falling back to the modification
// time on file systems that do not record it
func creationTime(path string, info fs.FileInfo) time.Time {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err != nil || stx.Mask&unix.STATX_BTIME == 0 {
		return info.ModTime()
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
}
