//go:build unix

package access

import "golang.org/x/sys/unix"

func check(name string, mode uint32) bool {
	return unix.Access(name, mode) == nil
}
