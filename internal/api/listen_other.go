//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package api

import "syscall"

// listenControl is a no-op where SO_REUSEPORT is unavailable.
func listenControl(bool) func(network, address string, c syscall.RawConn) error {
	return nil
}
