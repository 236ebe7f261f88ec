//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Startup initialises Winsock 2.2. The returned cleanup must be called on exit.
func Startup() (func(), error) {
	var data windows.WSAData
	if err := windows.WSAStartup(uint32(0x0202), &data); err != nil {
		return func() {}, fmt.Errorf("%w: %v", ErrStartup, err)
	}
	return func() { _ = windows.WSACleanup() }, nil
}
