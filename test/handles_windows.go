//go:build windows

package test

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/windows"
)

var procGetProcessHandleCount = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetProcessHandleCount")

// HandleCount returns the number of open handles held by the current process.
func HandleCount(t *testing.T) int {
	t.Helper()

	var count uint32
	r1, _, err := procGetProcessHandleCount.Call(uintptr(windows.CurrentProcess()), uintptr(unsafe.Pointer(&count)))
	if r1 == 0 {
		t.Fatalf("GetProcessHandleCount: %v", err)
	}

	return int(count)
}
