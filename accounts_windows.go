package userinfo

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	// logoncli.dll and its export are missing before windows 7 and on some server core images
	procNetEnumerateServiceAccounts = windows.NewLazySystemDLL("logoncli.dll").NewProc("NetEnumerateServiceAccounts")

	serviceAccountEnumeration = newCapability("logoncli.dll!NetEnumerateServiceAccounts", procNetEnumerateServiceAccounts.Find)
)

func enumerateServiceAccounts(server string) ([]string, error) {
	if err := serviceAccountEnumeration.Available(); err != nil {
		return nil, err
	}

	srv, err := utf16OrNil(server)
	if err != nil {
		return nil, err
	}

	var (
		count    uint32
		accounts **uint16
	)

	r1, _, _ := procNetEnumerateServiceAccounts.Call(
		uintptr(unsafe.Pointer(firstOrNil(srv))),
		0,
		uintptr(unsafe.Pointer(&count)),
		uintptr(unsafe.Pointer(&accounts)),
	)
	if err := ntStatusError(r1); err != nil {
		return nil, err
	}

	if accounts == nil {
		return []string{}, nil
	}
	defer windows.NetApiBufferFree((*byte)(unsafe.Pointer(accounts)))

	names := make([]string, 0, count)
	for _, p := range unsafe.Slice(accounts, count) {
		names = append(names, windows.UTF16PtrToString(p))
	}

	return names, nil
}

// ntStatusError returns the NTSTATUS held in the low 32 bits of r1, or nil for STATUS_SUCCESS. The upper half of the
// register is undefined on 64 bit systems.
func ntStatusError(r1 uintptr) error {
	if status := windows.NTStatus(uint32(r1)); status != windows.STATUS_SUCCESS {
		return status
	}
	return nil
}
