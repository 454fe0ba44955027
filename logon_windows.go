package userinfo

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var procLogonUserW = windows.NewLazySystemDLL("advapi32.dll").NewProc("LogonUserW")

func logonUser(username, domain, password string, logonType LogonType, provider LogonProvider) error {
	user, err := utf16OrNil(username)
	if err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}

	dom, err := utf16OrNil(domain)
	if err != nil {
		return fmt.Errorf("invalid domain: %w", err)
	}

	pass, err := utf16OrNil(password)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	defer clear(pass)

	var token windows.Token
	r1, _, e1 := procLogonUserW.Call(
		uintptr(unsafe.Pointer(firstOrNil(user))),
		uintptr(unsafe.Pointer(firstOrNil(dom))),
		uintptr(unsafe.Pointer(firstOrNil(pass))),
		uintptr(logonType),
		uintptr(provider),
		uintptr(unsafe.Pointer(&token)),
	)
	if r1 == 0 {
		return e1
	}
	token.Close()

	return nil
}
