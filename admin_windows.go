package userinfo

import (
	"errors"
	"runtime"
	"unsafe"

	"github.com/installkit/userinfo/util"
	"golang.org/x/sys/windows"
)

// Rights on the notional object protected by the probe descriptor
const (
	probeAccessRead  = 1
	probeAccessWrite = 2
)

var procAccessCheck = windows.NewLazySystemDLL("advapi32.dll").NewProc("AccessCheck")

type genericMapping struct {
	GenericRead    uint32
	GenericWrite   uint32
	GenericExecute uint32
	GenericAll     uint32
}

// privilegeSet has room for the one privilege AccessCheck can report for this descriptor
type privilegeSet struct {
	PrivilegeCount uint32
	Control        uint32
	Privilege      [1]windows.LUIDAndAttributes
}

// checkAdmin asks AccessCheck whether the effective token may read an object whose DACL grants access only to
// BUILTIN\Administrators. Unlike a group lookup this honors deny-only groups in filtered (UAC) tokens.
func checkAdmin() (bool, error) {
	// The thread token we read must belong to the thread the check runs on
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	token, err := openEffectiveToken()
	if err != nil {
		return false, err
	}
	defer token.Close()

	// AccessCheck requires an impersonation token. It is never assigned to the thread.
	var impersonation windows.Token
	err = windows.DuplicateTokenEx(token, windows.TOKEN_QUERY|windows.TOKEN_IMPERSONATE, nil,
		windows.SecurityImpersonation, windows.TokenImpersonation, &impersonation)
	if err != nil {
		return false, util.NewContextualError("Failed to duplicate token", m{"step": "duplicate_token"}, err)
	}
	defer impersonation.Close()

	var sid *windows.SID
	err = windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid)
	if err != nil {
		return false, util.NewContextualError("Failed to allocate the administrators SID", m{"step": "allocate_sid"}, err)
	}
	defer windows.FreeSid(sid)

	sd, err := adminsOnlyDescriptor(sid)
	if err != nil {
		return false, err
	}

	return accessCheck(sd, impersonation)
}

// openEffectiveToken returns the impersonation token of the current thread, or the process token when the thread is
// not impersonating.
func openEffectiveToken() (windows.Token, error) {
	var token windows.Token
	access := uint32(windows.TOKEN_DUPLICATE | windows.TOKEN_QUERY)

	err := windows.OpenThreadToken(windows.CurrentThread(), access, true, &token)
	if err == nil {
		return token, nil
	}

	if !errors.Is(err, windows.ERROR_NO_TOKEN) {
		return 0, util.NewContextualError("Failed to open the thread token", m{"step": "open_thread_token"}, err)
	}

	err = windows.OpenProcessToken(windows.CurrentProcess(), access, &token)
	if err != nil {
		return 0, util.NewContextualError("Failed to open the process token", m{"step": "open_process_token"}, err)
	}

	return token, nil
}

// adminsOnlyDescriptor builds an absolute security descriptor owned by sid with a DACL granting read and write to sid
// and nobody else. The descriptor and its DACL live in Go memory.
func adminsOnlyDescriptor(sid *windows.SID) (*windows.SECURITY_DESCRIPTOR, error) {
	dacl, err := windows.ACLFromEntries([]windows.EXPLICIT_ACCESS{{
		AccessPermissions: probeAccessRead | probeAccessWrite,
		AccessMode:        windows.GRANT_ACCESS,
		Inheritance:       windows.NO_INHERITANCE,
		Trustee: windows.TRUSTEE{
			TrusteeForm:  windows.TRUSTEE_IS_SID,
			TrusteeType:  windows.TRUSTEE_IS_GROUP,
			TrusteeValue: windows.TrusteeValueFromSID(sid),
		},
	}}, nil)
	if err != nil {
		return nil, util.NewContextualError("Failed to build the DACL", m{"step": "build_dacl"}, err)
	}

	sd, err := windows.NewSecurityDescriptor()
	if err != nil {
		return nil, util.NewContextualError("Failed to initialize the security descriptor", m{"step": "init_descriptor"}, err)
	}

	if err = sd.SetDACL(dacl, true, false); err != nil {
		return nil, util.NewContextualError("Failed to set the DACL", m{"step": "set_dacl"}, err)
	}

	// AccessCheck rejects descriptors without an owner and group
	if err = sd.SetOwner(sid, false); err != nil {
		return nil, util.NewContextualError("Failed to set the descriptor owner", m{"step": "set_owner"}, err)
	}
	if err = sd.SetGroup(sid, false); err != nil {
		return nil, util.NewContextualError("Failed to set the descriptor group", m{"step": "set_group"}, err)
	}

	if !sd.IsValid() {
		return nil, util.NewContextualError("Security descriptor is not valid", m{"step": "validate_descriptor"}, nil)
	}

	return sd, nil
}

func accessCheck(sd *windows.SECURITY_DESCRIPTOR, token windows.Token) (bool, error) {
	mapping := genericMapping{
		GenericRead:  probeAccessRead,
		GenericWrite: probeAccessWrite,
		GenericAll:   probeAccessRead | probeAccessWrite,
	}

	var (
		privileges    privilegeSet
		privilegesLen = uint32(unsafe.Sizeof(privileges))
		granted       uint32
		status        int32
	)

	r1, _, e1 := procAccessCheck.Call(
		uintptr(unsafe.Pointer(sd)),
		uintptr(token),
		probeAccessRead,
		uintptr(unsafe.Pointer(&mapping)),
		uintptr(unsafe.Pointer(&privileges)),
		uintptr(unsafe.Pointer(&privilegesLen)),
		uintptr(unsafe.Pointer(&granted)),
		uintptr(unsafe.Pointer(&status)),
	)
	runtime.KeepAlive(sd)
	if r1 == 0 {
		return false, util.NewContextualError("Failed to run the access check", m{"step": "access_check"}, e1)
	}

	return status != 0, nil
}
