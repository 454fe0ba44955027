package userinfo

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// LogonType selects how LogonUser authenticates a set of credentials.
type LogonType uint32

const (
	LogonInteractive      LogonType = 2
	LogonNetwork          LogonType = 3
	LogonBatch            LogonType = 4
	LogonService          LogonType = 5
	LogonNetworkCleartext LogonType = 8
	LogonNewCredentials   LogonType = 9
)

var logonTypeNames = map[LogonType]string{
	LogonInteractive:      "interactive",
	LogonNetwork:          "network",
	LogonBatch:            "batch",
	LogonService:          "service",
	LogonNetworkCleartext: "network_cleartext",
	LogonNewCredentials:   "new_credentials",
}

func (t LogonType) String() string {
	if s, ok := logonTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("LogonType(%d)", uint32(t))
}

// ParseLogonType accepts the names produced by LogonType.String, case insensitive.
func ParseLogonType(s string) (LogonType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range logonTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown logon type `%s`", s)
}

// LogonProvider selects the logon provider LogonUser uses.
type LogonProvider uint32

const (
	ProviderDefault LogonProvider = 0
	ProviderWinNT35 LogonProvider = 1
	ProviderWinNT40 LogonProvider = 2
	ProviderWinNT50 LogonProvider = 3
	ProviderVirtual LogonProvider = 4
)

var logonProviderNames = map[LogonProvider]string{
	ProviderDefault: "default",
	ProviderWinNT35: "winnt35",
	ProviderWinNT40: "winnt40",
	ProviderWinNT50: "winnt50",
	ProviderVirtual: "virtual",
}

func (p LogonProvider) String() string {
	if s, ok := logonProviderNames[p]; ok {
		return s
	}
	return fmt.Sprintf("LogonProvider(%d)", uint32(p))
}

// ParseLogonProvider accepts the names produced by LogonProvider.String, case insensitive.
func ParseLogonProvider(s string) (LogonProvider, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range logonProviderNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown logon provider `%s`", s)
}

// Win32 errors LogonUser returns when it evaluated the credentials and refused them. Anything else means the check
// itself could not be completed.
var logonRejections = map[syscall.Errno]string{
	1326: "logon failure",
	1327: "account restriction",
	1328: "invalid logon hours",
	1329: "invalid workstation",
	1330: "password expired",
	1331: "account disabled",
	1332: "no mapping between account names and security ids",
	1355: "no such domain",
	1385: "logon type not granted",
	1793: "account expired",
	1907: "password must change",
	1909: "account locked out",
}

// logonRejection returns the reason LogonUser refused the credentials, or false if err is not a refusal.
func logonRejection(err error) (string, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return "", false
	}

	reason, ok := logonRejections[errno]
	return reason, ok
}

// ValidatePassword attempts a single logon with the given credentials and reports whether the system accepted them.
// An empty domain lets the system resolve the username the way it does for unqualified names. A refusal is
// (false, nil). Any token the logon produces is closed before returning.
func (c *Checker) ValidatePassword(username, domain, password string) (bool, error) {
	fields := m{"username": username, "domain": domain, "logonType": c.logonType}

	err := c.logon(username, domain, password, c.logonType, c.logonProvider)
	if err == nil {
		c.metrics.logon.observe(true, nil)
		c.l.WithFields(fields).Debug("Credentials accepted")
		return true, nil
	}

	if reason, ok := logonRejection(err); ok {
		c.metrics.logon.observe(false, nil)
		c.l.WithFields(fields).WithField("reason", reason).Debug("Credentials rejected")
		return false, nil
	}

	c.metrics.logon.observe(false, err)
	return false, fmt.Errorf("logon of %q failed: %w", username, err)
}

// ValidCredentials is ValidatePassword with failures logged and reported as false.
func (c *Checker) ValidCredentials(username, domain, password string) bool {
	ok, err := c.ValidatePassword(username, domain, password)
	if err != nil {
		c.l.WithError(err).WithField("username", username).Error("Failed to validate credentials")
		return false
	}

	return ok
}
