// Package userinfo answers the identity questions an installer asks of a Windows host: is the current user a local
// administrator, do a set of credentials authenticate, and which managed service accounts are installed.
//
// Every check has two forms. The first returns (bool, error) so callers can tell a negative answer from a failure to
// get one. The second returns a bare bool and treats any failure as a negative answer.
package userinfo

import (
	"errors"
	"fmt"

	"github.com/installkit/userinfo/config"
	"github.com/sirupsen/logrus"
)

type m = map[string]any

var (
	// ErrUnsupported is returned when the running system does not provide a capability a check relies on.
	ErrUnsupported = errors.New("unsupported")

	// ErrUnsupportedPlatform is returned by every check on operating systems other than windows.
	ErrUnsupportedPlatform = fmt.Errorf("%w: requires windows", ErrUnsupported)
)

// Checker runs identity checks against the local machine using the settings it was built with. A Checker is safe
// for concurrent use.
type Checker struct {
	l *logrus.Logger

	logonType           LogonType
	logonProvider       LogonProvider
	placeholderFallback bool
	accountsServer      string

	admin    func() (bool, error)
	logon    func(username, domain, password string, t LogonType, p LogonProvider) error
	accounts func(server string) ([]string, error)

	metrics *checkMetrics
}

// NewChecker configures l from the logging section of c and returns a Checker using the logon and accounts
// sections. An empty config yields the defaults: network logons with the default provider and no placeholder
// accounts.
func NewChecker(l *logrus.Logger, c *config.C) (*Checker, error) {
	err := configLogger(l, c)
	if err != nil {
		return nil, fmt.Errorf("failed to configure the logger: %w", err)
	}

	logonType, err := ParseLogonType(c.GetString("logon.type", LogonNetwork.String()))
	if err != nil {
		return nil, fmt.Errorf("logon.type: %w", err)
	}

	logonProvider, err := ParseLogonProvider(c.GetString("logon.provider", ProviderDefault.String()))
	if err != nil {
		return nil, fmt.Errorf("logon.provider: %w", err)
	}

	ch := &Checker{
		l:                   l,
		logonType:           logonType,
		logonProvider:       logonProvider,
		placeholderFallback: c.GetBool("accounts.placeholder_fallback", false),
		accountsServer:      c.GetString("accounts.server", ""),
		admin:               checkAdmin,
		logon:               logonUser,
		accounts:            enumerateServiceAccounts,
		metrics:             newCheckMetrics(),
	}

	l.WithFields(m{
		"logonType":           ch.logonType,
		"logonProvider":       ch.logonProvider,
		"placeholderFallback": ch.placeholderFallback,
	}).Debug("Identity checker configured")

	if ch.placeholderFallback {
		l.Warn("accounts.placeholder_fallback is enabled, an empty account enumeration will report placeholder names")
	}

	return ch, nil
}
