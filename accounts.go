package userinfo

import (
	"errors"
	"fmt"
	"slices"
)

// Names reported for an empty enumeration when accounts.placeholder_fallback is enabled. Older releases returned
// these instead of an empty list; they are not real accounts.
var placeholderAccounts = []string{"Kalle", "Nisse", "Putte"}

// ListManagedServiceAccounts returns the managed service accounts installed on the machine, or on the server named by
// accounts.server, in enumeration order. It returns an error wrapping ErrUnsupported when the system has no
// enumeration API. An empty enumeration is an empty, non-nil slice unless placeholder accounts are enabled.
func (c *Checker) ListManagedServiceAccounts() ([]string, error) {
	names, err := c.accounts(c.accountsServer)
	if errors.Is(err, ErrUnsupported) {
		c.metrics.accounts.unsupported.Inc(1)
		c.l.WithError(err).Debug("Managed service account enumeration is not available")
		return nil, err
	}

	if err != nil {
		c.metrics.accounts.failed.Inc(1)
		return nil, fmt.Errorf("failed to enumerate managed service accounts: %w", err)
	}

	c.metrics.accounts.count.Update(int64(len(names)))
	if len(names) == 0 {
		c.metrics.accounts.empty.Inc(1)
		if c.placeholderFallback {
			c.l.WithField("accounts", placeholderAccounts).Warn("No managed service accounts found, reporting placeholder accounts")
			return slices.Clone(placeholderAccounts), nil
		}

		c.l.Debug("No managed service accounts found")
		return []string{}, nil
	}

	c.metrics.accounts.found.Inc(1)
	c.l.WithField("count", len(names)).Debug("Enumerated managed service accounts")
	return names, nil
}
