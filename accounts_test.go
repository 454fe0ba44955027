package userinfo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_ListManagedServiceAccounts(t *testing.T) {
	ch, _ := newTestChecker(t, "accounts:\n  server: dc01\n")

	var servers []string
	ch.accounts = func(server string) ([]string, error) {
		servers = append(servers, server)
		return []string{"svc-sql$", "svc-web$", "svc-backup$"}, nil
	}

	found := ch.metrics.accounts.found.Count()
	names, err := ch.ListManagedServiceAccounts()
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-sql$", "svc-web$", "svc-backup$"}, names)
	assert.Equal(t, []string{"dc01"}, servers)
	assert.Equal(t, found+1, ch.metrics.accounts.found.Count())
}

func TestChecker_ListManagedServiceAccountsEmpty(t *testing.T) {
	ch, tl := newTestChecker(t, "")
	ch.accounts = func(string) ([]string, error) { return nil, nil }

	empty := ch.metrics.accounts.empty.Count()
	for i := 0; i < 3; i++ {
		names, err := ch.ListManagedServiceAccounts()
		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	}
	assert.Equal(t, empty+3, ch.metrics.accounts.empty.Count())
	for _, line := range tl.Logs {
		assert.NotContains(t, line, "level=warning")
	}
}

func TestChecker_ListManagedServiceAccountsPlaceholder(t *testing.T) {
	ch, tl := newTestChecker(t, "accounts:\n  placeholder_fallback: true\n")
	ch.accounts = func(string) ([]string, error) { return []string{}, nil }

	names, err := ch.ListManagedServiceAccounts()
	require.NoError(t, err)
	assert.Equal(t, []string{"Kalle", "Nisse", "Putte"}, names)
	require.Len(t, tl.Logs, 1)
	assert.Contains(t, tl.Logs[0], "level=warning msg=\"No managed service accounts found, reporting placeholder accounts\"")

	// callers get their own copy
	names[0] = "changed"
	names, err = ch.ListManagedServiceAccounts()
	require.NoError(t, err)
	assert.Equal(t, []string{"Kalle", "Nisse", "Putte"}, names)

	// real results are never mixed with placeholders
	ch.accounts = func(string) ([]string, error) { return []string{"svc-sql$"}, nil }
	names, err = ch.ListManagedServiceAccounts()
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-sql$"}, names)

	// nor are failures replaced by them
	ch.accounts = func(string) ([]string, error) { return nil, errors.New("0xc0000136") }
	names, err = ch.ListManagedServiceAccounts()
	assert.Error(t, err)
	assert.Nil(t, names)
}

func TestChecker_ListManagedServiceAccountsUnsupported(t *testing.T) {
	ch, _ := newTestChecker(t, "accounts:\n  placeholder_fallback: true\n")
	ch.accounts = func(string) ([]string, error) {
		return nil, fmt.Errorf("%w: logoncli.dll!NetEnumerateServiceAccounts: not found", ErrUnsupported)
	}

	unsupported := ch.metrics.accounts.unsupported.Count()
	names, err := ch.ListManagedServiceAccounts()
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Nil(t, names)
	assert.Equal(t, unsupported+1, ch.metrics.accounts.unsupported.Count())
}

func TestChecker_ListManagedServiceAccountsError(t *testing.T) {
	ch, _ := newTestChecker(t, "")
	cause := errors.New("STATUS_OPEN_FAILED")
	ch.accounts = func(string) ([]string, error) { return nil, cause }

	failed := ch.metrics.accounts.failed.Count()
	names, err := ch.ListManagedServiceAccounts()
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnsupported)
	assert.EqualError(t, err, "failed to enumerate managed service accounts: STATUS_OPEN_FAILED")
	assert.Nil(t, names)
	assert.Equal(t, failed+1, ch.metrics.accounts.failed.Count())
}
