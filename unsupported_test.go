//go:build !windows

package userinfo

import (
	"testing"

	"github.com/installkit/userinfo/config"
	"github.com/installkit/userinfo/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_Unsupported(t *testing.T) {
	l := test.NewLogger()
	ch, err := NewChecker(l, config.NewC(l))
	require.NoError(t, err)

	admin, err := ch.CheckAdmin()
	assert.False(t, admin)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.False(t, ch.IsUserAnAdmin())

	ok, err := ch.ValidatePassword("alice", "", "pw")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.False(t, ch.ValidCredentials("alice", "", "pw"))

	names, err := ch.ListManagedServiceAccounts()
	assert.Nil(t, names)
	assert.ErrorIs(t, err, ErrUnsupported)
}
