package main

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_validateSummary(t *testing.T) {
	assert.Equal(t, "validate <flags>: checks whether a username and password can log on, the password is read from USERINFO_PASSWORD or the terminal", validateSummary())
}

func Test_validateHelp(t *testing.T) {
	ob := &bytes.Buffer{}
	validateHelp(ob)
	assert.Equal(
		t,
		"Usage of "+os.Args[0]+" "+validateSummary()+"\n"+
			"  -domain string\n"+
			"    \tOptional: domain of the account, a single dot for the local account database\n"+
			"  -json\n"+
			"    \tOptional: outputs the result in json format\n"+
			"  -stats\n"+
			"    \tOptional: print check metrics after the result\n"+
			"  -user string\n"+
			"    \tRequired: name of the account to log on, either a plain name or a UPN\n",
		ob.String(),
	)
}

func Test_validate(t *testing.T) {
	t.Setenv("USERINFO_PASSWORD", "")
	ob := &bytes.Buffer{}
	eb := &bytes.Buffer{}

	// no user
	pr := &StubPasswordReader{password: []byte("hunter2")}
	err := validate([]string{}, ob, eb, &stubIdentity{}, pr)
	assertHelpError(t, err, "-user is required")
	assert.Empty(t, ob.String())
	assert.Zero(t, pr.calls)

	// prompted password, accepted
	id := &stubIdentity{accepted: true}
	require.NoError(t, validate([]string{"-user", "alice", "-domain", "CORP"}, ob, eb, id, pr))
	assert.Equal(t, "accepted\n", ob.String())
	assert.Equal(t, "Enter password: ", eb.String())
	assert.Equal(t, [][3]string{{"alice", "CORP", "hunter2"}}, id.calls)
	assert.NotContains(t, ob.String(), "hunter2")

	// rejected
	ob.Reset()
	eb.Reset()
	require.NoError(t, validate([]string{"-user", "alice"}, ob, eb, &stubIdentity{accepted: false}, pr))
	assert.Equal(t, "rejected\n", ob.String())

	// json output leaves out an empty domain
	ob.Reset()
	require.NoError(t, validate([]string{"-user", "alice", "-json"}, ob, eb, &stubIdentity{accepted: true}, pr))
	assert.Equal(t, "{\"user\":\"alice\",\"accepted\":true}\n", ob.String())

	ob.Reset()
	require.NoError(t, validate([]string{"-user", "alice", "-domain", ".", "-json"}, ob, eb, &stubIdentity{}, pr))
	assert.Equal(t, "{\"user\":\"alice\",\"domain\":\".\",\"accepted\":false}\n", ob.String())

	// no terminal
	ob.Reset()
	err = validate([]string{"-user", "alice"}, ob, eb, &stubIdentity{}, &StubPasswordReader{err: ErrNoTerminal})
	assert.EqualError(t, err, "out of password reading options, set USERINFO_PASSWORD or run from a terminal")
	assert.Empty(t, ob.String())

	// other read failures
	err = validate([]string{"-user", "alice"}, ob, eb, &stubIdentity{}, &StubPasswordReader{err: errors.New("eof")})
	assert.EqualError(t, err, "error reading password: eof")

	// check failures
	err = validate([]string{"-user", "alice"}, ob, eb, &stubIdentity{validateErr: errors.New("rpc unavailable")}, pr)
	assert.EqualError(t, err, "error while validating credentials: rpc unavailable")
	assert.Empty(t, ob.String())
}

func Test_validateEnvPassword(t *testing.T) {
	t.Setenv("USERINFO_PASSWORD", "from-env")
	ob := &bytes.Buffer{}
	eb := &bytes.Buffer{}

	pr := &StubPasswordReader{password: []byte("from-prompt")}
	id := &stubIdentity{accepted: true}
	require.NoError(t, validate([]string{"-user", "bob@corp.example"}, ob, eb, id, pr))
	assert.Equal(t, [][3]string{{"bob@corp.example", "", "from-env"}}, id.calls)
	assert.Zero(t, pr.calls)
	assert.Empty(t, eb.String())
}
