package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/installkit/userinfo"
)

type accountsFlags struct {
	set   *flag.FlagSet
	json  *bool
	stats *bool
}

func newAccountsFlags() *accountsFlags {
	af := accountsFlags{set: flag.NewFlagSet("accounts", flag.ContinueOnError)}
	af.set.Usage = func() {}
	af.json = af.set.Bool("json", false, "Optional: outputs the accounts in json format")
	af.stats = af.set.Bool("stats", false, "Optional: print check metrics after the result")

	return &af
}

func accounts(args []string, out io.Writer, errOut io.Writer, id identity) error {
	af := newAccountsFlags()
	err := af.set.Parse(args)
	if err != nil {
		return err
	}

	names, err := id.ListManagedServiceAccounts()
	if errors.Is(err, userinfo.ErrUnsupported) {
		return fmt.Errorf("managed service accounts can not be listed on this system: %s", err)
	} else if err != nil {
		return fmt.Errorf("error while listing managed service accounts: %s", err)
	}

	if *af.json {
		b, _ := json.Marshal(struct {
			Accounts []string `json:"accounts"`
		}{names})
		_, _ = out.Write(b)
		_, _ = out.Write([]byte("\n"))
	} else {
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
	}

	writeStats(*af.stats, out)
	return nil
}

func accountsSummary() string {
	return "accounts <flags>: lists the managed service accounts installed on this machine"
}

func accountsHelp(out io.Writer) {
	af := newAccountsFlags()
	out.Write([]byte("Usage of " + os.Args[0] + " " + accountsSummary() + "\n"))
	af.set.SetOutput(out)
	af.set.PrintDefaults()
}
