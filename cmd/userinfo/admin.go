package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
)

type adminFlags struct {
	set   *flag.FlagSet
	json  *bool
	stats *bool
}

func newAdminFlags() *adminFlags {
	af := adminFlags{set: flag.NewFlagSet("admin", flag.ContinueOnError)}
	af.set.Usage = func() {}
	af.json = af.set.Bool("json", false, "Optional: outputs the result in json format")
	af.stats = af.set.Bool("stats", false, "Optional: print check metrics after the result")

	return &af
}

func admin(args []string, out io.Writer, errOut io.Writer, id identity) error {
	af := newAdminFlags()
	err := af.set.Parse(args)
	if err != nil {
		return err
	}

	isAdmin, err := id.CheckAdmin()
	if err != nil {
		return fmt.Errorf("error while checking administrators membership: %s", err)
	}

	if *af.json {
		b, _ := json.Marshal(struct {
			Admin bool `json:"admin"`
		}{isAdmin})
		_, _ = out.Write(b)
		_, _ = out.Write([]byte("\n"))
	} else {
		fmt.Fprintln(out, isAdmin)
	}

	writeStats(*af.stats, out)
	return nil
}

func adminSummary() string {
	return "admin <flags>: reports whether the current user is a member of the local Administrators group"
}

func adminHelp(out io.Writer) {
	af := newAdminFlags()
	out.Write([]byte("Usage of " + os.Args[0] + " " + adminSummary() + "\n"))
	af.set.SetOutput(out)
	af.set.PrintDefaults()
}
