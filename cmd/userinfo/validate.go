package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

type validateFlags struct {
	set    *flag.FlagSet
	user   *string
	domain *string
	json   *bool
	stats  *bool
}

func newValidateFlags() *validateFlags {
	vf := validateFlags{set: flag.NewFlagSet("validate", flag.ContinueOnError)}
	vf.set.Usage = func() {}
	vf.user = vf.set.String("user", "", "Required: name of the account to log on, either a plain name or a UPN")
	vf.domain = vf.set.String("domain", "", "Optional: domain of the account, a single dot for the local account database")
	vf.json = vf.set.Bool("json", false, "Optional: outputs the result in json format")
	vf.stats = vf.set.Bool("stats", false, "Optional: print check metrics after the result")

	return &vf
}

func validate(args []string, out io.Writer, errOut io.Writer, id identity, pr PasswordReader) error {
	vf := newValidateFlags()
	err := vf.set.Parse(args)
	if err != nil {
		return err
	}

	if err := mustFlagString("user", vf.user); err != nil {
		return err
	}

	password := os.Getenv("USERINFO_PASSWORD")
	if password == "" {
		_, _ = errOut.Write([]byte("Enter password: "))
		b, err := pr.ReadPassword()
		if errors.Is(err, ErrNoTerminal) {
			return fmt.Errorf("out of password reading options, set USERINFO_PASSWORD or run from a terminal")
		} else if err != nil {
			return fmt.Errorf("error reading password: %s", err)
		}
		password = string(b)
	}

	accepted, err := id.ValidatePassword(*vf.user, *vf.domain, password)
	if err != nil {
		return fmt.Errorf("error while validating credentials: %s", err)
	}

	if *vf.json {
		b, _ := json.Marshal(struct {
			User     string `json:"user"`
			Domain   string `json:"domain,omitempty"`
			Accepted bool   `json:"accepted"`
		}{*vf.user, *vf.domain, accepted})
		_, _ = out.Write(b)
		_, _ = out.Write([]byte("\n"))
	} else if accepted {
		fmt.Fprintln(out, "accepted")
	} else {
		fmt.Fprintln(out, "rejected")
	}

	writeStats(*vf.stats, out)
	return nil
}

func validateSummary() string {
	return "validate <flags>: checks whether a username and password can log on, the password is read from USERINFO_PASSWORD or the terminal"
}

func validateHelp(out io.Writer) {
	vf := newValidateFlags()
	out.Write([]byte("Usage of " + os.Args[0] + " " + validateSummary() + "\n"))
	vf.set.SetOutput(out)
	vf.set.PrintDefaults()
}
