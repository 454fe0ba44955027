package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/installkit/userinfo"
	"github.com/installkit/userinfo/config"
	"github.com/rcrowley/go-metrics"
	"github.com/sirupsen/logrus"
)

// A version string that can be set with
//
//	-ldflags "-X main.Build=SOMEVERSION"
//
// at compile-time.
var Build string

func init() {
	if Build == "" {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}

		Build = strings.TrimPrefix(info.Main.Version, "v")
	}
}

// identity is the part of userinfo.Checker the modes use.
type identity interface {
	CheckAdmin() (bool, error)
	ValidatePassword(username, domain, password string) (bool, error)
	ListManagedServiceAccounts() ([]string, error)
}

type helpError struct {
	s string
}

func (he *helpError) Error() string {
	return he.s
}

func newHelpErrorf(s string, v ...any) error {
	return &helpError{s: fmt.Sprintf(s, v...)}
}

func main() {
	flag.Usage = func() {
		help("", os.Stderr)
		os.Exit(1)
	}

	configPath := flag.String("config", "", "Path to either a file or directory to load configuration from")
	printVersion := flag.Bool("version", false, "Print version")
	flagHelp := flag.Bool("help", false, "Print command line usage")
	flagH := flag.Bool("h", false, "Print command line usage")
	printUsage := false

	flag.Parse()

	if *flagH || *flagHelp {
		printUsage = true
	}

	args := flag.Args()

	if *printVersion {
		fmt.Printf("Version: %v\n", Build)
		os.Exit(0)
	}

	if len(args) < 1 {
		if printUsage {
			help("", os.Stderr)
			os.Exit(0)
		}

		help("No mode was provided", os.Stderr)
		os.Exit(1)
	} else if printUsage {
		handleError(args[0], &helpError{}, os.Stderr)
		os.Exit(0)
	}

	ch, err := newChecker(*configPath, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	switch args[0] {
	case "admin":
		err = admin(args[1:], os.Stdout, os.Stderr, ch)
	case "validate":
		err = validate(args[1:], os.Stdout, os.Stderr, ch, StdinPasswordReader{})
	case "accounts":
		err = accounts(args[1:], os.Stdout, os.Stderr, ch)
	default:
		err = fmt.Errorf("unknown mode: %s", args[0])
	}

	if err != nil {
		os.Exit(handleError(args[0], err, os.Stderr))
	}
}

// newChecker builds a Checker logging to errOut, configured from configPath when it is set.
func newChecker(configPath string, errOut io.Writer) (*userinfo.Checker, error) {
	l := logrus.New()
	l.Out = errOut

	c := config.NewC(l)
	if configPath != "" {
		err := c.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %s", err)
		}
	}

	ch, err := userinfo.NewChecker(l, c)
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		l.WithField("files", c.Files()).Debug("Loaded config")
	}

	return ch, nil
}

func handleError(mode string, e error, out io.Writer) int {
	code := 1

	// Handle -help, -h flags properly
	if e == flag.ErrHelp {
		code = 0
		e = &helpError{}
	} else if e != nil && e.Error() != "" {
		fmt.Fprintln(out, "Error:", e)
	}

	switch e.(type) {
	case *helpError:
		switch mode {
		case "admin":
			adminHelp(out)
		case "validate":
			validateHelp(out)
		case "accounts":
			accountsHelp(out)
		}
	}

	return code
}

func help(err string, out io.Writer) {
	if err != "" {
		fmt.Fprintln(out, "Error:", err)
		fmt.Fprintln(out, "")
	}

	fmt.Fprintf(out, "Usage of %s <global flags> <mode>:\n", os.Args[0])
	fmt.Fprintln(out, "  Global flags:")
	fmt.Fprintln(out, "    -config: Path to either a file or directory to load configuration from")
	fmt.Fprintln(out, "    -version: Prints the version")
	fmt.Fprintln(out, "    -h, -help: Prints this help message")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "  Modes:")
	fmt.Fprintln(out, "    "+adminSummary())
	fmt.Fprintln(out, "    "+validateSummary())
	fmt.Fprintln(out, "    "+accountsSummary())
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "  To see usage for a given mode, use %s <mode> -h\n", os.Args[0])
}

func mustFlagString(name string, val *string) error {
	if *val == "" {
		return newHelpErrorf("-%s is required", name)
	}
	return nil
}

// writeStats dumps every metric in the default registry when enabled.
func writeStats(enabled bool, out io.Writer) {
	if !enabled {
		return
	}
	metrics.WriteOnce(metrics.DefaultRegistry, out)
}
