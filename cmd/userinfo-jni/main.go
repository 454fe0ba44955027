// Command userinfo-jni is the native library behind the com.izforge.izpack.util.win.UserInfo Java class.
//
// Build it as a windows DLL with the JDK headers on the include path:
//
//	set CGO_CFLAGS=-I%JAVA_HOME%\include -I%JAVA_HOME%\include\win32
//	go build -buildmode=c-shared -o UserInfo.dll ./cmd/userinfo-jni
//
// Set USERINFO_CONFIG to a config file or directory to change logging or check settings. Logs are written to the
// standard error of the Java process.
package main

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/installkit/userinfo"
	"github.com/installkit/userinfo/config"
	"github.com/installkit/userinfo/util"
	"github.com/sirupsen/logrus"
)

// main is required by c-shared builds and never runs.
func main() {}

// identity is the part of userinfo.Checker the exports use.
type identity interface {
	IsUserAnAdmin() bool
	ValidCredentials(username, domain, password string) bool
	ListManagedServiceAccounts() ([]string, error)
}

// bridge adapts a Checker to the fail closed results the Java side expects.
type bridge struct {
	l  *logrus.Logger
	ch identity
}

var (
	sharedOnce sync.Once
	shared     *bridge
)

func sharedBridge() *bridge {
	sharedOnce.Do(func() {
		shared = loadBridge(os.Getenv("USERINFO_CONFIG"), os.Stderr)
	})
	return shared
}

// loadBridge never fails, a config that can not be used is logged and replaced by the defaults.
func loadBridge(configPath string, errOut io.Writer) *bridge {
	l := logrus.New()
	l.Out = errOut

	c := config.NewC(l)
	if configPath != "" {
		err := c.Load(configPath)
		if err != nil {
			l.WithError(err).WithField("config_path", configPath).Error("Failed to load config, using defaults")
			c = config.NewC(l)
		}
	}

	ch, err := userinfo.NewChecker(l, c)
	if err != nil {
		l.WithError(err).WithField("config_path", configPath).Error("Invalid config, using defaults")
		c = config.NewC(l)
		ch, _ = userinfo.NewChecker(l, c)
	} else if len(c.Files()) > 0 {
		l.WithField("files", c.Files()).Debug("Loaded config")
	}

	return &bridge{l: l, ch: ch}
}

func (b *bridge) isUserAnAdmin() bool {
	return b.ch.IsUserAnAdmin()
}

func (b *bridge) validatePassword(username, domain, password string) bool {
	return b.ch.ValidCredentials(username, domain, password)
}

// managedServiceAccounts returns false when the system can not enumerate accounts at all, which Java sees as a null
// array. A failed enumeration is an empty array.
func (b *bridge) managedServiceAccounts() ([]string, bool) {
	names, err := b.ch.ListManagedServiceAccounts()
	if errors.Is(err, userinfo.ErrUnsupported) {
		return nil, false
	}

	if err != nil {
		b.l.WithError(err).Error("Failed to list managed service accounts")
		return []string{}, true
	}

	return names, true
}

// decodeJChars converts the UTF-16 code units of a Java string. Unpaired surrogates survive the round trip to the
// UTF-16 the Windows calls receive.
func decodeJChars(u []uint16) string {
	return util.DecodeUTF16(u)
}

// encodeJChars converts s to UTF-16 for a Java string. The result carries a trailing zero so it is never empty and
// its first element can always be addressed, the zero is not part of the string.
func encodeJChars(s string) []uint16 {
	return append(util.EncodeUTF16(s), 0)
}
