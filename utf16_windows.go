package userinfo

import (
	"strings"
	"syscall"

	"github.com/installkit/userinfo/util"
)

// utf16OrNil converts s to a NUL terminated UTF-16 string, or nil when s is empty so the API sees NULL. Unpaired
// surrogates carried in s reach the API unchanged.
func utf16OrNil(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}
	if strings.IndexByte(s, 0) != -1 {
		return nil, syscall.EINVAL
	}
	return append(util.EncodeUTF16(s), 0), nil
}

func firstOrNil(u []uint16) *uint16 {
	if len(u) == 0 {
		return nil
	}
	return &u[0]
}
