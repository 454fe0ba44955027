//go:build !windows

package userinfo

func checkAdmin() (bool, error) {
	return false, ErrUnsupportedPlatform
}

func logonUser(string, string, string, LogonType, LogonProvider) error {
	return ErrUnsupportedPlatform
}

func enumerateServiceAccounts(string) ([]string, error) {
	return nil, ErrUnsupportedPlatform
}
