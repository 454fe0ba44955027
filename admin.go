package userinfo

import (
	"github.com/installkit/userinfo/util"
)

// CheckAdmin reports whether the identity of the calling thread, or of the process when the thread is not
// impersonating, would be granted access to an object that only the built-in Administrators group may access.
// The answer is always false when err is non-nil.
func (c *Checker) CheckAdmin() (bool, error) {
	admin, err := c.admin()
	if err != nil {
		admin = false
	}

	c.metrics.admin.observe(admin, err)
	if err == nil {
		c.l.WithField("admin", admin).Debug("Checked administrators membership")
	}

	return admin, err
}

// IsUserAnAdmin is CheckAdmin with failures logged and reported as false.
func (c *Checker) IsUserAnAdmin() bool {
	admin, err := c.CheckAdmin()
	if err != nil {
		util.LogWithContextIfNeeded("Failed to check administrators membership", err, c.l)
		return false
	}

	return admin
}
