package userinfo

import (
	"fmt"
	"sync"
)

// capability resolves an optional OS entry point on first use and remembers the outcome for the life of the process.
type capability struct {
	name string
	find func() error

	once sync.Once
	err  error
}

func newCapability(name string, find func() error) *capability {
	return &capability{name: name, find: find}
}

// Available returns nil if the entry point resolved, otherwise an error wrapping ErrUnsupported.
func (c *capability) Available() error {
	c.once.Do(func() {
		if err := c.find(); err != nil {
			c.err = fmt.Errorf("%w: %s: %v", ErrUnsupported, c.name, err)
		}
	})
	return c.err
}
