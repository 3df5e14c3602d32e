package urn

import "fmt"

// Composer pairs a validated app name with URN construction, so call
// sites minting many identifiers validate the app once.
type Composer struct {
	app string
}

// ForApp validates app and returns a Composer bound to it.
func ForApp(app string) (*Composer, error) {
	if !appPattern.MatchString(app) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidApp, app)
	}
	return &Composer{app: app}, nil
}

// App returns the bound app name.
func (c *Composer) App() string {
	return c.app
}

// New composes a URN for the bound app. Options behave as in [New].
func (c *Composer) New(entity string, opts ...Option) (URN, error) {
	return New(c.app, entity, opts...)
}
