package handles

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"

	"refkit/ptr"
)

// OpenPebble opens a pebble store owned by the returned handle.
func OpenPebble(dir string, opts *pebble.Options) (*ptr.Shared[pebble.DB], error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble at %q", dir)
	}
	return ptr.New(db), nil
}
