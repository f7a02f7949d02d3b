package identifier

import (
	"github.com/promptly-io/promptly/pkg/encoding"
	"github.com/promptly-io/promptly/pkg/random"
)

const (
	// PrefixTimer is the prefix used for automatically generated timer names.
	PrefixTimer = "timer_"
	// PrefixSession is the prefix used for session identifiers.
	PrefixSession = "sess_"
)

// New generates a new collision-resistant identifier with the specified prefix.
func New(prefix string) (string, error) {
	// Create the random value.
	random, err := random.New(random.CollisionResistantLength)
	if err != nil {
		return "", err
	}

	// Encode the random value.
	return prefix + encoding.EncodeBase62(random), nil
}
