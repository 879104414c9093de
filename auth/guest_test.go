package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var guestIDPattern = regexp.MustCompile(`^guest_\d+_[0-9a-z]{9}$`)

func TestNewGuestIDFormat(t *testing.T) {
	id := NewGuestID()
	require.Regexp(t, guestIDPattern, id)
}

func TestNewGuestIDIsRandomized(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewGuestID()
		require.False(t, seen[id], "duplicate guest id %s", id)
		seen[id] = true
	}
}
