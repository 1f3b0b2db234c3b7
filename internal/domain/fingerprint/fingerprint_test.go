package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf_Deterministic(t *testing.T) {
	assert.Equal(t, Of("hello"), Of("hello"))
	assert.Equal(t, Of(""), Of(""))
}

func TestOf_Distinct(t *testing.T) {
	inputs := []string{"hello", "Hello", "hello ", "world", "", "héllo"}
	seen := make(map[Digest]string, len(inputs))
	for _, in := range inputs {
		d := Of(in)
		prev, dup := seen[d]
		assert.Falsef(t, dup, "%q collides with %q", in, prev)
		seen[d] = in
	}
}

func TestOf_KnownVector(t *testing.T) {
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Of("hello").String(),
	)
}

func TestOfBytes_MatchesOf(t *testing.T) {
	assert.Equal(t, Of("hello"), OfBytes([]byte("hello")))
}

func TestDigest_IsZero(t *testing.T) {
	var d Digest
	assert.True(t, d.IsZero())
	assert.False(t, Of("").IsZero())
}
