package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentifier(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare handle", "foo", "foo"},
		{"at prefix", "@foo", "foo"},
		{"surrounding whitespace", " foo ", "foo"},
		{"profile url with tracking", "https://www.instagram.com/foo?utm_source=x", "foo"},
		{"uppercase url with trailing slash", "HTTPS://WWW.INSTAGRAM.COM/Foo/", "foo"},
		{"schemeless url with subpage", "instagram.com/foo/reels?x=1", "foo"},
		{"mixed case handle", "FoO", "foo"},
		{"empty", "", ""},
		{"only at", "@", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeIdentifier(tc.in))
		})
	}
}
