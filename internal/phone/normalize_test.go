package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_E164(t *testing.T) {
	n := NewNormalizer("")

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "local guatemalan mobile", input: "5555 1234", want: "+50255551234", ok: true},
		{name: "already international", input: "+502 2222 3333", want: "+50222223333", ok: true},
		{name: "blank", input: "   ", want: "", ok: false},
		{name: "garbage", input: "no sirve", want: "no sirve", ok: false},
		{name: "too short", input: "123", want: "123", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.E164(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizer_TelURI(t *testing.T) {
	n := NewNormalizer("gt")

	uri, ok := n.TelURI("5555-1234")
	assert.True(t, ok)
	assert.Equal(t, "tel:+50255551234", uri)

	_, ok = n.TelURI("x")
	assert.False(t, ok)
}

func TestNewNormalizer_OtherRegion(t *testing.T) {
	n := NewNormalizer("US")

	got, ok := n.E164("(415) 555-2671")
	assert.True(t, ok)
	assert.Equal(t, "+14155552671", got)
}
