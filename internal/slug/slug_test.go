package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Microsoft", "microsoft"},
		{"Apple", "apple"},
		{"Microsoft Inc.", "microsoft-inc"},
		{"I.B.M.", "ibm"},
		{"Yahoo!", "yahoo"},
		{"(Acme) Corp", "acme-corp"},
		{"Don't Panic", "dont-panic"},
		{"Big Co: West", "big-co-west"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeDeterministic(t *testing.T) {
	assert.Equal(t, Make("Some Company Ltd."), Make("Some Company Ltd."))
}
