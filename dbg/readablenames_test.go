package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type thing struct{ n int }

	obj := &thing{1}
	assert.Equal(t, Name(obj), Name(obj), "a name sticks to its object")

	assert.Equal(t, "Ø", Name(nil))
	var nilThing *thing
	assert.Equal(t, "Ø", Name(nilThing))
}
