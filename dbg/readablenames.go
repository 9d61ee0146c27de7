package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable stand-ins for pointer identities. A dump of a linked working set
// is unreadable as raw addresses; two random words per node are easy to track
// across lines of output. Names are handed out on demand and never released,
// which only matters if you call this from something other than debugging.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are assigned in whatever order objects first get printed, so keep
	// them nondeterministic as a reminder that a name means nothing across
	// runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = name
	return name
}
