package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a problem
// unless you're actually using it. This is helpful for telling points apart in
// debug output, where "(1073741824, -1073741823)" is hard to track by eye.

var (
	memo   map[interface{}]string
	taken  map[string]struct{}
	memoMu sync.Mutex
)

func init() {
	memo = make(map[interface{}]string)
	taken = make(map[string]struct{})
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for obj, creating one on first use. obj must
// be comparable. Nil pointers and interfaces are all named "Ø".
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := newName()
	memo[obj] = r
	return r
}

func newName() string {
	for {
		r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
		if _, ok := taken[r]; !ok {
			taken[r] = struct{}{}
			return r
		}
		// Collisions get a numeric suffix rather than retrying forever once the
		// word lists run out.
		r = fmt.Sprintf("%s%d", r, len(taken))
		if _, ok := taken[r]; !ok {
			taken[r] = struct{}{}
			return r
		}
	}
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
