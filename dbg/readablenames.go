package dbg

import (
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This converts arbitrary pointers into random readable names, so that faces
// and other objects in debug output and drawings can be told apart at a
// glance. The memo is never cleared, but names are only generated on demand,
// so it costs nothing unless debug output is actually produced.

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
	title  = cases.Title(language.English)
)

func init() {
	// Names are handed out in order of demand, so make them nondeterministic as
	// a reminder that the same name does not refer to the same thing between
	// runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return "Ø"
		}
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := title.String(petname.Adjective()) + title.String(petname.Name())
	memo[obj] = r
	return r
}
