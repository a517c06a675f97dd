// Package dbg turns arbitrary values into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not
// a problem unless you're actually using it. This is helpful for
// telling arcs or ring entries apart when debugging a hull walk.
package dbg

import (
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var memo map[interface{}]string

var title = cases.Title(language.Und)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't
	// refer to the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for the given value. Equal
// values share a name within one run.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if r, ok := memo[obj]; ok {
		return r
	}
	r := title.String(petname.Adjective()) + title.String(petname.Name())
	memo[obj] = r
	return r
}

// ColorName is Name with a per-value terminal color, cycling a small
// palette so adjacent names stay distinguishable.
func ColorName(obj interface{}) string {
	name := Name(obj)
	colors := []func(interface{}) aurora.Value{aurora.Cyan, aurora.Green, aurora.Magenta, aurora.Yellow}
	var sum int
	for _, c := range name {
		sum += int(c)
	}
	return colors[sum%len(colors)](name).String()
}
