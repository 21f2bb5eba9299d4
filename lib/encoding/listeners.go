package encoding

import (
	"fmt"
	"strings"

	"github.com/pthm/hxbundle"
)

// Listeners encodes a component's listeners as an array of five slot
// tuples, in declaration order. The loader dispatches by tuple index, so the
// order must match the order the listeners were declared in.
func Listeners(label string, listeners hxbundle.Listeners) string {
	if listeners.Len() == 0 {
		return "[]"
	}

	t := make([]string, 0, listeners.Len())
	i := 0
	for method, opts := range listeners.All() {
		t = append(t, listenerTuple(label, method, i, opts))
		i++
	}
	return array(t)
}

func listenerTuple(label, method string, index int, opts hxbundle.ListenOpts) string {
	return tuple(
		fmt.Sprintf("    /********* %s listener[%d] %s *********/\n", label, index, method)+
			"    /* [0] methodName **/ "+quote(method),
		"    /* [1] eventName ***/ "+quote(opts.EventName),
		"    /* [2] capture *****/ "+Bool(opts.Capture),
		"    /* [3] passive *****/ "+Bool(opts.Passive),
		"    /* [4] enabled *****/ "+Bool(opts.Enabled),
	)
}

// Watchers encodes a component's prop watchers as an array of two slot
// tuples, in declaration order.
func Watchers(label string, watchers hxbundle.Watchers) string {
	if watchers.Len() == 0 {
		return "[]"
	}

	t := make([]string, 0, watchers.Len())
	i := 0
	for prop, opts := range watchers.All() {
		t = append(t, watcherTuple(label, prop, i, opts))
		i++
	}
	return array(t)
}

func watcherTuple(label, prop string, index int, opts hxbundle.WatchOpts) string {
	return tuple(
		fmt.Sprintf("    /********* %s watch[%d] %s *********/\n", label, index, prop)+
			"    /* [0] methodName **/ "+quote(prop),
		"    /* [1] fn **********/ "+quote(opts.Fn),
	)
}

func tuple(slots ...string) string {
	return "  [\n" + strings.Join(slots, ",\n") + "\n  ]"
}

func array(items []string) string {
	return "[\n" + strings.Join(items, ",\n") + "\n]"
}
