package hxbundle

// Prop describes one component attribute.
type Prop struct {
	Type PropType `json:"type" msgpack:"type"`
}

// ListenOpts configures one event binding. It is keyed by the name of the
// method handling the event.
type ListenOpts struct {
	EventName string `json:"eventName" msgpack:"eventName"`
	Capture   bool   `json:"capture" msgpack:"capture"`
	Passive   bool   `json:"passive" msgpack:"passive"`
	Enabled   bool   `json:"enabled" msgpack:"enabled"`
}

// WatchOpts names the method invoked when a watched prop changes. It is
// keyed by the watched prop name.
type WatchOpts struct {
	Fn string `json:"fn" msgpack:"fn"`
}

// Listeners maps handler method names to their bindings, in declaration order.
type Listeners = Ordered[ListenOpts]

// Watchers maps watched prop names to their handlers, in declaration order.
type Watchers = Ordered[WatchOpts]

// Props maps prop names to their descriptions, in declaration order.
type Props = Ordered[Prop]

// Component is the compiler's description of one UI component.
//
// Tag is normalized (trimmed, lower-cased) when encoded, so callers may
// pass it as written in source.
type Component struct {
	Tag            string    `json:"tag" msgpack:"tag"`
	ComponentClass string    `json:"componentClass" msgpack:"componentClass"`
	Shadow         bool      `json:"shadow" msgpack:"shadow"`
	Props          Props     `json:"props" msgpack:"props"`
	Listeners      Listeners `json:"listeners" msgpack:"listeners"`
	Watchers       Watchers  `json:"watchers" msgpack:"watchers"`
}

// ComponentMode is a named visual variant of a component, such as a
// platform theme. An empty Name is the unnamed mode; empty Styles means the
// mode has no styles.
type ComponentMode struct {
	Name   string `json:"name" msgpack:"name"`
	Styles string `json:"styles" msgpack:"styles"`
}

// BundleComponent is one member of a bundle together with its selected mode.
type BundleComponent struct {
	Component Component      `json:"component" msgpack:"component"`
	Mode      *ComponentMode `json:"mode,omitempty" msgpack:"mode,omitempty"`
}

// Bundle is a group of components the runtime loads together.
type Bundle struct {
	Components []BundleComponent `json:"components" msgpack:"components"`
}

// ModeOrDefault returns the member's mode, or the unnamed mode with no
// styles when none was selected.
func (bc BundleComponent) ModeOrDefault() ComponentMode {
	if bc.Mode == nil {
		return ComponentMode{}
	}
	return *bc.Mode
}

// Registry is the catalog of known components and their bundle assignments.
// It is built elsewhere and only serialized here.
type Registry map[string]any
