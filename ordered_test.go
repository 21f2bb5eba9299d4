package hxbundle

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestOrderedSet(t *testing.T) {
	var o Ordered[int]
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3)

	if o.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", o.Len())
	}
	if keys := o.Keys(); !reflect.DeepEqual(keys, []string{"b", "a"}) {
		t.Errorf("Keys() = %v, want [b a]", keys)
	}
	if v, ok := o.Get("b"); !ok || v != 3 {
		t.Errorf("Get(b) = %v, %v, want 3, true", v, ok)
	}
	if _, ok := o.Get("missing"); ok {
		t.Error("Get(missing) reported ok")
	}
}

func TestOrderedZeroValue(t *testing.T) {
	var o Ordered[string]
	if o.Len() != 0 {
		t.Errorf("Len() = %d, want 0", o.Len())
	}
	for k := range o.All() {
		t.Errorf("All() yielded %q on empty map", k)
	}
}

func TestOrderedAllStopsEarly(t *testing.T) {
	var o Ordered[int]
	o.Set("x", 1)
	o.Set("y", 2)
	o.Set("z", 3)

	var seen []string
	for k := range o.All() {
		seen = append(seen, k)
		if k == "y" {
			break
		}
	}
	if !reflect.DeepEqual(seen, []string{"x", "y"}) {
		t.Errorf("All() with break yielded %v", seen)
	}
}

func TestComponentJSONKeepsListenerOrder(t *testing.T) {
	data := `{
		"tag": "ion-toggle",
		"componentClass": "Toggle",
		"shadow": true,
		"listeners": {
			"onKeyUp": {"eventName": "keyup", "enabled": true},
			"onClick": {"eventName": "click", "passive": true, "enabled": true},
			"onBlur": {"eventName": "blur"}
		},
		"watchers": {
			"checked": {"fn": "checkedChanged"},
			"disabled": {"fn": "disabledChanged"}
		}
	}`

	var c Component
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if keys := c.Listeners.Keys(); !reflect.DeepEqual(keys, []string{"onKeyUp", "onClick", "onBlur"}) {
		t.Errorf("listener order = %v", keys)
	}
	if keys := c.Watchers.Keys(); !reflect.DeepEqual(keys, []string{"checked", "disabled"}) {
		t.Errorf("watcher order = %v", keys)
	}
	click, _ := c.Listeners.Get("onClick")
	if click != (ListenOpts{EventName: "click", Passive: true, Enabled: true}) {
		t.Errorf("onClick = %+v", click)
	}
	if c.Props.Len() != 0 {
		t.Errorf("Props.Len() = %d, want 0", c.Props.Len())
	}
}

func TestOrderedJSONNull(t *testing.T) {
	var c Component
	if err := json.Unmarshal([]byte(`{"listeners": null}`), &c); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if c.Listeners.Len() != 0 {
		t.Errorf("Listeners.Len() = %d, want 0", c.Listeners.Len())
	}
}

func TestOrderedJSONRejectsArray(t *testing.T) {
	var o Ordered[int]
	if err := json.Unmarshal([]byte(`[1, 2]`), &o); err == nil {
		t.Error("Unmarshal of array should fail")
	}
}

func TestOrderedMarshalJSON(t *testing.T) {
	var o Ordered[WatchOpts]
	o.Set("z", WatchOpts{Fn: "zChanged"})
	o.Set("a", WatchOpts{Fn: "aChanged"})

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expect := `{"z":{"fn":"zChanged"},"a":{"fn":"aChanged"}}`
	if string(data) != expect {
		t.Errorf("Marshal = %s, want %s", data, expect)
	}
}

func TestOrderedMarshalJSONLeavesHTML(t *testing.T) {
	var o Ordered[string]
	o.Set("<b>", "a & b")

	data, err := o.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	expect := `{"<b>":"a & b"}`
	if string(data) != expect {
		t.Errorf("MarshalJSON() = %s, want %s", data, expect)
	}
}

func TestOrderedMarshalJSONEmpty(t *testing.T) {
	var o Ordered[int]
	data, err := o.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("MarshalJSON() = %s, want {}", data)
	}
}

func TestOrderedMsgpackKeepsOrder(t *testing.T) {
	var c Component
	c.Tag = "ion-range"
	for _, m := range []string{"onMove", "onDown", "onUp"} {
		c.Listeners.Set(m, ListenOpts{EventName: m})
	}

	packed, err := msgpack.Marshal(c)
	if err != nil {
		t.Fatalf("msgpack.Marshal failed: %v", err)
	}

	var decoded Component
	if err := msgpack.Unmarshal(packed, &decoded); err != nil {
		t.Fatalf("msgpack.Unmarshal failed: %v", err)
	}

	if keys := decoded.Listeners.Keys(); !reflect.DeepEqual(keys, []string{"onMove", "onDown", "onUp"}) {
		t.Errorf("listener order = %v", keys)
	}
	if decoded.Tag != "ion-range" {
		t.Errorf("Tag = %q", decoded.Tag)
	}
}
