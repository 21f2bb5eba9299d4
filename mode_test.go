package hxbundle

import "testing"

func TestLookupMode(t *testing.T) {
	tests := []struct {
		name   string
		code   ModeCode
		expect bool
	}{
		{"default", ModeDefault, true},
		{"ios", ModeIOS, true},
		{"md", ModeMD, true},
		{"wp", ModeWP, true},
		{"IOS", 0, false},
		{"", 0, false},
		{"unknown-theme", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := LookupMode(tt.name)
			if ok != tt.expect || code != tt.code {
				t.Errorf("LookupMode(%q) = %v, %v, want %v, %v", tt.name, code, ok, tt.code, tt.expect)
			}
		})
	}
}

func TestPropTypeCode(t *testing.T) {
	tests := []struct {
		typ    PropType
		code   Code
		hasOne bool
		known  bool
	}{
		{PropBoolean, 0, true, true},
		{PropNumber, 1, true, true},
		{PropString, 0, false, true},
		{PropAny, 0, false, true},
		{"object", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			code, ok := tt.typ.Code()
			if ok != tt.hasOne || code != tt.code {
				t.Errorf("Code() = %v, %v, want %v, %v", code, ok, tt.code, tt.hasOne)
			}
			if known := tt.typ.Known(); known != tt.known {
				t.Errorf("Known() = %v, want %v", known, tt.known)
			}
		})
	}
}

func TestPriorityIsLow(t *testing.T) {
	if !PriorityLow.IsLow() {
		t.Error("PriorityLow.IsLow() = false")
	}
	for _, p := range []Priority{PriorityHigh, "", "urgent"} {
		if p.IsLow() {
			t.Errorf("Priority(%q).IsLow() = true", p)
		}
	}
}
