package encoding

import (
	"testing"

	"github.com/pthm/hxbundle"
)

func TestBool(t *testing.T) {
	if got := Bool(true); got != "1 /* true **/" {
		t.Errorf("Bool(true) = %q", got)
	}
	if got := Bool(false); got != "0 /* false */" {
		t.Errorf("Bool(false) = %q", got)
	}
}

func TestModeName(t *testing.T) {
	tests := []struct {
		name   string
		expect string
	}{
		{"default", "0"},
		{"ios", "1"},
		{"md", "2"},
		{"wp", "3"},
		{"unknown-theme", "'unknown-theme'"},
		{"IOS", "'IOS'"},
		{"", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ModeName(tt.name)
			if result != tt.expect {
				t.Errorf("ModeName(%q) = %q, want %q", tt.name, result, tt.expect)
			}
		})
	}
}

func TestModeNameStrict(t *testing.T) {
	tests := []struct {
		name    string
		expect  string
		wantErr bool
	}{
		{"ios", "1", false},
		{"", "''", false},
		{"unknown-theme", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ModeNameStrict(tt.name)
			if tt.wantErr {
				if !hxbundle.IsUnknownMode(err) {
					t.Errorf("ModeNameStrict(%q) error = %v, want ErrUnknownMode", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ModeNameStrict(%q) unexpected error: %v", tt.name, err)
			}
			if result != tt.expect {
				t.Errorf("ModeNameStrict(%q) = %q, want %q", tt.name, result, tt.expect)
			}
		})
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		priority hxbundle.Priority
		expect   string
	}{
		{hxbundle.PriorityLow, "0"},
		{hxbundle.PriorityHigh, "1"},
		{"", "1"},
		{"urgent", "1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if result := Priority(tt.priority); result != tt.expect {
				t.Errorf("Priority(%q) = %q, want %q", tt.priority, result, tt.expect)
			}
		})
	}
}
