package encoding

import "testing"

func TestStyles(t *testing.T) {
	tests := []struct {
		name   string
		styles string
		expect string
	}{
		{"empty", "", "0 /* no styles */"},
		{"single line", "color:red;", `'color:red;\n'`},
		{"two lines", "a\nb", "'a\\n' + \n'b\\n'"},
		{"crlf", "a\r\nb", "'a\\n' + \n'b\\n'"},
		{"single quotes", `content:'x';`, `'content:"x";\n'`},
		{"trailing newline", "a\n", "'a\\n' + \n'\\n'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Styles(tt.styles)
			if result != tt.expect {
				t.Errorf("Styles(%q) = %q, want %q", tt.styles, result, tt.expect)
			}
		})
	}
}
