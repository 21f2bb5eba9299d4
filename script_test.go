package hxbundle

import (
	"bytes"
	"context"
	"testing"
)

func TestBundleTag(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		priority Priority
		expect   string
	}{
		{"high", "/build/ionic.1a2b3c4d.js", PriorityHigh, `<script src="/build/ionic.1a2b3c4d.js" async></script>`},
		{"default is high", "ionic.1a2b3c4d.js", "", `<script src="ionic.1a2b3c4d.js" async></script>`},
		{"low", "ionic.1a2b3c4d.js", PriorityLow, `<link rel="prefetch" href="ionic.1a2b3c4d.js" as="script">`},
		{"escaped", `a"b.js`, PriorityHigh, `<script src="a&#34;b.js" async></script>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := BundleTag(tt.src, tt.priority).Render(context.Background(), &buf); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if buf.String() != tt.expect {
				t.Errorf("BundleTag() = %s, want %s", buf.String(), tt.expect)
			}
		})
	}
}
