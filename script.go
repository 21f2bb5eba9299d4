package hxbundle

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// BundleScript returns a templ component that loads a bundle file eagerly.
//
//	hxbundle.BundleScript("/build/ionic.1a2b3c4d.js")
//
// Use it for high priority bundles that the first render needs.
func BundleScript(src string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, fmt.Sprintf(`<script src="%s" async></script>`, templ.EscapeString(src)))
		return err
	})
}

// BundlePrefetch returns a templ component that hints the browser to fetch a
// bundle file when idle. Low priority bundles are announced this way.
func BundlePrefetch(href string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, fmt.Sprintf(`<link rel="prefetch" href="%s" as="script">`, templ.EscapeString(href)))
		return err
	})
}

// BundleTag picks BundleScript or BundlePrefetch by priority.
func BundleTag(src string, p Priority) templ.Component {
	if p.IsLow() {
		return BundlePrefetch(src)
	}
	return BundleScript(src)
}
