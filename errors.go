package hxbundle

import "errors"

// Sentinel errors for bundle operations.
var (
	ErrUnknownMode       = errors.New("hxbundle: unknown mode name")
	ErrUnknownPropType   = errors.New("hxbundle: unknown prop type")
	ErrNoBundles         = errors.New("hxbundle: no bundles in descriptors")
	ErrManifestNotFound  = errors.New("hxbundle: hxbundle.toml not found")
	ErrUnsupportedFormat = errors.New("hxbundle: unsupported descriptor format")
)

// IsUnknownMode checks if err is an unknown-mode error.
func IsUnknownMode(err error) bool {
	return errors.Is(err, ErrUnknownMode)
}

// IsNotFound checks if err reports a missing manifest.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrManifestNotFound)
}
