// Released under an MIT license. See LICENSE.

// Package boot provides the Scheme prelude evaluated by every interpreter.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.scm
var script string //nolint:gochecknoglobals

// Script returns the prelude's source text.
func Script() string {
	return script
}
