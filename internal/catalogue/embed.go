package catalogue

import "embed"

// defaultFS carries the built-in session catalogue shipped with the
// binary, used when no catalogue directory is configured.
//
//go:embed defaults/*.yaml
var defaultFS embed.FS
