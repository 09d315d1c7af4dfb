package theme

import (
	_ "embed"

	"github.com/pelletier/go-toml/v2"
)

//go:embed themes/default.toml
var defaultTheme []byte

// Default returns the embedded palette. It panics only if the bundled file
// is broken, which a test guards against.
func Default() *Theme {
	t := &Theme{}
	if err := toml.Unmarshal(defaultTheme, t); err != nil {
		panic("embedded theme: " + err.Error())
	}
	return t
}
