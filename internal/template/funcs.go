// Package template renders component sources with Go text/template and the
// sprig function library.
package template

import (
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// FuncMap returns the function map available to built-in and override
// templates. Case conversion comes from sprig: camelcase yields a component
// identifier ("square-button" → "SquareButton"), kebabcase and snakecase
// yield file-name forms.
func FuncMap() template.FuncMap {
	return sprig.TxtFuncMap()
}
