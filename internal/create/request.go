package create

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	tmpl "github.com/donaldgifford/create-component/internal/template"
)

// ErrMissingName is returned when no component name was given.
var ErrMissingName = errors.New("please specify component name")

// Style selects the component template variant.
type Style int

const (
	// StyleClass generates a class extending React's Component.
	StyleClass Style = iota
	// StyleFunctional generates an arrow-function component.
	StyleFunctional
)

func (s Style) String() string {
	if s == StyleFunctional {
		return "functional"
	}

	return "class"
}

// StyleFor maps the --functional flag to a Style.
func StyleFor(functional bool) Style {
	if functional {
		return StyleFunctional
	}

	return StyleClass
}

// templateFor returns the template rendering the main source of a style.
func templateFor(s Style) string {
	if s == StyleFunctional {
		return tmpl.FunctionalTemplate
	}

	return tmpl.ClassTemplate
}

// Request describes one component to generate. It is built once from the
// command line and passed by value.
type Request struct {
	Name          string
	Style         Style
	IncludeStyles bool
}

// NewRequest builds a Request, trimming surrounding whitespace from name.
func NewRequest(name string, functional, includeStyles bool) Request {
	return Request{
		Name:          strings.TrimSpace(name),
		Style:         StyleFor(functional),
		IncludeStyles: includeStyles,
	}
}

// Validate returns ErrMissingName when the request has no name.
func (r Request) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	return nil
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// nameWarnings reports problems with a name that do not stop generation.
func nameWarnings(name string) []string {
	if !identifierPattern.MatchString(name) {
		return []string{fmt.Sprintf("component name %q is not a valid JavaScript identifier; the generated source will not compile", name)}
	}

	if first := []rune(name)[0]; !unicode.IsUpper(first) {
		return []string{fmt.Sprintf("component name %q should start with an uppercase letter; React treats lowercase tags as DOM elements", name)}
	}

	return nil
}
