package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"
)

// Built-in template names.
const (
	FunctionalTemplate = "functional.jsx.tmpl"
	ClassTemplate      = "class.jsx.tmpl"
	StylesTemplate     = "styles.module.scss.tmpl"
	PartialsTemplate   = "partials.tmpl"
)

const templateGlob = "*.tmpl"

//go:embed templates/*.tmpl
var builtinFS embed.FS

// Renderer renders the component templates. It starts from the built-in set
// and can have individual templates replaced from an override directory.
type Renderer struct {
	funcMap template.FuncMap
	set     *template.Template
}

// NewRenderer creates a Renderer holding the built-in templates.
func NewRenderer() *Renderer {
	r := &Renderer{}
	r.funcMap = FuncMap()
	r.funcMap["include"] = r.include

	builtins, err := fs.Sub(builtinFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}

	r.set = template.Must(r.newSet().ParseFS(builtins, templateGlob))

	return r
}

// LoadOverrides parses every *.tmpl file in dir. A file named like a
// built-in template replaces it; other files become includable templates.
// It returns the names of the templates loaded.
func (r *Renderer) LoadOverrides(dir string) ([]string, error) {
	fsys := os.DirFS(dir)

	names, err := fs.Glob(fsys, templateGlob)
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", dir, err)
	}

	if len(names) == 0 {
		return nil, nil
	}

	if _, err := r.set.ParseFS(fsys, templateGlob); err != nil {
		return nil, fmt.Errorf("parsing templates in %s: %w", dir, err)
	}

	return names, nil
}

// Render executes the named template with data.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.set.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing template %q: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderString renders an inline template string with the given data.
// Templates defined in the set are available through include.
func (r *Renderer) RenderString(text string, data any) (string, error) {
	tmpl, err := r.newSet().New("inline").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", "inline", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", "inline", err)
	}

	return buf.String(), nil
}

func (r *Renderer) newSet() *template.Template {
	return template.New("").
		Funcs(r.funcMap).
		Option("missingkey=error")
}

// include executes a named template into a string so the result can be
// piped, e.g. {{ include "container" . | indent 4 }}.
func (r *Renderer) include(name string, data any) (string, error) {
	var buf strings.Builder
	if err := r.set.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
