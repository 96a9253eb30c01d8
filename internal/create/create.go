// Package create orchestrates component generation: templates are resolved,
// the component directory is written and post-create hooks are run.
package create

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/donaldgifford/create-component/internal/compat"
	"github.com/donaldgifford/create-component/internal/config"
	"github.com/donaldgifford/create-component/internal/getter"
	"github.com/donaldgifford/create-component/internal/hooks"
	tmpl "github.com/donaldgifford/create-component/internal/template"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644

	// ManifestFile is the per-component manifest pointing at the entry source.
	ManifestFile = "package.json"
	// SourceExt is the extension of the generated component source.
	SourceExt = ".jsx"
	// StylesSuffix is appended to the component name for its stylesheet.
	StylesSuffix = ".module.scss"
)

// Opts holds the options for one create run.
type Opts struct {
	// Request is the component to generate.
	Request Request

	// Config is the resolved frontend-cli block.
	Config *config.Config

	// Host describes the host project; used for compatibility warnings.
	Host config.HostInfo

	// WorkDir anchors a relative components root and template source.
	// Defaults to the process working directory.
	WorkDir string

	// CacheDir receives fetched template sources.
	// Defaults to config.DefaultCacheDir().
	CacheDir string

	// NoHooks skips post-create hook execution.
	NoHooks bool

	// Renderer overrides the template renderer. If nil, the built-in
	// templates are used, with Config.Templates layered on top.
	Renderer *tmpl.Renderer

	// Stdout and Stderr receive hook output. Default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Logger for debug output.
	Logger *slog.Logger
}

// Result holds the output of a successful create operation.
type Result struct {
	// Name is the component name.
	Name string

	// Dir is the absolute component directory.
	Dir string

	// Files lists the files written, relative to Dir, in write order.
	Files []string

	// Overrides names the templates loaded from Config.Templates.
	Overrides []string

	// Warnings are non-fatal problems with the request or host project.
	Warnings []string

	// HookErrors holds one entry per failed post-create hook.
	HookErrors []error
}

// templateData is the value templates and hook commands are rendered with.
type templateData struct {
	Name       string
	Styles     bool
	StylesFile string
	Dir        string
}

// componentManifest is the content of the per-component package.json.
type componentManifest struct {
	Main string `json:"main"`
}

// Run executes the create workflow. The name is validated before anything
// touches the filesystem. Files written before a failure are left in place.
func Run(ctx context.Context, opts *Opts) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	req := opts.Request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if opts.Config == nil {
		return nil, config.ErrConfigMissing
	}

	workDir, err := resolveWorkDir(opts.WorkDir)
	if err != nil {
		return nil, err
	}

	renderer, overrides, err := resolveRenderer(ctx, opts, workDir, logger)
	if err != nil {
		return nil, err
	}

	dir := componentDir(workDir, opts.Config.ComponentsRoot, req.Name)
	data := templateData{
		Name:   req.Name,
		Styles: req.IncludeStyles,
		Dir:    dir,
	}

	if req.IncludeStyles {
		data.StylesFile = req.Name + StylesSuffix
	}

	result := &Result{
		Name:      req.Name,
		Dir:       dir,
		Overrides: overrides,
		Warnings:  collectWarnings(req, opts.Host, logger),
	}

	logger.Debug("creating component", "name", req.Name, "style", req.Style, "styles", req.IncludeStyles, "dir", dir)

	// Create-or-reuse: an existing directory is not an error.
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating component directory %s: %w", dir, err)
	}

	if err := writeFiles(renderer, req, data, result, logger); err != nil {
		return nil, err
	}

	if !opts.NoHooks {
		result.HookErrors = runHooks(ctx, opts, renderer, data, logger)
	}

	logger.Debug("component created", "dir", dir, "files", len(result.Files))

	return result, nil
}

// writeFiles writes the component manifest, optional stylesheet and the
// main source, recording each in result.Files.
func writeFiles(renderer *tmpl.Renderer, req Request, data templateData, result *Result, logger *slog.Logger) error {
	sourceFile := req.Name + SourceExt

	manifest, err := marshalManifest(componentManifest{Main: "./" + sourceFile})
	if err != nil {
		return err
	}

	if err := writeFile(result, ManifestFile, manifest, logger); err != nil {
		return err
	}

	if req.IncludeStyles {
		styles, err := renderSource(renderer, tmpl.StylesTemplate, data)
		if err != nil {
			return err
		}

		if err := writeFile(result, data.StylesFile, styles, logger); err != nil {
			return err
		}
	}

	source, err := renderSource(renderer, templateFor(req.Style), data)
	if err != nil {
		return err
	}

	return writeFile(result, sourceFile, source, logger)
}

func writeFile(result *Result, name string, content []byte, logger *slog.Logger) error {
	path := filepath.Join(result.Dir, name)

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logger.Debug("wrote file", "path", path, "bytes", len(content))
	result.Files = append(result.Files, name)

	return nil
}

// renderSource renders a template and strips surrounding blank lines.
func renderSource(renderer *tmpl.Renderer, name string, data templateData) ([]byte, error) {
	out, err := renderer.Render(name, data)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}

	return []byte(strings.TrimSpace(string(out))), nil
}

// marshalManifest encodes m with two-space indentation and no trailing newline.
func marshalManifest(m componentManifest) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", ManifestFile, err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func resolveWorkDir(dir string) (string, error) {
	if dir != "" {
		return filepath.Abs(dir)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determining working directory: %w", err)
	}

	return wd, nil
}

// componentDir joins the components root and name, anchoring a relative
// root at workDir.
func componentDir(workDir, root, name string) string {
	if !filepath.IsAbs(root) {
		root = filepath.Join(workDir, root)
	}

	return filepath.Join(root, name)
}

// resolveRenderer returns the renderer to use, fetching and layering the
// configured template source when one is set. The names of the templates
// loaded from that source are returned alongside.
func resolveRenderer(ctx context.Context, opts *Opts, workDir string, logger *slog.Logger) (*tmpl.Renderer, []string, error) {
	if opts.Renderer != nil {
		return opts.Renderer, nil, nil
	}

	renderer := tmpl.NewRenderer()

	if opts.Config.Templates == "" {
		return renderer, nil, nil
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		cacheDir = config.DefaultCacheDir()
	}

	dir, err := getter.New(logger).FetchTemplates(ctx, opts.Config.Templates, opts.Config.TemplatesRef, cacheDir, workDir)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching templates: %w", err)
	}

	names, err := renderer.LoadOverrides(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading templates: %w", err)
	}

	logger.Debug("loaded template overrides", "src", opts.Config.Templates, "templates", names)

	return renderer, names, nil
}

func collectWarnings(req Request, host config.HostInfo, logger *slog.Logger) []string {
	warnings := nameWarnings(req.Name)

	compatWarnings, err := compat.Check(host.ReactRange, req.Style == StyleFunctional)
	if err != nil {
		logger.Debug("skipping react compatibility check", "err", err)
	}

	return append(warnings, compatWarnings...)
}

func runHooks(ctx context.Context, opts *Opts, renderer *tmpl.Renderer, data templateData, logger *slog.Logger) []error {
	if len(opts.Config.Hooks) == 0 {
		return nil
	}

	var (
		cmds []string
		errs []error
	)

	for _, hook := range opts.Config.Hooks {
		cmd, err := renderer.RenderString(hook, data)
		if err != nil {
			errs = append(errs, fmt.Errorf("hook %q: %w", hook, err))

			continue
		}

		cmds = append(cmds, cmd)
	}

	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	return append(errs, hooks.RunPostCreate(ctx, &hooks.Opts{
		Hooks:     cmds,
		Component: data.Name,
		WorkDir:   data.Dir,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
	})...)
}
