// Package getter wraps hashicorp/go-getter for fetching template sources.
package getter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter/v2"
)

// Getter wraps go-getter to fetch sources from local paths, git, HTTP and other protocols.
type Getter struct {
	client *getter.Client
	logger *slog.Logger
}

// New creates a Getter with default configuration.
func New(logger *slog.Logger) *Getter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Getter{
		client: &getter.Client{
			DisableSymlinks: true,
		},
		logger: logger,
	}
}

// FetchOpts configures a fetch operation.
type FetchOpts struct {
	// Ref is appended as ?ref= for git sources.
	Ref string

	// Pwd is the working directory for relative path detection.
	Pwd string
}

// Fetch downloads a source directory to the destination path.
// go-getter links local directories in ModeDir; Fetch replaces such a link
// with a copy so dest never aliases the source.
func (g *Getter) Fetch(ctx context.Context, src, dest string, opts FetchOpts) error {
	fullSrc := appendQueryParams(src, opts)
	g.logger.Debug("fetching source", "src", fullSrc, "dest", dest)

	req := &getter.Request{
		Src:             fullSrc,
		Dst:             dest,
		Pwd:             opts.Pwd,
		GetMode:         getter.ModeDir,
		Copy:            true,
		DisableSymlinks: true,
	}

	if _, err := g.client.Get(ctx, req); err != nil {
		return fmt.Errorf("fetching %s: %w", src, err)
	}

	return unlink(dest)
}

// unlink replaces dest with a copy of its target when dest is a symlink.
func unlink(dest string) error {
	info, err := os.Lstat(dest)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", dest, err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return nil
	}

	target, err := filepath.EvalSymlinks(dest)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dest, err)
	}

	if err := os.Remove(dest); err != nil {
		return fmt.Errorf("removing link %s: %w", dest, err)
	}

	if err := os.CopyFS(dest, os.DirFS(target)); err != nil {
		return fmt.Errorf("copying %s to %s: %w", target, dest, err)
	}

	return nil
}

// appendQueryParams adds the ref query parameter to a source URL.
func appendQueryParams(src string, opts FetchOpts) string {
	if opts.Ref == "" {
		return src
	}

	sep := "?"
	if strings.Contains(src, "?") {
		sep = "&"
	}

	return src + sep + "ref=" + opts.Ref
}
