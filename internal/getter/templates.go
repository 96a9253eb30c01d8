package getter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// CacheKey returns the cache directory name for a template source and ref.
func CacheKey(src, ref string) string {
	sum := sha256.Sum256([]byte(src + "@" + ref))

	return hex.EncodeToString(sum[:])[:12]
}

// FetchTemplates fetches a template source into cacheDir/templates/<key>
// and returns that directory. Any previous copy is replaced.
func (g *Getter) FetchTemplates(ctx context.Context, src, ref, cacheDir, pwd string) (string, error) {
	dest := filepath.Join(cacheDir, "templates", CacheKey(src, ref))

	if err := os.RemoveAll(dest); err != nil {
		return "", fmt.Errorf("clearing template cache %s: %w", dest, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return "", fmt.Errorf("creating template cache %s: %w", filepath.Dir(dest), err)
	}

	if err := g.Fetch(ctx, src, dest, FetchOpts{Ref: ref, Pwd: pwd}); err != nil {
		return "", err
	}

	return dest, nil
}
