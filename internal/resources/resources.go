package resources

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/forPelevin/tsvreport/internal/domain/textnorm"
)

//go:embed bundles
var bundles embed.FS

const bundleRoot = "bundles"

// Dir is the location of the linguistic bundles under a cache directory.
func Dir(cacheDir string) string {
	return filepath.Join(cacheDir, "nlp")
}

// Ensure materializes the bundled linguistic resources under cacheDir. Files
// that already exist are left alone, so repeated calls are quiet no-ops. It
// returns the bundle directory and the number of files written.
func Ensure(cacheDir string) (string, int, error) {
	root := Dir(cacheDir)
	written := 0
	err := fs.WalkDir(bundles, bundleRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, bundleRoot), "/")
		dst := filepath.Join(root, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if _, err := os.Stat(dst); err == nil {
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		b, err := bundles.ReadFile(p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return "", 0, fmt.Errorf("ensure nlp resources: %w", err)
	}
	return root, written, nil
}

// HasStopWords reports whether a stop-word list for language is bundled.
func HasStopWords(language string) bool {
	_, err := fs.Stat(bundles, path.Join(bundleRoot, "stopwords", language))
	return err == nil
}

// LoadStopWords reads the stop-word list for language from the bundle
// directory returned by Ensure.
func LoadStopWords(dir, language string) (textnorm.StopWords, error) {
	f, err := os.Open(filepath.Join(dir, "stopwords", language))
	if err != nil {
		return textnorm.StopWords{}, fmt.Errorf("stopwords %q: %w", language, err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return textnorm.StopWords{}, fmt.Errorf("stopwords %q: %w", language, err)
	}
	return textnorm.NewStopWords(words), nil
}
