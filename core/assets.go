package core

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minjs "github.com/tdewolff/minify/v2/js"
)

const staticPrefix = "/static/"

var mediaTypes = map[string]string{
	".css": "text/css",
	".js":  "application/javascript",
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("application/javascript", minjs.Minify)
	return m
}

// MinifyAsset minifies a /static/ CSS or JS file from publicDir into
// cacheDir/static (plus a .gz copy) and returns the versioned URL of the
// result. Outside prod, or on any failure, the original path is returned.
func MinifyAsset(env, assetPath, publicDir, cacheDir string) string {
	if env != "prod" || !strings.HasPrefix(assetPath, staticPrefix) {
		return assetPath
	}

	rel := strings.TrimPrefix(assetPath, staticPrefix)
	ext := path.Ext(rel)
	name := strings.TrimSuffix(path.Base(rel), ext)

	mediaType, ok := mediaTypes[ext]
	if !ok || strings.HasSuffix(name, ".min") {
		return assetPath
	}

	srcPath := filepath.Join(publicDir, filepath.FromSlash(rel))
	info, err := os.Stat(srcPath)
	if err != nil {
		return assetPath
	}

	minRel := path.Join(path.Dir(rel), name+".min"+ext)
	minPath := filepath.Join(cacheDir, "static", filepath.FromSlash(minRel))

	if cached, ok := minified.Load(minPath); ok {
		entry := cached.(minifiedAsset)
		if entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() && fileExists(minPath) {
			return entry.url
		}
	}

	original, err := os.ReadFile(srcPath)
	if err != nil {
		return assetPath
	}

	var buf bytes.Buffer
	if err := newMinifier().Minify(mediaType, &buf, bytes.NewReader(original)); err != nil {
		return assetPath
	}
	data := buf.Bytes()

	if err := os.MkdirAll(filepath.Dir(minPath), os.ModePerm); err != nil {
		return assetPath
	}
	if err := writeFileAtomic(minPath, func(f *os.File) error {
		_, err := f.Write(data)
		return err
	}); err != nil {
		return assetPath
	}
	if err := writeGzip(minPath+".gz", data); err != nil {
		return assetPath
	}

	url := fmt.Sprintf("%s%s?v=%s", staticPrefix, minRel, contentHash(data))
	minified.Store(minPath, minifiedAsset{modTime: info.ModTime(), size: info.Size(), url: url})
	return url
}

// minified remembers which source each cached .min file was built from, keyed
// by the .min path, so unchanged assets are not rewritten on every render.
var minified sync.Map

type minifiedAsset struct {
	modTime time.Time
	size    int64
	url     string
}

func writeGzip(dst string, data []byte) error {
	return writeFileAtomic(dst, func(f *os.File) error {
		gz := gzip.NewWriter(f)
		if _, err := gz.Write(data); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	})
}

// writeFileAtomic writes through a temp file in the same dir and renames it
// over dst, so readers see either the old file or the complete new one.
func writeFileAtomic(dst string, write func(*os.File) error) error {
	f, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

func contentHash(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])[:6]
}

// TemplateFuncs is the function map every page template is parsed with:
// sprig's HTML-safe set plus the site helpers.
func TemplateFuncs(env, publicDir, cacheDir string) template.FuncMap {
	funcs := sprig.HtmlFuncMap()

	funcs["minify"] = func(p string) string {
		return MinifyAsset(env, p, publicDir, cacheDir)
	}
	funcs["props"] = func(values ...interface{}) map[string]interface{} {
		if len(values)%2 != 0 {
			panic("props must be called with even number of arguments")
		}
		m := make(map[string]interface{}, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				panic("props keys must be strings")
			}
			m[key] = values[i+1]
		}
		return m
	}
	funcs["safeHTML"] = func(s interface{}) template.HTML {
		switch val := s.(type) {
		case template.HTML:
			return val
		case string:
			return template.HTML(val)
		default:
			return ""
		}
	}
	funcs["versioned"] = func(p string) string {
		if !strings.HasPrefix(p, staticPrefix) {
			return p
		}

		rel := filepath.FromSlash(strings.TrimPrefix(p, staticPrefix))
		for _, file := range []string{
			filepath.Join(publicDir, rel),
			filepath.Join(cacheDir, "static", rel),
		} {
			if content, err := os.ReadFile(file); err == nil {
				return fmt.Sprintf("%s?v=%s", p, contentHash(content))
			}
		}
		return p
	}
	funcs["liveReload"] = func() bool {
		return env == "dev"
	}
	funcs["reloadPath"] = func() string {
		return ReloadPath
	}

	return funcs
}
