package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Assets serves built files with Cache-Control, Vary, and ETag handling.
type Assets struct {
	fsys  fs.FS
	etags map[string]string
	files http.Handler
}

// AssetsWithCache wraps a file server over fsys. ETags are computed once up front.
func AssetsWithCache(fsys fs.FS) *Assets {
	etags := map[string]string{}
	_ = fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if et, err := fileETag(fsys, name); err == nil {
			etags["/"+name] = et
		}
		return nil
	})
	return &Assets{fsys: fsys, etags: etags, files: http.FileServerFS(fsys)}
}

// Exists reports whether urlPath names a regular file in the asset tree.
func (a *Assets) Exists(urlPath string) bool {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return false
	}
	info, err := fs.Stat(a.fsys, name)
	return err == nil && info.Mode().IsRegular()
}

// ETag returns the precomputed tag for urlPath, or "".
func (a *Assets) ETag(urlPath string) string {
	return a.etags[path.Clean("/"+urlPath)]
}

func (a *Assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
	if et := a.ETag(r.URL.Path); et != "" {
		w.Header().Set("ETag", et)
		if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	a.files.ServeHTTP(w, r)
}

func fileETag(fsys fs.FS, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
