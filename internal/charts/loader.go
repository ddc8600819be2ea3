package charts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/gjson"
)

// Loader reads chart artifacts from a single assets directory.
// It holds no state besides the directory and is safe for concurrent use.
type Loader struct {
	Dir string
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// LoadChart reads the named artifact and decodes it into a Chart.
// Nothing is cached; every call goes to disk.
func (l *Loader) LoadChart(name string) (*Chart, error) {
	if !filepath.IsLocal(name) {
		return nil, &NotFoundError{Name: name, Dir: l.Dir}
	}

	raw, err := os.ReadFile(filepath.Join(l.Dir, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Name: name, Dir: l.Dir}
		}
		return nil, fmt.Errorf("reading chart %s: %w", name, err)
	}

	return Decode(name, raw)
}

// Decode validates and decodes raw artifact bytes. The document must be a
// JSON object with a "data" array and a "layout" object.
func Decode(name string, raw []byte) (*Chart, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &DeserializationError{Name: name, Reason: "malformed JSON"}
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, &DeserializationError{Name: name, Reason: "top level is not an object"}
	}
	if !doc.Get("data").IsArray() {
		return nil, &DeserializationError{Name: name, Reason: `missing "data" list`}
	}
	if !doc.Get("layout").IsObject() {
		return nil, &DeserializationError{Name: name, Reason: `missing "layout" mapping`}
	}

	var c Chart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, &DeserializationError{Name: name, Reason: "decoding figure", Err: err}
	}
	return &c, nil
}

// LoadAll loads each named artifact once and returns them keyed by chart ID.
// The first failure aborts the whole load.
func (l *Loader) LoadAll(names ...string) (map[string]*Chart, error) {
	out := make(map[string]*Chart, len(names))
	for _, name := range names {
		id := ID(name)
		if _, ok := out[id]; ok {
			continue
		}
		c, err := l.LoadChart(FileName(name))
		if err != nil {
			return nil, err
		}
		out[id] = c
	}
	return out, nil
}

// List returns the artifact file names under the assets directory,
// relative to it and sorted.
func (l *Loader) List() ([]string, error) {
	if _, err := os.Stat(l.Dir); err != nil {
		return nil, fmt.Errorf("accessing assets dir %s: %w", l.Dir, err)
	}
	names, err := doublestar.Glob(os.DirFS(l.Dir), "**/*.json", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing charts in %s: %w", l.Dir, err)
	}
	sort.Strings(names)
	return names, nil
}
