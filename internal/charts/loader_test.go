package charts

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

// testdataDir returns the absolute path to testdata/charts at the module root.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	abs, err := filepath.Abs(filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "charts"))
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	return abs
}

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadChart_RoundTrip(t *testing.T) {
	dir := testdataDir(t)
	l := NewLoader(dir)

	names, err := l.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(names) != 4 {
		t.Fatalf("expected 4 artifacts in testdata, got %d: %v", len(names), names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			c, err := l.LoadChart(name)
			if err != nil {
				t.Fatalf("LoadChart(%q) error: %v", name, err)
			}
			if c == nil {
				t.Fatal("LoadChart returned nil chart")
			}
			if len(c.Data) == 0 {
				t.Error("expected at least one trace")
			}

			raw, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatal(err)
			}
			var want map[string]any
			if err := json.Unmarshal(raw, &want); err != nil {
				t.Fatal(err)
			}

			fig, err := c.Figure()
			if err != nil {
				t.Fatalf("Figure() error: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(fig, &got); err != nil {
				t.Fatal(err)
			}

			for _, key := range []string{"data", "layout"} {
				if !reflect.DeepEqual(got[key], want[key]) {
					t.Errorf("%s did not round-trip:\n got %v\nwant %v", key, got[key], want[key])
				}
			}
		})
	}
}

func TestLoadChart_Missing(t *testing.T) {
	l := NewLoader(testdataDir(t))

	_, err := l.LoadChart("missing.json")
	if err == nil {
		t.Fatal("expected error for missing artifact")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if nf.Name != "missing.json" {
		t.Errorf("expected name missing.json, got %q", nf.Name)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is(err, ErrNotFound)")
	}
}

func TestLoadChart_RejectsNonLocalNames(t *testing.T) {
	l := NewLoader(testdataDir(t))

	for _, name := range []string{"../go.mod", "/etc/passwd", "", "a/../../b.json"} {
		_, err := l.LoadChart(name)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("LoadChart(%q): expected ErrNotFound, got %v", name, err)
		}
	}
}

func TestLoadChart_Malformed(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"garbage.json":   `{"data": [`,
		"array.json":     `[1, 2, 3]`,
		"nodata.json":    `{"layout": {}}`,
		"nolayout.json":  `{"data": []}`,
		"badlayout.json": `{"data": [], "layout": "wide"}`,
		"badtrace.json":  `{"data": [1, 2], "layout": {}}`,
		"datamap.json":   `{"data": {"x": [1]}, "layout": {}}`,
	}
	for name, content := range cases {
		writeArtifact(t, dir, name, content)
	}

	l := NewLoader(dir)
	for name := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := l.LoadChart(name)
			var de *DeserializationError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DeserializationError, got %T: %v", err, err)
			}
			if !errors.Is(err, ErrDeserialization) {
				t.Error("expected errors.Is(err, ErrDeserialization)")
			}
		})
	}
}

func TestLoadAll(t *testing.T) {
	l := NewLoader(testdataDir(t))

	got, err := l.LoadAll("cpi_bubble_map", "cpi_vs_gst_line_bar.json", "cpi_bubble_map")
	if err != nil {
		t.Fatalf("LoadAll error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 charts, got %d", len(got))
	}
	for _, id := range []string{"cpi_bubble_map", "cpi_vs_gst_line_bar"} {
		if got[id] == nil {
			t.Errorf("missing chart %q", id)
		}
	}
}

func TestLoadAll_FailsOnFirstError(t *testing.T) {
	l := NewLoader(testdataDir(t))

	got, err := l.LoadAll("cpi_bubble_map", "does_not_exist", "cpi_vs_gst_line_bar")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got != nil {
		t.Errorf("expected no partial result, got %d charts", len(got))
	}
}

func TestList_MissingDir(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope"))
	if _, err := l.List(); err == nil {
		t.Fatal("expected error for missing assets dir")
	}
}

func TestList_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "taxes.json", `{"data":[],"layout":{}}`)
	if err := os.MkdirAll(filepath.Join(dir, "sub.json", "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeArtifact(t, filepath.Join(dir, "sub.json", "nested"), "global.json", `{"data":[],"layout":{}}`)

	l := NewLoader(dir)
	got, err := l.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"sub.json/nested/global.json", "taxes.json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}

	results, err := l.Check(nil)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	for _, res := range results {
		if !res.OK() {
			t.Errorf("%s: %v", res.Name, res.Err)
		}
	}
}

func TestChartTitle(t *testing.T) {
	l := NewLoader(testdataDir(t))

	c, err := l.LoadChart("necessities_cpi_vs_income.json")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Title(); got != "Necessities CPI vs income" {
		t.Errorf("string title: got %q", got)
	}

	c, err = l.LoadChart("cpi_vs_gst_line_bar.json")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Title(); got != "CPI vs GST" {
		t.Errorf("object title: got %q", got)
	}
}

func TestIDAndFileName(t *testing.T) {
	if got := ID("cpi_bubble_map.json"); got != "cpi_bubble_map" {
		t.Errorf("ID: got %q", got)
	}
	if got := FileName("cpi_bubble_map"); got != "cpi_bubble_map.json" {
		t.Errorf("FileName: got %q", got)
	}
	if got := FileName("cpi_bubble_map.json"); got != "cpi_bubble_map.json" {
		t.Errorf("FileName idempotent: got %q", got)
	}
}
