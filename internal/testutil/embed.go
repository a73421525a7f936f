package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// TestdataFS holds the embedded SQL fixtures.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	p := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// SQLFixtures returns every embedded *.sql file keyed by base name, in
// sorted order of names.
func SQLFixtures() ([]string, map[string][]byte, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.sql")
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(matches)
	names := make([]string, 0, len(matches))
	files := make(map[string][]byte, len(matches))
	for _, m := range matches {
		name := path.Base(m)
		data, err := ReadTestData(name)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, name)
		files[name] = data
	}
	return names, files, nil
}
