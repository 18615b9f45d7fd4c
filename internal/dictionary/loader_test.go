package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newLoader() *Loader {
	return NewLoader(zerolog.Nop())
}

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "terms.json"),
		`[{"word":"Test","meaning":"A test term.","reference":"sample"}]`)

	tbl, stats, err := newLoader().Load([]string{path})
	require.NoError(t, err)

	e, ok := tbl.Get("test")
	require.True(t, ok)
	assert.Equal(t, Entry{Word: "test", Meaning: "A test term.", Reference: "sample"}, e)
	assert.Equal(t, []string{path}, stats.Sources)
	assert.Equal(t, 1, stats.Records)
}

func TestLoad_CSV(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "terms.csv"),
		"word,meaning,reference\ntest,A test term.,sample\n\"queue, fifo\",\"Ordered, waiting\",\n")

	tbl, _, err := newLoader().Load([]string{path})
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())

	e, _ := tbl.Get("test")
	assert.Equal(t, "sample", e.Reference)
	e, _ = tbl.Get("queue, fifo")
	assert.Equal(t, "Ordered, waiting", e.Meaning)
	assert.Empty(t, e.Reference)
}

func TestLoad_CSVHeaderVariants(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "terms.csv"),
		"\xef\xbb\xbf Meaning , Word\nA fast storage layer.,cache\n")

	tbl, _, err := newLoader().Load([]string{path})
	require.NoError(t, err)
	e, ok := tbl.Get("cache")
	require.True(t, ok)
	assert.Equal(t, "A fast storage layer.", e.Meaning)
	assert.Empty(t, e.Reference)
}

func TestLoad_CSVBareQuoteInField(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "terms.csv"),
		"word,meaning,reference\ncache,A 5\" fast storage layer,memory\n")

	tbl, _, err := newLoader().Load([]string{path})
	require.NoError(t, err)
	e, ok := tbl.Get("cache")
	require.True(t, ok)
	assert.Equal(t, Entry{Word: "cache", Meaning: `A 5" fast storage layer`, Reference: "memory"}, e)
}

func TestLoad_MissingReferenceDefaultsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "terms.json"),
		`[{"word":"cache","meaning":"A fast storage layer."},{"word":"pool","meaning":"Workers","reference":null}]`)

	tbl, _, err := newLoader().Load([]string{path})
	require.NoError(t, err)
	for _, e := range tbl.Entries() {
		assert.Empty(t, e.Reference, e.Word)
	}
}

func TestLoad_DisjointSourcesSum(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	total := 0
	for i := 0; i < 3; i++ {
		var records string
		for j := 0; j <= i; j++ {
			if j > 0 {
				records += ","
			}
			records += fmt.Sprintf(`{"word":"Term%d_%d","meaning":"m"}`, i, j)
			total++
		}
		paths = append(paths, write(t, filepath.Join(dir, fmt.Sprintf("d%d.json", i)), "["+records+"]"))
	}

	tbl, stats, err := newLoader().Load(paths)
	require.NoError(t, err)
	assert.Equal(t, total, tbl.Len())
	assert.Equal(t, 0, stats.Overwrites)
	for i := 0; i < 3; i++ {
		for j := 0; j <= i; j++ {
			_, ok := tbl.Get(fmt.Sprintf("term%d_%d", i, j))
			assert.True(t, ok)
		}
	}
}

func TestLoad_LastSourceWins(t *testing.T) {
	dir := t.TempDir()
	s1 := write(t, filepath.Join(dir, "s1.json"), `[{"word":"cache","meaning":"first"}]`)
	s2 := write(t, filepath.Join(dir, "s2.csv"), "word,meaning\nCache,second\n")

	tbl, stats, err := newLoader().Load([]string{s1, s2})
	require.NoError(t, err)
	e, _ := tbl.Get("cache")
	assert.Equal(t, "second", e.Meaning)
	assert.Equal(t, 1, stats.Overwrites)

	tbl, _, err = newLoader().Load([]string{s2, s1})
	require.NoError(t, err)
	e, _ = tbl.Get("cache")
	assert.Equal(t, "first", e.Meaning)
}

func TestLoad_DirectoryIsSortedAndRecursive(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "b.json"), `[{"word":"cache","meaning":"from b"}]`)
	write(t, filepath.Join(dir, "a.csv"), "word,meaning\ncache,from a\n")
	write(t, filepath.Join(dir, "z", "nested.json"), `[{"word":"cache","meaning":"from nested"},{"word":"heap","meaning":"h"}]`)
	write(t, filepath.Join(dir, "readme.txt"), "not a dictionary")

	l := newLoader()
	sources, err := l.ExpandSources([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "z", "nested.json"),
	}, sources)

	tbl, _, err := l.Load([]string{dir})
	require.NoError(t, err)
	e, _ := tbl.Get("cache")
	assert.Equal(t, "from nested", e.Meaning)
	assert.Equal(t, 2, tbl.Len())
}

func TestLoad_MixedFilesAndDirectoriesKeepArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	write(t, filepath.Join(sub, "x.json"), `[{"word":"cache","meaning":"dir"}]`)
	explicit := write(t, filepath.Join(dir, "explicit.json"), `[{"word":"cache","meaning":"explicit"}]`)

	tbl, _, err := newLoader().Load([]string{sub, explicit})
	require.NoError(t, err)
	e, _ := tbl.Get("cache")
	assert.Equal(t, "explicit", e.Meaning)
}

func TestLoad_MissingMeaningFails(t *testing.T) {
	dir := t.TempDir()
	good := write(t, filepath.Join(dir, "good.json"), `[{"word":"cache","meaning":"ok"}]`)
	bad := write(t, filepath.Join(dir, "bad.json"), `[{"word":"broken"}]`)

	tbl, _, err := newLoader().Load([]string{good, bad})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Nil(t, tbl)
}

func TestLoad_JSONNullFieldsFail(t *testing.T) {
	for name, content := range map[string]string{
		"null word":    `[{"word":null,"meaning":"A fast storage layer."}]`,
		"null meaning": `[{"word":"cache","meaning":null}]`,
	} {
		t.Run(name, func(t *testing.T) {
			path := write(t, filepath.Join(t.TempDir(), "terms.json"), content)

			tbl, _, err := newLoader().Load([]string{path})
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Nil(t, tbl)
		})
	}
}

func TestLoad_CSVMissingColumnFails(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "bad.csv"), "word,reference\ncache,memory\n")

	_, _, err := newLoader().Load([]string{path})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestLoad_CSVShortRowFails(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "bad.csv"), "word,meaning\ncache\n")

	_, _, err := newLoader().Load([]string{path})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestLoad_EmptyWordFails(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "empty.json"), `[{"word":"","meaning":"nothing"}]`)

	_, _, err := newLoader().Load([]string{path})
	assert.ErrorIs(t, err, ErrEmptyWord)
}

func TestLoad_UnsupportedExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "terms.yaml"), "- word: cache\n")

	_, _, err := newLoader().Load([]string{path})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingPath(t *testing.T) {
	_, _, err := newLoader().Load([]string{filepath.Join(t.TempDir(), "nope.json")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "terms.json"), `{"word":"cache","meaning":"not a list"}`)

	_, _, err := newLoader().Load([]string{path})
	assert.Error(t, err)
}

func TestParseFile_EmptyCSV(t *testing.T) {
	dir := t.TempDir()
	path := write(t, filepath.Join(dir, "empty.csv"), "")

	entries, err := ParseFile(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
