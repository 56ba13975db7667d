package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(Defaults())
	require.NoError(t, err)

	require.Len(t, c.Templates, 5)
	assert.Equal(t, "1", c.Templates[0].ID)
	assert.Equal(t, "Learn React Development from basics to advanced concepts", c.Templates[0].Text)
	assert.Equal(t, domain.Duration{Value: 12, Unit: domain.UnitWeeks}, c.Templates[0].Timeline)
	assert.Equal(t, domain.KindProject, c.Templates[4].KindOrDefault())
	require.NotNil(t, c.Templates[4].Metadata)
	assert.True(t, c.Templates[4].Metadata.IsPro)

	require.Len(t, c.Projects, 3)
	assert.Equal(t, []string{"Basic Todo App", "Weather Dashboard", "E-commerce Platform"},
		[]string{c.Projects[0].Title, c.Projects[1].Title, c.Projects[2].Title})
	assert.Equal(t, domain.LevelAdvanced, c.Projects[2].Difficulty)
	assert.Equal(t, domain.Duration{Value: 4, Unit: domain.UnitWeeks}, c.Projects[2].Duration)

	require.Len(t, c.Tips, 3)
	assert.Equal(t, domain.TipKindQuote, c.Tips[2].Kind)
}

func TestLoad_MergesJSONAndYAMLInNameOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"b.yaml": {Data: []byte(`
projects:
  - id: p1
    title: Project One
    duration: {value: 2, unit: days}
    difficulty: beginner
`)},
		"a.json": {Data: []byte(`{"templates":[{"id":"t1","title":"T","text":"Learn Go","timeline":{"value":3,"unit":"months"},"experience_level":"advanced"}]}`)},
		"notes.txt": {Data: []byte("ignored")},
	}

	c, err := Load(fsys)
	require.NoError(t, err)
	require.Len(t, c.Templates, 1)
	assert.Equal(t, "t1", c.Templates[0].ID)
	assert.Equal(t, 0.8, c.Templates[0].ClarityOrDefault())
	require.Len(t, c.Projects, 1)
	assert.Equal(t, domain.Duration{Value: 2, Unit: domain.UnitDays}, c.Projects[0].Duration)
	assert.Empty(t, c.Tips)
}

func TestLoad_NoDocuments(t *testing.T) {
	_, err := Load(fstest.MapFS{"readme.md": {Data: []byte("#")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog documents")
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(fstest.MapFS{"broken.json": {Data: []byte(`{"templates":`)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog broken.json")
}

func TestLoad_InvalidCatalog(t *testing.T) {
	_, err := Load(fstest.MapFS{"a.yml": {Data: []byte("tips: []\n")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one template is required")
	assert.Contains(t, err.Error(), "at least one project is required")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yml"), []byte(`
templates:
  - id: go
    title: Learn Go
    text: Learn Go by building CLIs
    timeline: {value: 6, unit: weeks}
    experience_level: beginner
projects:
  - id: cli
    title: Todo CLI
    duration: {value: 1, unit: weeks}
    difficulty: beginner
`), 0o644))

	c, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", c.Templates[0].Title)
	assert.Equal(t, "Todo CLI", c.Projects[0].Title)
}

func TestLoadDir_Missing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse("catalog.toml", []byte(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestTemplateEntries_NumbersByCatalogOrder(t *testing.T) {
	c, err := Load(Defaults())
	require.NoError(t, err)

	entries := c.TemplateEntries()
	require.Len(t, entries, len(c.Templates))
	for i, e := range entries {
		assert.Equal(t, i+1, e.Position)
		assert.Equal(t, c.Templates[i].ID, e.ID)
	}
	assert.Equal(t, domain.KindTemplate, entries[0].Kind)
	assert.Equal(t, 0.8, entries[0].Clarity)
}
