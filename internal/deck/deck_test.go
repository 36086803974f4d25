package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"lifex/internal/domain"
	"lifex/internal/scene"
)

func TestLoadFull(t *testing.T) {
	d, err := Load(Full)
	require.NoError(t, err)

	assert.Equal(t, 15, d.Total())
	kinds := d.Kinds()
	assert.Equal(t, domain.KindOpening, kinds[1])
	assert.Equal(t, domain.KindGallery, kinds[5])
	assert.Equal(t, domain.KindRevenue, kinds[13])
	assert.Equal(t, domain.KindGeneric, kinds[2])

	n, ok := d.GallerySection()
	require.True(t, ok)
	assert.Equal(t, 5, n)
}

func TestLoadCompact(t *testing.T) {
	d, err := Load(Compact)
	require.NoError(t, err)
	assert.Equal(t, 7, d.Total())

	n, ok := d.GallerySection()
	require.True(t, ok)
	assert.Equal(t, 4, n)
}

func TestLoadDefaultsToFull(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Full, d.Name)
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: custom
sections:
  - title: One
  - title: Two
    kind: revenue
    cards:
      - class: revenue-card
        title: Sales
        value: "10"
`), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Total())
	assert.Equal(t, domain.KindGeneric, d.Sections[0].Kind)
	_, ok := d.GallerySection()
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	_, err := Parse([]byte(`
sections:
  - title: ""
  - title: A
    kind: gallery
  - title: B
    kind: gallery
  - title: C
    kind: weird
    cards:
      - title: no class
`))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)

	_, err = Parse([]byte(`sections: []`))
	require.Error(t, err)
}

func TestBuildScene(t *testing.T) {
	d, err := Load(Full)
	require.NoError(t, err)
	sc := Build(d)

	assert.Len(t, sc.Sections(), 15)
	for _, n := range sc.Sections() {
		sec, ok := sc.Section(n)
		require.True(t, ok)
		assert.False(t, sec.Active())
		assert.Equal(t, 0.0, sec.Opacity())
		assert.Equal(t, SectionID(n), sec.ID)
	}

	for _, id := range []string{scene.IDProgress, scene.IDButtonPrev, scene.IDButtonNext,
		scene.IDGalleryMain, scene.IDGalleryThumbs, scene.IDPaginationPrev, scene.IDPaginationNext} {
		_, ok := sc.ByID(id)
		assert.True(t, ok, id)
	}

	opening, _ := sc.Section(1)
	_, ok := opening.Query(ClassOpeningTitle)
	assert.True(t, ok)
	_, ok = opening.Query(ClassOpeningLogo)
	assert.True(t, ok)

	gallery, _ := sc.Section(5)
	_, ok = gallery.Query(ClassGalleryContainer)
	assert.True(t, ok)

	revenue, _ := sc.Section(13)
	assert.Len(t, revenue.QueryAll("revenue-card"), 3)
	assert.Len(t, revenue.QueryAll(ClassBigNumber), 3)

	specs, _ := sc.Section(3)
	assert.Len(t, specs.QueryAll("spec-card"), 4)
}
