package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifex/internal/tween"
)

func TestQueryAllDocumentOrder(t *testing.T) {
	root := NewElement("root")
	a := NewElement("a", "spec-card")
	b := NewElement("b", "wrapper")
	c := NewElement("c", "stat-card")
	d := NewElement("d", "spec-card")
	b.Append(c, d)
	root.Append(a, b)

	got := root.QueryAll("spec-card", "stat-card")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "c", "d"}, []string{got[0].ID, got[1].ID, got[2].ID})

	_, ok := root.Query("missing")
	assert.False(t, ok)
}

func TestSectionsStartHidden(t *testing.T) {
	s := New()
	el := NewElement("section-2", ClassSection)
	el.Append(NewElement(IDGalleryMain))
	s.AddSection(2, el)

	got, ok := s.Section(2)
	require.True(t, ok)
	assert.False(t, got.Active())
	assert.Equal(t, 0.0, got.Opacity())

	_, ok = s.ByID(IDGalleryMain)
	assert.True(t, ok, "children are indexed by ID")

	_, ok = s.Section(3)
	assert.False(t, ok)
}

func TestElementState(t *testing.T) {
	el := NewElement("x")
	el.Set(tween.Opacity, 1.4)
	assert.Equal(t, 1.0, el.Opacity())

	el.ScrollBy(5)
	el.ScrollBy(-10)
	assert.Equal(t, 0, el.ScrollTop())

	el.Append(NewElement("t1", ClassGalleryThumb), NewElement("keep"), NewElement("t2", ClassGalleryThumb))
	el.RemoveChildren(ClassGalleryThumb)
	require.Len(t, el.Children(), 1)
	assert.Equal(t, "keep", el.Children()[0].ID)
}
