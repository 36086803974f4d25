package adapters

import (
	"lifex/internal/gallery"
	"lifex/internal/navigator"
	"lifex/internal/scene"
	"lifex/internal/tween"
)

// SceneAdapter exposes the render tree through the lookup interfaces the
// navigator and the gallery browser depend on
type SceneAdapter struct {
	scene *scene.Scene
}

// NewSceneAdapter creates a new adapter
func NewSceneAdapter(sc *scene.Scene) *SceneAdapter {
	return &SceneAdapter{scene: sc}
}

// Scene returns the adapted render tree
func (a *SceneAdapter) Scene() *scene.Scene {
	return a.scene
}

// AsNavigatorScene returns the adapter as a navigator.Scene
func (a *SceneAdapter) AsNavigatorScene() navigator.Scene {
	return &navigatorSceneAdapter{scene: a.scene}
}

// AsContentQuery returns the adapter as a navigator.ContentQuery
func (a *SceneAdapter) AsContentQuery() navigator.ContentQuery {
	return &contentQueryAdapter{scene: a.scene}
}

// MainImage returns the gallery main image element, if the deck has one
func (a *SceneAdapter) MainImage() (gallery.MainImage, bool) {
	el, ok := a.scene.ByID(scene.IDGalleryMain)
	if !ok {
		return nil, false
	}
	return el, true
}

// SyncGallery mirrors the visible thumbnail page and pagination controls
// into the render tree so entrance animations and views see them
func (a *SceneAdapter) SyncGallery(v gallery.View) {
	thumbs, ok := a.scene.ByID(scene.IDGalleryThumbs)
	if !ok {
		return
	}
	thumbs.RemoveChildren(scene.ClassGalleryThumb)
	for _, t := range v.Thumbnails {
		el := scene.NewElement("", scene.ClassGalleryThumb)
		el.SetText(t.Name)
		el.SetSource(t.Path)
		el.SetActive(t.Active)
		thumbs.Append(el)
	}

	if prev, ok := a.scene.ByID(scene.IDPaginationPrev); ok {
		prev.SetDisabled(v.PrevPageDisabled)
		prev.SetText(v.Pagination)
	}
	if next, ok := a.scene.ByID(scene.IDPaginationNext); ok {
		next.SetDisabled(v.NextPageDisabled)
		next.SetText(v.Pagination)
	}
}

// navigatorSceneAdapter implements navigator.Scene
type navigatorSceneAdapter struct {
	scene *scene.Scene
}

func (a *navigatorSceneAdapter) Section(n int) (navigator.Section, bool) {
	el, ok := a.scene.Section(n)
	if !ok {
		return nil, false
	}
	return el, true
}

func (a *navigatorSceneAdapter) Progress() (navigator.Indicator, bool) {
	el, ok := a.scene.ByID(scene.IDProgress)
	if !ok {
		return nil, false
	}
	return el, true
}

func (a *navigatorSceneAdapter) Button(id string) (navigator.Button, bool) {
	el, ok := a.scene.ByID(id)
	if !ok {
		return nil, false
	}
	return el, true
}

// contentQueryAdapter implements navigator.ContentQuery
type contentQueryAdapter struct {
	scene *scene.Scene
}

func (a *contentQueryAdapter) HasSection(section int) bool {
	_, ok := a.scene.Section(section)
	return ok
}

func (a *contentQueryAdapter) QueryAll(section int, classes ...string) []tween.Target {
	el, ok := a.scene.Section(section)
	if !ok {
		return nil
	}
	found := el.QueryAll(classes...)
	targets := make([]tween.Target, len(found))
	for i, f := range found {
		targets[i] = f
	}
	return targets
}
