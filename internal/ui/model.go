package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"lifex/internal/config"
	"lifex/internal/deck"
	"lifex/internal/eventbus"
	"lifex/internal/gallery"
	"lifex/internal/navigator"
	"lifex/internal/scene"
	"lifex/internal/tween"
	"lifex/internal/ui/adapters"
	"lifex/internal/ui/handlers"
	"lifex/internal/ui/input"
	inputtypes "lifex/internal/ui/input/types"
	"lifex/internal/ui/state"
	"lifex/internal/ui/viewmodels"
	"lifex/internal/ui/views"
)

const (
	frameInterval    = time.Second / 60
	maxFrameStep     = 100 * time.Millisecond // a stalled terminal must not skip whole animations
	previewCacheSize = 64
	statusTimeout    = 3 * time.Second
)

// Options configures the UI model
type Options struct {
	Config *config.Config
	Deck   *deck.Deck
	Images []string
	Bus    eventbus.EventBus // optional
	Logger *zap.Logger
	Debug  bool
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	deck   *deck.Deck
	state  *state.AppState
	log    *zap.Logger
	debug  bool

	// Presentation
	scene          *adapters.SceneAdapter
	engine         *tween.Engine
	navigator      *navigator.Navigator
	entrance       *navigator.EntrancePlayer
	gallery        *gallery.Browser // nil when the deck has no gallery section
	gallerySection int
	lastFrame      time.Time

	// Rendering
	help         help.Model
	keys         keyMap
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	helpRenderer *HelpRenderer
	previews     *PreviewCache
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel builds the scene for the deck and wires the navigator and the
// gallery browser to it. The first section is shown immediately.
func NewModel(opts Options) (*Model, error) {
	if opts.Deck == nil {
		return nil, fmt.Errorf("no deck to present")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	previews, err := NewPreviewCache(previewCacheSize, log.Named("preview"))
	if err != nil {
		return nil, err
	}

	keys := newKeyMap()
	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		deck:         opts.Deck,
		state:        state.NewAppState(),
		log:          log,
		debug:        opts.Debug,
		scene:        adapters.NewSceneAdapter(deck.Build(opts.Deck)),
		engine:       tween.New(),
		help:         help.New(),
		keys:         keys,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(keys),
		previews:     previews,
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
	}

	var pub navigator.Publisher
	if opts.Bus != nil {
		pub = opts.Bus
	}

	m.entrance = navigator.NewEntrancePlayer(m.engine, m.scene.AsContentQuery(), opts.Deck.Kinds())
	m.entrance.OnEnter(func(section int, kind string) {
		m.log.Debug("Section entered", zap.Int("section", section), zap.String("kind", kind))
	})

	m.navigator = navigator.New(navigator.Options{
		TotalSections: opts.Deck.Total(),
		Duration:      cfg.AnimationDuration(),
		Scene:         m.scene.AsNavigatorScene(),
		Animator:      m.engine,
		Entrance:      m.entrance,
		Publisher:     pub,
		Logger:        log,
	})

	if section, ok := opts.Deck.GallerySection(); ok {
		m.gallerySection = section
		var galleryPub gallery.Publisher
		if opts.Bus != nil {
			galleryPub = opts.Bus
		}
		m.gallery = gallery.New(gallery.Options{
			Images:            opts.Images,
			BasePath:          cfg.Gallery.BasePath,
			PerPage:           cfg.Gallery.ImagesPerPage,
			Mode:              cfg.Gallery.Mode,
			SlideshowInterval: cfg.SlideshowInterval(),
			Animator:          m.engine,
			Publisher:         galleryPub,
			Logger:            log,
		})
		if main, ok := m.scene.MainImage(); ok {
			m.gallery.SetMainImage(main)
		}
		m.gallery.Show()
		m.syncGallery()
	}

	m.eventHandler = handlers.NewEventHandler(m.state, statusTimeout)
	m.viewModel = viewmodels.NewViewModel(m.state, m.navigator, m.scene.Scene(), opts.Deck.Title, m.gallerySection)

	m.navigator.Start()
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init starts the frame loop for the first section's entrance
func (m *Model) Init() tea.Cmd {
	return m.scheduleFrame()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m, m.previewCmd()

	case tea.KeyMsg:
		if m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
			m.state.StatusMessage = ""
		}

		ctx := m.inputContext()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		cmds = append(cmds, m.scheduleFrame(), m.previewCmd())

		if m.debug {
			m.dumpState()
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	if m.state.InPagerMode {
		return ""
	}

	keys := m.keys
	keys.onGallery = m.onGallerySection()
	m.viewModel.SetHelp(m.help, keys)

	var frame *views.GalleryFrame
	if m.gallery != nil {
		f := m.galleryFrame()
		frame = &f
	}
	m.viewModel.SetGalleryFrame(frame)

	var mode viewmodels.InputMode
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeNormal:
		mode = viewmodels.InputModeNormal
	case inputtypes.ModeGotoSection:
		mode = viewmodels.InputModeGotoSection
	case inputtypes.ModeSelectImage:
		mode = viewmodels.InputModeSelectImage
	case inputtypes.ModeQuitConfirm:
		mode = viewmodels.InputModeQuitConfirm
	}
	m.viewModel.SetInputMode(mode)
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:          m.state,
		Navigator:      m.navigator,
		GallerySection: m.gallerySection,
	}
}

func (m *Model) onGallerySection() bool {
	return m.gallery != nil && m.navigator.Current() == m.gallerySection
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.SectionKeyAction:
		if intent, ok := m.navigator.KeyIntent(a.Key); ok {
			m.navigator.Dispatch(intent)
		}
		return nil

	case inputtypes.GoToSectionAction:
		m.goToSection(a.Section)
		return nil

	case inputtypes.GalleryAction:
		return m.dispatchGallery(a.Intent)

	case inputtypes.SelectThumbnailAction:
		if m.gallery == nil {
			return nil
		}
		v := m.gallery.View()
		if a.Slot < 1 || a.Slot > len(v.Thumbnails) {
			return nil
		}
		return m.dispatchGallery(gallery.SelectImage{Index: v.Thumbnails[a.Slot-1].Index})

	case inputtypes.SelectImageNumberAction:
		return m.selectImageNumber(a.Number)

	case inputtypes.ToggleFullscreenAction:
		if m.onGallerySection() {
			m.state.ToggleFullscreen()
		}
		return nil

	case inputtypes.ScrollAction:
		if sec, ok := m.scene.Scene().Section(m.navigator.Current()); ok {
			sec.ScrollBy(a.Delta)
		}
		return nil

	case inputtypes.SubmitTextAction:
		return m.handleTextSubmit(a)

	case inputtypes.UpdateTextAction:
		m.state.PromptText = a.Text
		return nil

	case inputtypes.CancelTextAction:
		m.state.PromptText = ""
		return nil

	case inputtypes.StatusAction:
		m.state.StatusMessage = a.Message
		return nil

	case inputtypes.ToggleHelpAction:
		content := m.helpRenderer.RenderHelpContent(m.deck.Title, m.gallery != nil)
		return m.fetchHelpPager(content)

	case inputtypes.QuitAction:
		if m.gallery != nil {
			m.gallery.StopSlideshow()
		}
		m.log.Info("Leaving presentation",
			zap.Int("section", m.navigator.Current()),
			zap.Bool("forced", a.Force))
		return tea.Quit
	}

	return nil
}

func (m *Model) handleTextSubmit(a inputtypes.SubmitTextAction) tea.Cmd {
	text := strings.TrimSpace(a.Text)
	m.state.PromptText = ""
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return m.setStatus(fmt.Sprintf("not a number: %q", text))
	}

	switch a.Mode {
	case inputtypes.ModeGotoSection:
		if n < 1 || n > m.navigator.Total() {
			return m.setStatus(fmt.Sprintf("no section %d", n))
		}
		m.goToSection(n)
	case inputtypes.ModeSelectImage:
		return m.selectImageNumber(n)
	}
	return nil
}

func (m *Model) goToSection(n int) {
	m.navigator.Dispatch(navigator.GoTo{Section: n})
}

func (m *Model) selectImageNumber(n int) tea.Cmd {
	if m.gallery == nil {
		return nil
	}
	if n < 1 || n > len(m.gallery.Filtered()) {
		return m.setStatus(fmt.Sprintf("no image %d", n))
	}
	return m.dispatchGallery(gallery.SelectImage{Index: n - 1})
}

func (m *Model) dispatchGallery(intent gallery.Intent) tea.Cmd {
	if m.gallery == nil {
		return nil
	}
	res := m.gallery.Dispatch(intent)
	if !res.Changed {
		return nil
	}
	m.syncGallery()
	if res.Timer != nil {
		return slideshowTick(*res.Timer)
	}
	return nil
}

// syncGallery mirrors the browser into the render tree and the view toggle
func (m *Model) syncGallery() {
	m.scene.SyncGallery(m.gallery.View())
	_, running := m.gallery.Slideshow()
	m.state.SetSlideshow(running)
}

func slideshowTick(t gallery.SlideshowTimer) tea.Cmd {
	return tea.Tick(t.Interval, func(time.Time) tea.Msg {
		return slideshowTickMsg{id: t.ID}
	})
}

// scheduleFrame arms the next frame while tweens are running. At most one
// frame tick is in flight.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.state.Animating || !m.engine.Active() {
		return nil
	}
	m.state.Animating = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) advanceFrame(now time.Time) {
	dt := frameInterval
	if !m.lastFrame.IsZero() {
		if d := now.Sub(m.lastFrame); d > 0 {
			dt = min(d, maxFrameStep)
		}
	}
	m.lastFrame = now
	m.engine.Advance(dt)
	if !m.engine.Active() {
		m.lastFrame = time.Time{}
	}
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.state.StatusMessage = msg
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return handlers.ClearStatusMsg{} })
}

// previewSize is the main image area in terminal cells
func (m *Model) previewSize() (int, int) {
	if m.state.Fullscreen {
		return max(m.state.Width-2, 1), max(m.state.Height-3, 1)
	}
	return min(max(m.state.Width-6, 1), 60), 12
}

// previewCmd decodes the image on screen and prefetches the selection the
// main image is fading toward
func (m *Model) previewCmd() tea.Cmd {
	if !m.onGallerySection() || m.state.Width == 0 {
		return nil
	}
	w, h := m.previewSize()

	var cmds []tea.Cmd
	if main, ok := m.scene.Scene().ByID(scene.IDGalleryMain); ok {
		cmds = append(cmds, m.previews.Load(main.Source(), w, h))
	}
	if name, ok := m.gallery.Current(); ok {
		cmds = append(cmds, m.previews.Load(m.gallery.Path(name), w, h))
	}
	return tea.Batch(cmds...)
}

func (m *Model) galleryFrame() views.GalleryFrame {
	frame := views.GalleryFrame{
		View:             m.gallery.View(),
		Features:         m.gallery.Features(),
		SizeOptions:      m.gallery.SizeOptions(),
		DirectionOptions: m.gallery.DirectionOptions(),
		ViewMode:         m.state.GalleryView,
	}

	sc := m.scene.Scene()
	if thumbs, ok := sc.ByID(scene.IDGalleryThumbs); ok {
		frame.Thumbs = thumbs.QueryAll(scene.ClassGalleryThumb)
	}
	main, ok := sc.ByID(scene.IDGalleryMain)
	if !ok {
		return frame
	}
	frame.Source = main.Source()
	frame.MainOpacity = main.Opacity()
	if sec, ok := sc.Section(m.gallerySection); ok {
		frame.MainOpacity *= sec.Opacity()
	}

	w, h := m.previewSize()
	if preview, ok := m.previews.Rendered(frame.Source, w, h, frame.MainOpacity); ok {
		frame.Preview = preview
	}
	return frame
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.state.Animating = false
		if m.state.InPagerMode {
			// nobody is watching, land every tween
			m.engine.Flush()
			m.lastFrame = time.Time{}
			return m, nil
		}
		m.advanceFrame(time.Time(msg))
		return m, tea.Batch(m.scheduleFrame(), m.previewCmd())

	case slideshowTickMsg:
		if m.gallery == nil || !m.gallery.SlideshowTick(msg.id) {
			// stale timer from a stopped or restarted slideshow
			return m, nil
		}
		m.syncGallery()
		timer, _ := m.gallery.Slideshow()
		return m, tea.Batch(slideshowTick(timer), m.scheduleFrame(), m.previewCmd())

	case previewLoadedMsg:
		m.previews.Store(msg)
		return m, nil

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Warn("Help pager failed", zap.Error(msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, m.scheduleFrame()

	case handlers.ClearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// dumpState logs the presentation and gallery state after every key
func (m *Model) dumpState() {
	fields := []zap.Field{
		zap.Any("presentation", m.navigator.State()),
		zap.String("mode", m.inputHandler.ModeName()),
		zap.Bool("fullscreen", m.state.Fullscreen),
		zap.String("lastEvent", string(m.state.LastEvent)),
	}
	if m.gallery != nil {
		fields = append(fields, zap.Stringer("gallery", m.gallery))
	}
	m.log.Debug("State", fields...)
}
