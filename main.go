package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lifex/internal/config"
	"lifex/internal/deck"
	"lifex/internal/eventbus"
	"lifex/internal/gallery"
	"lifex/internal/ui"
)

var (
	cfgFile   string
	deckName  string
	imagesDir string
	debugMode bool
)

var rootCmd = &cobra.Command{
	Use:   "lifex",
	Short: "Terminal slide-deck presenter with an image gallery",
	Long: `lifex presents a slide deck section by section with crossfades,
entrance animations and a filterable image gallery.

Decks are the builtin "full" or "compact" decks or a YAML file.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default ./"+config.FileName+")")
	rootCmd.Flags().StringVar(&deckName, "deck", "", "deck to present: full, compact or a YAML file")
	rootCmd.Flags().StringVar(&imagesDir, "images", "", "directory holding the gallery images")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "log debug output and dump state after every key")
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, string, error) {
	if cfgFile != "" {
		cfg, err := config.NewConfigService(filepath.Dir(cfgFile)).LoadFromPath(cfgFile)
		return cfg, cfgFile, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}
	path := filepath.Join(cwd, config.FileName)
	cfg, err := config.NewConfigService(cwd).Load()
	if _, statErr := os.Stat(path); statErr != nil {
		path = ""
	}
	return cfg, path, err
}

func run() error {
	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}
	if deckName != "" {
		cfg.Deck = deckName
	}
	if imagesDir != "" {
		cfg.Gallery.BasePath = imagesDir
		cfg.Gallery.Images = nil
	}
	if debugMode {
		cfg.Logging.Level = "debug"
	}

	log, closeLog, err := cfg.Logging.Prepare()
	if err != nil {
		return err
	}
	defer closeLog()

	bus := eventbus.New(log)
	defer bus.Close()
	bus.SubscribeAll(func(e eventbus.DomainEvent) {
		log.Debug("Event", zap.String("type", string(e.Type())), zap.Any("event", e))
	})
	bus.Publish(eventbus.ConfigLoadedEvent{Path: cfgPath, Deck: cfg.Deck})

	d, err := deck.Load(cfg.Deck)
	if err != nil {
		return err
	}
	log.Info("Deck loaded", zap.String("deck", d.Name), zap.Int("sections", d.Total()))

	model, err := ui.NewModel(ui.Options{
		Config: cfg,
		Deck:   d,
		Images: resolveImages(cfg, log),
		Bus:    bus,
		Logger: log,
		Debug:  debugMode,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// forward events to the UI
	bus.SubscribeAll(func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("Presentation closed")
	return nil
}

// resolveImages picks the explicit list from config, else scans the base
// path, else falls back to the builtin catalogue
func resolveImages(cfg *config.Config, log *zap.Logger) []string {
	if len(cfg.Gallery.Images) > 0 {
		return cfg.Gallery.Images
	}
	images, err := gallery.LoadDir(cfg.Gallery.BasePath)
	if err != nil {
		log.Debug("Image directory not readable, using builtin list", zap.Error(err))
		return gallery.DefaultImages
	}
	if len(images) == 0 {
		log.Debug("Image directory is empty, using builtin list", zap.String("dir", cfg.Gallery.BasePath))
		return gallery.DefaultImages
	}
	log.Info("Images loaded", zap.String("dir", cfg.Gallery.BasePath), zap.Int("count", len(images)))
	return images
}
