// Package app wires application services with infrastructure adapters.
package app

import (
	"context"
	"io"
	"os"
	"strings"

	"voca/internal/application/assist"
	"voca/internal/application/doctor"
	"voca/internal/application/intent"
	"voca/internal/domain"
	"voca/internal/infrastructure/config"
	"voca/internal/infrastructure/editor"
	"voca/internal/infrastructure/history"
	"voca/internal/infrastructure/phrases"
	"voca/internal/infrastructure/speech"
	"voca/internal/pkg/logger"
	"voca/internal/ports"
)

// Container holds the wired dependency graph.
type Container struct {
	AssistService *assist.Service
	DoctorService *doctor.Service
	Intents       *intent.Classifier
	ConfigLoader  *config.FileLoader
	HistoryStore  ports.HistoryRepository
	Speaker       *speech.Speaker
	Transcripts   ports.TranscriptSource
	Phrases       *phrases.Loader
	Bridge        io.Closer
	Logger        ports.Logger
	Config        domain.Config
}

// BuildContainer constructs the dependency graph. A missing or
// unreachable editor bridge degrades the assistant instead of failing
// startup: commands and document reads answer with spoken errors.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)

	var rules []domain.PhraseRule
	phraseLoader, err := phrases.NewLoader(cfg.Phrases.RulesFile)
	if err != nil {
		log.Warn("phrase rules unavailable", map[string]interface{}{"error": err.Error()})
	} else {
		rules = phraseLoader.Rules()
	}
	classifier := intent.New(rules...)

	var historyStore ports.HistoryRepository
	if strings.EqualFold(cfg.History.Backend, "file") {
		historyStore = history.NewFileStore()
	} else {
		historyStore = history.NewSQLiteStore(cfg.History.MaxEntries)
	}

	var echo io.Writer
	if cfg.Speech.Echo {
		echo = os.Stdout
	}
	speaker := speech.NewSpeaker(echo)

	container := &Container{
		Intents:      classifier,
		ConfigLoader: cfgLoader,
		HistoryStore: historyStore,
		Speaker:      speaker,
		Phrases:      phraseLoader,
		Logger:       log,
		Config:       cfg,
	}

	var (
		editorState ports.EditorState
		executor    ports.CommandExecutor
		notifier    ports.SnippetNotifier
	)
	if cfg.Bridge.URL != "" {
		bridge, err := editor.Dial(cfg.Bridge.URL, cfg.Bridge.Name)
		if err != nil {
			log.Warn("editor bridge unavailable", map[string]interface{}{
				"url":   cfg.Bridge.URL,
				"error": err.Error(),
			})
		} else {
			editorState = bridge
			executor = bridge
			notifier = bridge
			container.Transcripts = bridge
			container.Bridge = bridge
		}
	}

	container.AssistService = &assist.Service{
		ConfigProvider: cfgLoader,
		Intents:        classifier,
		Editor:         editorState,
		Executor:       executor,
		Speech:         speaker,
		Notifier:       notifier,
		History:        historyStore,
		Session:        assist.NewSession(),
		Logger:         log,
	}

	container.DoctorService = &doctor.Service{
		ConfigProvider: cfgLoader,
		Phrases:        phraseLoader,
		Speech:         speaker,
		Transcripts:    container.Transcripts,
		History:        historyStore,
	}

	return container, nil
}

// Close releases long-lived connections.
func (c *Container) Close() error {
	if c.Bridge != nil {
		return c.Bridge.Close()
	}
	return nil
}
