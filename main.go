package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gifgrip/internal/config"
	"gifgrip/internal/domain"
	"gifgrip/internal/eventbus"
	"gifgrip/internal/giphy"
	"gifgrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	var rating string
	var lang string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.StringVar(&rating, "rating", "", "Content rating filter (g, pg, pg-13, r)")
	flag.StringVar(&lang, "lang", "", "Language code for search relevance")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("gifgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config %s: %v\n", configPath, err)
			os.Exit(1)
		}
	} else {
		cfg, err = configSvc.Load()
		if err != nil {
			log.Printf("Failed to load config, using defaults: %v", err)
			cfg = config.DefaultConfig()
		}
	}

	// Command line overrides
	if rating != "" {
		cfg.Rating = string(domain.ParseRating(rating))
	}
	if lang != "" {
		cfg.Lang = lang
	}

	// A missing API key is not checked here; the first search fails through
	// the normal error path and the hint points at the env var.
	if cfg.APIKey == "" {
		log.Printf("No API key configured, searches will fail until %s is set", config.APIKeyEnvVar)
	}

	// Subscribe to config changes to save automatically
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.Rating = string(event.Rating)
			var err error
			if configPath != "" {
				err = configSvc.SaveToPath(cfg, configPath)
			} else {
				err = configSvc.Save(cfg)
			}
			if err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Config saved (rating: %s)", cfg.Rating)
			}
		}
	})

	// Log the search lifecycle. The API key never appears in log output.
	bus.Subscribe(eventbus.EventSearchStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchStartedEvent); ok {
			log.Printf("Search started: %q (generation %d)", event.Query, event.Generation)
		}
	})
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchCompletedEvent); ok {
			log.Printf("Search completed: %q, %d results (generation %d)", event.Query, event.Count, event.Generation)
		}
	})
	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchFailedEvent); ok {
			log.Printf("Search failed: %q: %s (generation %d)", event.Query, event.Message, event.Generation)
		}
	})

	// Create the API client and UI model
	client := giphy.NewClient(cfg)
	uiModel := ui.NewModel(cfg, client, bus)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Create event channel for UI and forward bus events to it
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventConfigSaved, forwardEvent)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	close(eventChan)
}
