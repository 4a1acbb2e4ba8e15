package main

import (
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/suanming/internal/adapters/driven/ai"
	"github.com/custodia-labs/suanming/internal/adapters/driven/config/env"
	"github.com/custodia-labs/suanming/internal/adapters/driven/config/file"
	"github.com/custodia-labs/suanming/internal/adapters/driven/random"
	"github.com/custodia-labs/suanming/internal/adapters/driven/reference"
	"github.com/custodia-labs/suanming/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/suanming/internal/adapters/driving/cli"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
	"github.com/custodia-labs/suanming/internal/core/services"
	"github.com/custodia-labs/suanming/internal/logger"
)

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	logger.Section("bootstrap")

	dir := opts.ConfigDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("config unavailable, using in-memory settings: %v", err)
		store = memory.NewConfigStore()
	} else {
		logger.Debug("config file: %s", fileStore.Path())
		store = fileStore
	}

	settingsSvc := services.NewSettingsService(store, ai.NewConfigValidator())
	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	overrides, err := env.Load()
	if err != nil {
		return nil, err
	}
	if err := overrides.Apply(settings); err != nil {
		return nil, err
	}
	if !overrides.IsEmpty() {
		logger.Debug("environment overrides applied")
	}

	table, err := reference.Default()
	if err != nil {
		return nil, fmt.Errorf("load reference tables: %w", err)
	}
	symbols := services.NewSymbolService(table)

	coins, err := random.NewRandomFlipper()
	if err != nil {
		return nil, err
	}
	logger.Debug("coins seeded with %d; pass --seed %d to replay", coins.Seed(), coins.Seed())
	casting := services.NewCastingService(coins, symbols)
	casting.SetFlipperFactory(func(seed int64) driven.CoinFlipper {
		return random.NewFlipper(seed)
	})

	llm, err := ai.CreateLLMService(&settings.LLM)
	if err != nil {
		logger.Warn("interpretation disabled: %v", err)
		llm = nil
	}
	interpretation := services.NewInterpretationService(llm, settings.LLM)

	prompts, err := file.NewPromptStore(filepath.Join(dir, "prompts"))
	if err != nil {
		logger.Warn("using built-in prompts: %v", err)
	} else {
		interpretation.SetPromptStore(prompts)
	}

	return &cli.Services{
		Casting:        casting,
		Symbols:        symbols,
		Interpretation: interpretation,
		Settings:       settingsSvc,
		Effective:      settings,
	}, nil
}
