// Package app wires application services to infrastructure adapters.
package app

import (
	"context"
	"fmt"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/infrastructure/ai"
	"github.com/doeshing/nlsh-go/internal/infrastructure/cache"
	"github.com/doeshing/nlsh-go/internal/infrastructure/config"
	"github.com/doeshing/nlsh-go/internal/infrastructure/direct"
	"github.com/doeshing/nlsh-go/internal/infrastructure/fuzzy"
	"github.com/doeshing/nlsh-go/internal/infrastructure/platform"
	"github.com/doeshing/nlsh-go/internal/infrastructure/safety"
	"github.com/doeshing/nlsh-go/internal/infrastructure/typo"
	"github.com/doeshing/nlsh-go/internal/pkg/logger"
	"github.com/doeshing/nlsh-go/internal/ports"
	"github.com/doeshing/nlsh-go/internal/services"
)

// Container wires up the resolution pipeline.
type Container struct {
	Resolver      *services.Resolver
	DoctorService *services.DoctorService
	ConfigLoader  *config.FileLoader
	Config        domain.Config
	Platform      domain.PlatformContext
	Index         *direct.Index
	Cache         ports.CacheRepository
	Logger        *logger.ZapLogger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	plat := platform.NewDetector().Detect()
	corrector := typo.NewCorrector(plat)

	index, err := direct.NewIndex(direct.NewYAMLStore(""))
	if err != nil {
		return nil, fmt.Errorf("load direct index: %w", err)
	}

	learning := fuzzy.NewMemoryLearningStore()
	fuzzyResolver := fuzzy.NewResolver(fuzzy.Options{
		Threshold: cfg.Resolver.FuzzyThreshold,
		Weights:   domain.DefaultMatcherWeights(),
		Language:  cfg.Preferences.Language,
		Learning:  learning,
		Logger:    log,
	})

	var cacheStore ports.CacheRepository
	if cfg.Cache.Persist {
		cacheStore = cache.NewSQLiteCache("", cfg.Cache.MaxEntries, log)
	} else {
		cacheStore = cache.NewMemoryCache(cfg.Cache.MaxEntries, log)
	}

	translator := buildTranslator(cfg, log)
	evaluator := safety.NewEvaluator("")

	resolver := &services.Resolver{
		Config:     cfg,
		Platform:   plat,
		Typo:       corrector,
		Direct:     index,
		Fuzzy:      fuzzyResolver,
		Cache:      cacheStore,
		Learning:   learning,
		Translator: translator,
		Safety:     evaluator,
		Logger:     log,
		Normalizer: fuzzyResolver.Normalize,
	}

	doctorService := &services.DoctorService{
		ConfigProvider: cfgLoader,
		Detector:       platform.NewDetector(),
		Inspector:      index,
		Cache:          cacheStore,
		Safety:         evaluator,
	}

	return &Container{
		Resolver:      resolver,
		DoctorService: doctorService,
		ConfigLoader:  cfgLoader,
		Config:        cfg,
		Platform:      plat,
		Index:         index,
		Cache:         cacheStore,
		Logger:        log,
	}, nil
}

// buildTranslator resolves the configured default model to a translator. A
// missing or unusable model leaves the translator nil and the pipeline stops
// at the fuzzy tier.
func buildTranslator(cfg domain.Config, log ports.Logger) ports.Translator {
	if cfg.Preferences.OfflineOnly || len(cfg.Models) == 0 {
		return nil
	}
	model, ok := findModel(cfg, cfg.Preferences.DefaultModel)
	if !ok {
		model = cfg.Models[0]
	}
	translator, err := ai.NewFactory().ForModel(model)
	if err != nil {
		log.Warn("translator disabled", map[string]interface{}{
			"model": model.Name,
			"error": err.Error(),
		})
		return nil
	}
	return translator
}

func findModel(cfg domain.Config, name string) (domain.ModelDefinition, bool) {
	for _, model := range cfg.Models {
		if model.Name == name {
			return model, true
		}
	}
	return domain.ModelDefinition{}, false
}
