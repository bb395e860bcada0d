package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// IndexInspector exposes the direct index internals the doctor reports on.
type IndexInspector interface {
	BuiltinCount() int
	CustomEntries() []domain.CommandEntry
}

// DoctorService runs environment diagnostics.
type DoctorService struct {
	ConfigProvider ports.ConfigProvider
	Detector       ports.PlatformDetector
	Inspector      IndexInspector
	Cache          ports.CacheRepository
	Safety         ports.SafetyEvaluator
}

// Run executes checks and returns a report.
func (s *DoctorService) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))

	if s.Detector != nil {
		platform := s.Detector.Detect()
		checks = append(checks, ok("Platform",
			fmt.Sprintf("%s (%s/%s, shell %s)", platform.Platform, platform.OSName, platform.Architecture, platform.Shell)))
	}

	if s.Inspector != nil {
		checks = append(checks, ok("Direct index",
			fmt.Sprintf("%d built-ins, %d custom", s.Inspector.BuiltinCount(), len(s.Inspector.CustomEntries()))))
	} else {
		checks = append(checks, warn("Direct index", "not initialized"))
	}

	if s.Cache != nil {
		stats := s.Cache.Stats()
		checks = append(checks, ok("Translation cache",
			fmt.Sprintf("%d entries, %d total uses", stats.TotalEntries, stats.TotalUses)))
	} else {
		checks = append(checks, warn("Translation cache", "not initialized"))
	}

	if s.Safety != nil {
		if safe, _ := s.Safety.Evaluate("rm -rf /"); safe {
			checks = append(checks, warn("Safety rules", "danger patterns not flagging known-bad commands"))
		} else {
			checks = append(checks, ok("Safety rules", "danger patterns loaded"))
		}
	} else {
		checks = append(checks, warn("Safety rules", "evaluator not initialized"))
	}

	checks = append(checks, collaboratorCheck(cfg))

	return domain.HealthReport{Checks: checks}, nil
}

func collaboratorCheck(cfg domain.Config) domain.HealthCheck {
	if cfg.Preferences.OfflineOnly {
		return ok("Collaborator", "offline mode, external translation disabled")
	}
	if len(cfg.Models) == 0 {
		return warn("Collaborator", "no models configured, resolution stops at the fuzzy tier")
	}
	for _, model := range cfg.Models {
		if strings.Contains(model.Endpoint, "anthropic.com") && envMissing(model.AuthEnvVar, "ANTHROPIC_API_KEY") {
			return warn("Collaborator", fmt.Sprintf("model %s configured but ANTHROPIC_API_KEY missing", model.Name))
		}
		if strings.Contains(model.Endpoint, "openai.com") && envMissing(model.AuthEnvVar, "OPENAI_API_KEY") {
			return warn("Collaborator", fmt.Sprintf("model %s configured but OPENAI_API_KEY missing", model.Name))
		}
	}
	return ok("Collaborator", fmt.Sprintf("%d model(s) configured", len(cfg.Models)))
}

func envMissing(primary, fallback string) bool {
	if primary != "" && os.Getenv(primary) != "" {
		return false
	}
	if fallback != "" && os.Getenv(fallback) != "" {
		return false
	}
	return true
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
