// Package platform detects the OS/shell context the resolver runs under.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// Detector derives the platform context from the process environment.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect reports the current platform family, shell, OS and architecture.
func (d *Detector) Detect() domain.PlatformContext {
	return domain.PlatformContext{
		Platform:     platformFamily(runtime.GOOS),
		Shell:        detectShell(runtime.GOOS),
		OSName:       runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
}

func platformFamily(goos string) string {
	if goos == "windows" {
		return "windows"
	}
	return "unix"
}

func detectShell(goos string) string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	if goos == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			name := strings.TrimSuffix(strings.ToLower(filepath.Base(comspec)), ".exe")
			return name
		}
		return "powershell"
	}
	return "sh"
}

var _ ports.PlatformDetector = (*Detector)(nil)
