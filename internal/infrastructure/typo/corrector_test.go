package typo

import (
	"strings"
	"testing"

	"github.com/doeshing/nlsh-go/internal/domain"
)

func unixContext() domain.PlatformContext {
	return domain.PlatformContext{Platform: "unix", Shell: "bash", OSName: "linux"}
}

func TestCorrectKnownUnixTypo(t *testing.T) {
	c := NewCorrector(unixContext())
	if got := c.Correct("sl"); got != "ls" {
		t.Fatalf("Correct(sl) = %q, want ls", got)
	}
	if got := c.Correct("gti"); got != "git" {
		t.Fatalf("Correct(gti) = %q, want git", got)
	}
}

func TestCorrectPlatformDisjointTargets(t *testing.T) {
	unix := NewCorrector(unixContext())
	win := NewCorrector(domain.PlatformContext{Platform: "windows", Shell: "powershell", OSName: "windows"})
	if got := unix.Correct("sl"); got != "ls" {
		t.Fatalf("unix Correct(sl) = %q, want ls", got)
	}
	if got := win.Correct("sl"); got != "dir" {
		t.Fatalf("windows Correct(sl) = %q, want dir", got)
	}
}

func TestCorrectPassesUnknownThrough(t *testing.T) {
	c := NewCorrector(unixContext())
	for _, in := range []string{"", "   ", "ls", "not-a-typo", strings.Repeat("x", 2000)} {
		if got := c.Correct(in); got != in {
			t.Fatalf("Correct(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestCorrectPhrase(t *testing.T) {
	c := NewCorrector(unixContext())
	if got := c.CorrectPhrase("gti status"); got != "git status" {
		t.Fatalf("CorrectPhrase = %q, want %q", got, "git status")
	}
	if got := c.CorrectPhrase("show me files"); got != "show me files" {
		t.Fatalf("CorrectPhrase should not touch clean phrases, got %q", got)
	}
}

func TestShellSpecificExtras(t *testing.T) {
	zsh := NewCorrector(domain.PlatformContext{Platform: "unix", Shell: "zsh"})
	if got := zsh.Correct("sorce"); got != "source" {
		t.Fatalf("zsh Correct(sorce) = %q, want source", got)
	}
	bash := NewCorrector(unixContext())
	if got := bash.Correct("sorce"); got != "sorce" {
		t.Fatalf("bash table should not carry zsh extras, got %q", got)
	}
}

func TestIsKnownCommand(t *testing.T) {
	c := NewCorrector(unixContext())
	if !c.IsKnownCommand("ls") {
		t.Fatal("ls should be known")
	}
	if !c.IsKnownCommand("sl") {
		t.Fatal("sl corrects to ls, should be known")
	}
	if c.IsKnownCommand("frobnicate") {
		t.Fatal("frobnicate should not be known")
	}
}

// Every active table must be free of multi-hop chains and 2-cycles: no target
// may itself appear as a key in the same table.
func TestNoCorrectionChains(t *testing.T) {
	contexts := []domain.PlatformContext{
		{Platform: "unix", Shell: "bash"},
		{Platform: "unix", Shell: "zsh"},
		{Platform: "unix", Shell: "fish"},
		{Platform: "windows", Shell: "powershell"},
	}
	for _, pc := range contexts {
		c := NewCorrector(pc)
		for key, target := range c.active {
			head := target
			if i := strings.IndexByte(head, ' '); i > 0 {
				head = head[:i]
			}
			if next, ok := c.active[head]; ok {
				t.Fatalf("%s/%s: %q -> %q chains to %q", pc.Platform, pc.Shell, key, target, next)
			}
		}
	}
}
