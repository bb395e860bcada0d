// Package safety annotates resolved commands with a coarse risk verdict.
// The verdict never blocks resolution; it travels on the result so the CLI
// can warn before the user copies a destructive command.
package safety

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/nlsh-go/internal/ports"
)

// Evaluator matches commands against danger patterns. Rules come from
// ~/.nlsh/safety.yaml when present, otherwise from the built-in table.
type Evaluator struct {
	patterns  []compiledRule
	whitelist []string
}

type compiledRule struct {
	re      *regexp.Regexp
	message string
}

// DangerRule is one configurable pattern in the rules file.
type DangerRule struct {
	Pattern string `yaml:"pattern"`
	Message string `yaml:"message"`
}

type rulesDocument struct {
	DangerPatterns []DangerRule `yaml:"danger_patterns"`
	Whitelist      []string     `yaml:"whitelist"`
}

// NewEvaluator loads rules from path, or from the default location when path
// is empty. A missing or unreadable file falls back to built-in rules; a rule
// with a broken regex is skipped rather than failing the whole set.
func NewEvaluator(path string) *Evaluator {
	doc := loadRules(path)

	e := &Evaluator{whitelist: doc.Whitelist}
	for _, rule := range doc.DangerPatterns {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			continue
		}
		e.patterns = append(e.patterns, compiledRule{re: re, message: rule.Message})
	}
	return e
}

// Evaluate reports whether the command is considered safe and, when it is
// not, the reasons for the verdict.
func (e *Evaluator) Evaluate(command string) (bool, []string) {
	command = strings.TrimSpace(command)
	if command == "" {
		return true, nil
	}
	if e.isWhitelisted(command) {
		return true, nil
	}

	var reasons []string
	for _, rule := range e.patterns {
		if rule.re.MatchString(command) {
			reasons = append(reasons, rule.message)
		}
	}
	return len(reasons) == 0, reasons
}

func (e *Evaluator) isWhitelisted(command string) bool {
	for _, safe := range e.whitelist {
		if safe == "" {
			continue
		}
		if command == safe || strings.HasPrefix(command, safe+" ") {
			return true
		}
	}
	return false
}

func loadRules(path string) rulesDocument {
	if path == "" {
		path = filepath.Join(userHome(), ".nlsh", "safety.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultRules()
	}
	var doc rulesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return defaultRules()
	}
	if len(doc.DangerPatterns) == 0 {
		doc.DangerPatterns = defaultRules().DangerPatterns
	}
	if len(doc.Whitelist) == 0 {
		doc.Whitelist = defaultRules().Whitelist
	}
	return doc
}

func defaultRules() rulesDocument {
	return rulesDocument{
		DangerPatterns: []DangerRule{
			{Pattern: `rm\s+-rf\s+/($|\s)`, Message: "deletes the root directory"},
			{Pattern: `rm\s+-rf\s+\*`, Message: "recursively deletes everything in place"},
			{Pattern: `rm\s+-rf\s+(\$HOME|~)(/)?($|\s)`, Message: "deletes the home directory"},
			{Pattern: `dd\s+if=`, Message: "writes raw disk data"},
			{Pattern: `mkfs\.`, Message: "formats a filesystem"},
			{Pattern: `>\s*/dev/(sd[a-z]|nvme)`, Message: "writes directly to a block device"},
			{Pattern: `chmod\s+(-R\s+)?777`, Message: "grants world-writable permissions"},
			{Pattern: `curl[^|]*\|\s*(sudo\s+)?(ba)?sh`, Message: "pipes a remote script into a shell"},
			{Pattern: `:\(\)\s*{\s*:\|:&\s*}\s*;\s*:`, Message: "fork bomb"},
			{Pattern: `\bshutdown\b|\breboot\b`, Message: "power-cycles the machine"},
			{Pattern: `(DROP|TRUNCATE)\s+(TABLE|DATABASE)`, Message: "destroys database objects"},
		},
		Whitelist: []string{"ls", "pwd", "echo", "cat", "grep", "find", "git status", "df -h", "docker ps"},
	}
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.SafetyEvaluator = (*Evaluator)(nil)
