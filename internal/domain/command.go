package domain

// Category groups direct command entries for listing and filtering.
type Category string

const (
	CategoryFiles      Category = "files"
	CategorySearch     Category = "search"
	CategorySystem     Category = "system"
	CategoryNetwork    Category = "network"
	CategoryGit        Category = "git"
	CategoryContainers Category = "containers"
	CategoryPackages   Category = "packages"
	CategoryCustom     Category = "custom"
)

// CommandEntry is a registered natural-language phrase with its ready-made
// command. Built-in entries are immutable at runtime; custom entries are
// user-managed and shadow built-ins with the same key.
type CommandEntry struct {
	Phrase      string   `yaml:"phrase" json:"phrase"`
	Command     string   `yaml:"command" json:"command"`
	Explanation string   `yaml:"explanation" json:"explanation"`
	Confidence  float64  `yaml:"confidence" json:"confidence"`
	Category    Category `yaml:"category,omitempty" json:"category,omitempty"`
	IsCustom    bool     `yaml:"-" json:"is_custom"`
}
