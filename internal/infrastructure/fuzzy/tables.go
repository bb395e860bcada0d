package fuzzy

import "github.com/doeshing/nlsh-go/internal/domain"

// commandDescriptor pairs a command with the descriptive phrases the distance
// matcher compares inputs against. Typed tables built once at startup; no
// stringly-keyed nesting.
type commandDescriptor struct {
	Command      string
	Descriptions []string
}

var commandDescriptors = []commandDescriptor{
	{Command: "ls", Descriptions: []string{"list files", "show files", "list directory contents", "show directory"}},
	{Command: "ls -la", Descriptions: []string{"list all files", "show hidden files", "list files detailed"}},
	{Command: "pwd", Descriptions: []string{"current directory", "show working directory", "where am i"}},
	{Command: "mkdir", Descriptions: []string{"create directory", "make directory", "new directory"}},
	{Command: "rm", Descriptions: []string{"delete file", "delete files"}},
	{Command: "cat", Descriptions: []string{"show file content", "read file"}},
	{Command: "tail -f", Descriptions: []string{"follow log", "watch log file", "tail log"}},
	{Command: "grep -rn", Descriptions: []string{"search in files", "search text in files", "search recursively"}},
	{Command: "find . -name", Descriptions: []string{"search file by name", "search files"}},
	{Command: "ps aux", Descriptions: []string{"show processes", "list processes", "running processes"}},
	{Command: "top", Descriptions: []string{"monitor system", "monitor processes", "system monitor"}},
	{Command: "kill", Descriptions: []string{"kill process", "kill a process"}},
	{Command: "df -h", Descriptions: []string{"disk usage", "show disk space", "free disk space"}},
	{Command: "free -h", Descriptions: []string{"memory usage", "show memory", "free memory"}},
	{Command: "uname -a", Descriptions: []string{"system information", "show system info"}},
	{Command: "ip addr show", Descriptions: []string{"show ip address", "network addresses"}},
	{Command: "netstat -tuln", Descriptions: []string{"open ports", "listening ports", "show ports"}},
	{Command: "ping", Descriptions: []string{"ping host", "test connection"}},
	{Command: "curl -O", Descriptions: []string{"download file", "fetch url"}},
	{Command: "tar -czvf", Descriptions: []string{"compress files", "create archive"}},
	{Command: "tar -xzvf", Descriptions: []string{"extract archive", "unpack archive"}},
	{Command: "git status", Descriptions: []string{"git status", "show git changes", "repository status"}},
	{Command: "git log --oneline -10", Descriptions: []string{"git history", "show commits", "git log"}},
	{Command: "docker ps", Descriptions: []string{"list containers", "show containers", "running containers"}},
	{Command: "kubectl get pods", Descriptions: []string{"list pods", "show pods", "kubernetes pods"}},
	{Command: "history", Descriptions: []string{"command history", "show history"}},
}

// semanticGroup couples a keyword set and an action-verb set with the group's
// representative command.
type semanticGroup struct {
	Command  string
	Keywords []string
	Actions  []string
}

// Keyword sets stay deliberately tight: the overlap denominator is the group
// vocabulary, so a fully-matched two-word group can clear the threshold while
// a sprawling synonym list never would.
var semanticGroups = []semanticGroup{
	{Command: "ls -la", Keywords: []string{"files", "directory"}, Actions: []string{"list", "show"}},
	{Command: "pwd", Keywords: []string{"directory", "current"}, Actions: []string{"show", "where"}},
	{Command: "mkdir", Keywords: []string{"directory", "new"}, Actions: []string{"create", "make"}},
	{Command: "rm", Keywords: []string{"file", "files"}, Actions: []string{"delete"}},
	{Command: "grep -rn", Keywords: []string{"text", "files"}, Actions: []string{"search"}},
	{Command: "find . -name", Keywords: []string{"files", "name"}, Actions: []string{"search"}},
	{Command: "ps aux", Keywords: []string{"processes", "running"}, Actions: []string{"show", "list"}},
	{Command: "top", Keywords: []string{"system", "cpu"}, Actions: []string{"monitor", "watch"}},
	{Command: "kill", Keywords: []string{"process", "pid"}, Actions: []string{"kill"}},
	{Command: "df -h", Keywords: []string{"disk", "space"}, Actions: []string{"show", "check"}},
	{Command: "free -h", Keywords: []string{"memory", "usage"}, Actions: []string{"show", "check"}},
	{Command: "netstat -tuln", Keywords: []string{"ports", "open"}, Actions: []string{"show", "list"}},
	{Command: "ping", Keywords: []string{"host", "connection"}, Actions: []string{"ping", "test"}},
	{Command: "curl -O", Keywords: []string{"file", "url"}, Actions: []string{"download", "fetch"}},
	{Command: "tar -czvf", Keywords: []string{"archive", "files"}, Actions: []string{"compress", "create"}},
	{Command: "git status", Keywords: []string{"git", "changes"}, Actions: []string{"show", "check"}},
	{Command: "docker ps", Keywords: []string{"containers", "docker"}, Actions: []string{"list", "show"}},
	{Command: "kubectl get pods", Keywords: []string{"pods", "kubernetes"}, Actions: []string{"list", "show"}},
	{Command: "history", Keywords: []string{"history", "commands"}, Actions: []string{"show", "list"}},
}

// phoneticVariant lists short sound-alike spellings per command. The matcher
// compares consonant skeletons, so the variants only need to capture the
// rough shape of how the command is said.
type phoneticVariant struct {
	Command  string
	Variants []string
}

var phoneticVariants = []phoneticVariant{
	{Command: "ls", Variants: []string{"ls", "list", "lst", "els"}},
	{Command: "pwd", Variants: []string{"pwd", "pud", "print working directory"}},
	{Command: "grep -rn", Variants: []string{"grep", "grap", "grip", "gref"}},
	{Command: "ps aux", Variants: []string{"ps", "pees", "processes", "proceses"}},
	{Command: "df -h", Variants: []string{"df", "disk free", "diskfree"}},
	{Command: "free -h", Variants: []string{"free", "fre", "memory"}},
	{Command: "kill", Variants: []string{"kill", "kil", "kell"}},
	{Command: "ping", Variants: []string{"ping", "pin", "peng"}},
	{Command: "curl -O", Variants: []string{"curl", "kurl", "cerl"}},
	{Command: "git status", Variants: []string{"git status", "get status", "git stats"}},
	{Command: "docker ps", Variants: []string{"docker", "doker", "docer"}},
	{Command: "kubectl get pods", Variants: []string{"kubectl", "cubectl", "kubecontrol"}},
	{Command: "history", Variants: []string{"history", "histry", "histori"}},
}

// intentPattern is one ordered regex intent rule. A hit returns the first
// command of the intent with a fixed confidence (constant, not computed).
type intentPattern struct {
	Name       string
	Pattern    string
	Commands   []string
	Confidence float64
}

var intentPatterns = []intentPattern{
	{Name: "list", Pattern: `^(list|show|ls)\b.*\b(files?|director(y|ies)|contents?)`, Commands: []string{"ls -la"}, Confidence: domain.DefaultIntentConfidence},
	{Name: "create", Pattern: `^(create|make|new)\b.*\b(director(y|ies)|file)`, Commands: []string{"mkdir", "touch"}, Confidence: domain.DefaultIntentConfidence},
	{Name: "delete", Pattern: `^(delete|rm)\b.*\b(files?|director(y|ies))`, Commands: []string{"rm", "rmdir"}, Confidence: domain.DefaultIntentConfidence},
	{Name: "search", Pattern: `^(search|grep)\b`, Commands: []string{"grep -rn", "find . -name"}, Confidence: domain.DefaultIntentConfidence},
	{Name: "monitor", Pattern: `^(monitor|watch|top)\b`, Commands: []string{"top", "ps aux"}, Confidence: domain.DefaultIntentConfidence},
	{Name: "network", Pattern: `\b(ports?|network|connections?)\b`, Commands: []string{"netstat -tuln"}, Confidence: domain.DefaultIntentConfidence},
	{Name: "download", Pattern: `^(download|fetch)\b`, Commands: []string{"curl -O"}, Confidence: domain.DefaultIntentConfidence},
	{Name: "compress", Pattern: `^(compress|archive|zip)\b`, Commands: []string{"tar -czvf"}, Confidence: domain.DefaultIntentConfidence},
}
