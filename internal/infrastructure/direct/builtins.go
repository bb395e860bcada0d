package direct

import "github.com/doeshing/nlsh-go/internal/domain"

// builtinEntries is the static phrase registry loaded once at startup.
// Order matters: among equal-priority matches the first-registered wins.
var builtinEntries = []domain.CommandEntry{
	// files
	{Phrase: "list files", Command: "ls", Explanation: "List files in the current directory", Confidence: 0.98, Category: domain.CategoryFiles},
	{Phrase: "list all files", Command: "ls -la", Explanation: "List all files including hidden ones, with details", Confidence: 0.97, Category: domain.CategoryFiles},
	{Phrase: "show hidden files", Command: "ls -la", Explanation: "List all files including hidden ones", Confidence: 0.95, Category: domain.CategoryFiles},
	{Phrase: "current directory", Command: "pwd", Explanation: "Print the current working directory", Confidence: 0.98, Category: domain.CategoryFiles},
	{Phrase: "where am i", Command: "pwd", Explanation: "Print the current working directory", Confidence: 0.95, Category: domain.CategoryFiles},
	{Phrase: "make directory", Command: "mkdir", Explanation: "Create a new directory", Confidence: 0.9, Category: domain.CategoryFiles},
	{Phrase: "create folder", Command: "mkdir", Explanation: "Create a new directory", Confidence: 0.9, Category: domain.CategoryFiles},
	{Phrase: "copy file", Command: "cp", Explanation: "Copy a file", Confidence: 0.85, Category: domain.CategoryFiles},
	{Phrase: "move file", Command: "mv", Explanation: "Move or rename a file", Confidence: 0.85, Category: domain.CategoryFiles},
	{Phrase: "delete file", Command: "rm", Explanation: "Remove a file", Confidence: 0.85, Category: domain.CategoryFiles},
	{Phrase: "file sizes", Command: "du -sh *", Explanation: "Show sizes of files and directories", Confidence: 0.9, Category: domain.CategoryFiles},
	{Phrase: "disk usage", Command: "df -h", Explanation: "Show disk usage per filesystem", Confidence: 0.95, Category: domain.CategoryFiles},
	{Phrase: "show file content", Command: "cat", Explanation: "Print a file to stdout", Confidence: 0.85, Category: domain.CategoryFiles},
	{Phrase: "follow log", Command: "tail -f", Explanation: "Follow a file as it grows", Confidence: 0.9, Category: domain.CategoryFiles},

	// search
	{Phrase: "find file", Command: "find . -name", Explanation: "Find files by name under the current directory", Confidence: 0.88, Category: domain.CategorySearch},
	{Phrase: "search in files", Command: "grep -rn", Explanation: "Search file contents recursively with line numbers", Confidence: 0.9, Category: domain.CategorySearch},
	{Phrase: "search text", Command: "grep", Explanation: "Search text in input or files", Confidence: 0.85, Category: domain.CategorySearch},
	{Phrase: "count lines", Command: "wc -l", Explanation: "Count lines of input or a file", Confidence: 0.92, Category: domain.CategorySearch},

	// system
	{Phrase: "show processes", Command: "ps aux", Explanation: "List running processes", Confidence: 0.95, Category: domain.CategorySystem},
	{Phrase: "running processes", Command: "ps aux", Explanation: "List running processes", Confidence: 0.93, Category: domain.CategorySystem},
	{Phrase: "monitor system", Command: "top", Explanation: "Interactive process and resource monitor", Confidence: 0.92, Category: domain.CategorySystem},
	{Phrase: "memory usage", Command: "free -h", Explanation: "Show memory usage", Confidence: 0.95, Category: domain.CategorySystem},
	{Phrase: "kill process", Command: "kill", Explanation: "Send a signal to a process", Confidence: 0.85, Category: domain.CategorySystem},
	{Phrase: "system info", Command: "uname -a", Explanation: "Print kernel and system information", Confidence: 0.95, Category: domain.CategorySystem},
	{Phrase: "current user", Command: "whoami", Explanation: "Print the effective user name", Confidence: 0.97, Category: domain.CategorySystem},
	{Phrase: "show date", Command: "date", Explanation: "Print the current date and time", Confidence: 0.97, Category: domain.CategorySystem},
	{Phrase: "environment variables", Command: "env", Explanation: "Print environment variables", Confidence: 0.95, Category: domain.CategorySystem},
	{Phrase: "command history", Command: "history", Explanation: "Show shell command history", Confidence: 0.95, Category: domain.CategorySystem},

	// network
	{Phrase: "my ip", Command: "ip addr show", Explanation: "Show network interfaces and addresses", Confidence: 0.9, Category: domain.CategoryNetwork},
	{Phrase: "open ports", Command: "netstat -tuln", Explanation: "List listening ports", Confidence: 0.9, Category: domain.CategoryNetwork},
	{Phrase: "ping host", Command: "ping", Explanation: "Send ICMP echo requests to a host", Confidence: 0.85, Category: domain.CategoryNetwork},
	{Phrase: "download file", Command: "curl -O", Explanation: "Download a file preserving its name", Confidence: 0.85, Category: domain.CategoryNetwork},
	{Phrase: "test connection", Command: "ping -c 4", Explanation: "Ping a host four times", Confidence: 0.85, Category: domain.CategoryNetwork},

	// git
	{Phrase: "git status", Command: "git status", Explanation: "Show the working tree status", Confidence: 0.99, Category: domain.CategoryGit},
	{Phrase: "git log", Command: "git log --oneline -10", Explanation: "Show the last ten commits, one per line", Confidence: 0.95, Category: domain.CategoryGit},
	{Phrase: "commit changes", Command: "git commit", Explanation: "Record staged changes", Confidence: 0.9, Category: domain.CategoryGit},
	{Phrase: "push changes", Command: "git push", Explanation: "Push commits to the remote", Confidence: 0.92, Category: domain.CategoryGit},
	{Phrase: "pull changes", Command: "git pull", Explanation: "Fetch and merge from the remote", Confidence: 0.92, Category: domain.CategoryGit},
	{Phrase: "list branches", Command: "git branch -a", Explanation: "List local and remote branches", Confidence: 0.93, Category: domain.CategoryGit},
	{Phrase: "stage all", Command: "git add .", Explanation: "Stage every change in the working tree", Confidence: 0.9, Category: domain.CategoryGit},
	{Phrase: "undo last commit", Command: "git reset --soft HEAD~1", Explanation: "Undo the last commit keeping changes staged", Confidence: 0.88, Category: domain.CategoryGit},

	// containers
	{Phrase: "list containers", Command: "docker ps", Explanation: "List running containers", Confidence: 0.95, Category: domain.CategoryContainers},
	{Phrase: "all containers", Command: "docker ps -a", Explanation: "List all containers including stopped ones", Confidence: 0.93, Category: domain.CategoryContainers},
	{Phrase: "docker images", Command: "docker images", Explanation: "List local docker images", Confidence: 0.95, Category: domain.CategoryContainers},
	{Phrase: "container logs", Command: "docker logs", Explanation: "Show logs for a container", Confidence: 0.88, Category: domain.CategoryContainers},
	{Phrase: "list pods", Command: "kubectl get pods", Explanation: "List pods in the current namespace", Confidence: 0.95, Category: domain.CategoryContainers},
	{Phrase: "kubernetes nodes", Command: "kubectl get nodes", Explanation: "List cluster nodes", Confidence: 0.93, Category: domain.CategoryContainers},

	// packages
	{Phrase: "install package", Command: "npm install", Explanation: "Install node package dependencies", Confidence: 0.8, Category: domain.CategoryPackages},
	{Phrase: "update packages", Command: "sudo apt update && sudo apt upgrade", Explanation: "Refresh package lists and upgrade", Confidence: 0.82, Category: domain.CategoryPackages},
	{Phrase: "python packages", Command: "pip list", Explanation: "List installed python packages", Confidence: 0.9, Category: domain.CategoryPackages},
}

// baseCommandEntries matches inputs of the form "<base> <args>" where the base
// token is a known command. These rank below exact matches and always report a
// lower confidence because the arguments are forwarded unverified.
var baseCommandEntries = map[string]domain.CommandEntry{
	"git":     {Phrase: "git", Command: "git", Explanation: "Run git with the given arguments", Confidence: 0.85, Category: domain.CategoryGit},
	"docker":  {Phrase: "docker", Command: "docker", Explanation: "Run docker with the given arguments", Confidence: 0.85, Category: domain.CategoryContainers},
	"kubectl": {Phrase: "kubectl", Command: "kubectl", Explanation: "Run kubectl with the given arguments", Confidence: 0.85, Category: domain.CategoryContainers},
	"npm":     {Phrase: "npm", Command: "npm", Explanation: "Run npm with the given arguments", Confidence: 0.8, Category: domain.CategoryPackages},
	"ls":      {Phrase: "ls", Command: "ls", Explanation: "List directory contents with the given flags", Confidence: 0.85, Category: domain.CategoryFiles},
	"grep":    {Phrase: "grep", Command: "grep", Explanation: "Run grep with the given arguments", Confidence: 0.8, Category: domain.CategorySearch},
	"find":    {Phrase: "find", Command: "find", Explanation: "Run find with the given arguments", Confidence: 0.8, Category: domain.CategorySearch},
	"curl":    {Phrase: "curl", Command: "curl", Explanation: "Run curl with the given arguments", Confidence: 0.8, Category: domain.CategoryNetwork},
}
