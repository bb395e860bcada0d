package typo

// Correction tables map a misspelled token to its canonical form. The active
// table for a process is the union of the universal table plus the subset for
// the detected platform and shell. Within one active table every key has
// exactly one target, no target is itself a key (no multi-hop chains), and no
// entry maps back to its own source (no 2-cycles).

var universalTypos = map[string]string{
	"gti":      "git",
	"igt":      "git",
	"gt":       "git",
	"gut":      "git",
	"dokcer":   "docker",
	"docekr":   "docker",
	"dcoker":   "docker",
	"dokker":   "docker",
	"kubclt":   "kubectl",
	"kubeclt":  "kubectl",
	"kubectle": "kubectl",
	"kubctl":   "kubectl",
	"pyhton":   "python",
	"pytohn":   "python",
	"pyton":    "python",
	"pythn":    "python",
	"nmp":      "npm",
	"npn":      "npm",
	"yran":     "yarn",
	"yanr":     "yarn",
	"noed":     "node",
	"ndoe":     "node",
	"mkae":     "make",
	"amke":     "make",
	"crago":    "cargo",
	"cagro":    "cargo",
	"vmi":      "vim",
	"ivm":      "vim",
	"emcas":    "emacs",
	"shh":      "ssh",
	"shs":      "ssh",
	"crul":     "curl",
	"culr":     "curl",
	"wgte":     "wget",
	"wegt":     "wget",
	"tra":      "tar",
	"unzpi":    "unzip",
}

var unixTypos = map[string]string{
	"sl":         "ls",
	"l":          "ls",
	"lls":        "ls",
	"lss":        "ls",
	"cd..":       "cd ..",
	"dc":         "cd",
	"pdw":        "pwd",
	"pwdd":       "pwd",
	"grpe":       "grep",
	"gerp":       "grep",
	"cta":        "cat",
	"catt":       "cat",
	"tial":       "tail",
	"taill":      "tail",
	"haed":       "head",
	"mroe":       "more",
	"lesss":      "less",
	"mdkir":      "mkdir",
	"mkidr":      "mkdir",
	"rmidr":      "rmdir",
	"tuoch":      "touch",
	"tocuh":      "touch",
	"chmdo":      "chmod",
	"chomd":      "chmod",
	"chwon":      "chown",
	"pss":        "ps",
	"topp":       "top",
	"kil":        "kill",
	"kilall":     "killall",
	"fnd":        "find",
	"fidn":       "find",
	"duff":       "diff",
	"ehco":       "echo",
	"exho":       "echo",
	"sudp":       "sudo",
	"sduo":       "sudo",
	"suod":       "sudo",
	"systemclt":  "systemctl",
	"sytemctl":   "systemctl",
	"jounralctl": "journalctl",
}

var windowsTypos = map[string]string{
	"sl":         "dir", // same key, platform-local target
	"dri":        "dir",
	"dirr":       "dir",
	"cls1":       "cls",
	"clss":       "cls",
	"coyp":       "copy",
	"cpoy":       "copy",
	"mvoe":       "move",
	"delte":      "del",
	"dell":       "del",
	"tpye":       "type",
	"typ":        "type",
	"tre":        "tree",
	"ipconfgi":   "ipconfig",
	"ipconfg":    "ipconfig",
	"taskils":    "tasklist",
	"tasklsit":   "tasklist",
	"taskkil":    "taskkill",
	"powersehll": "powershell",
	"powershel":  "powershell",
}

// Shell-specific extras layered on top of the platform table.
var fishTypos = map[string]string{
	"fihs":      "fish",
	"fnction":   "function",
	"funcssave": "funcsave",
	"abrr":      "abbr",
}

var zshTypos = map[string]string{
	"zshh":   "zsh",
	"sorce":  "source",
	"souce":  "source",
	"alais":  "alias",
	"aliass": "alias",
	"setpot": "setopt",
}

// Known command binaries per platform family, used by IsKnownCommand in
// addition to the correction targets.
var unixKnownCommands = []string{
	"ls", "cd", "pwd", "cat", "grep", "find", "tail", "head", "less", "more",
	"mkdir", "rmdir", "rm", "cp", "mv", "touch", "chmod", "chown", "ln",
	"ps", "top", "htop", "kill", "killall", "df", "du", "free", "uname",
	"echo", "sed", "awk", "sort", "uniq", "wc", "xargs", "tee", "diff",
	"tar", "gzip", "gunzip", "zip", "unzip", "ssh", "scp", "rsync",
	"curl", "wget", "ping", "netstat", "ifconfig", "ip", "dig", "host",
	"git", "docker", "kubectl", "python", "python3", "node", "npm", "yarn",
	"go", "cargo", "make", "vim", "nano", "emacs", "sudo", "systemctl",
	"journalctl", "crontab", "man", "which", "whoami", "date", "history",
}

var windowsKnownCommands = []string{
	"dir", "cd", "cls", "copy", "move", "del", "type", "tree", "mkdir",
	"rmdir", "ren", "attrib", "findstr", "where", "tasklist", "taskkill",
	"ipconfig", "ping", "netstat", "systeminfo", "sfc", "chkdsk",
	"powershell", "wsl", "git", "docker", "kubectl", "python", "node",
	"npm", "code", "curl", "echo", "set", "path",
}
