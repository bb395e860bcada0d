package ai

import (
	"fmt"
	"strings"

	"github.com/doeshing/nlsh-go/internal/domain"
)

// promptMessage is one turn of the collaborator conversation.
type promptMessage struct {
	Role    string
	Content string
}

const systemPromptTemplate = `You translate natural-language requests into a single shell command.

Target platform: %s (%s, shell: %s, arch: %s).

Respond with exactly one JSON object, no prose around it:
{"command": "<the command>", "explanation": "<one short sentence>", "confidence": <0.0-1.0>, "safe": <true|false>}

Rules:
- Emit one command line appropriate for the target shell.
- Set "safe" to false for anything destructive or privileged.
- If no sensible command exists, set "command" to "" and confidence to 0.`

func buildMessages(phrase string, platform domain.PlatformContext) []promptMessage {
	system := fmt.Sprintf(systemPromptTemplate,
		platform.Platform, platform.OSName, platform.Shell, platform.Architecture)
	return []promptMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: strings.TrimSpace(phrase)},
	}
}
