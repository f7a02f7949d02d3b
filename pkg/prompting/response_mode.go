package prompting

import (
	"strings"
)

// ResponseMode encodes how a prompt response should be displayed.
type ResponseMode uint8

const (
	// ResponseModeEcho indicates that a prompt response should be echoed.
	ResponseModeEcho ResponseMode = iota
	// ResponseModeMasked indicates that a prompt response should be masked.
	ResponseModeMasked
	// ResponseModeSecret indicates that a prompt response shouldn't be echoed.
	ResponseModeSecret
)

// secretPromptMarkers are the prompt substrings indicating that a response is
// sensitive and shouldn't be echoed.
var secretPromptMarkers = []string{
	"password",
	"passphrase",
	"secret",
	"token",
}

// determineResponseMode attempts to determine the appropriate response mode
// for a prompt based on the prompt text.
func determineResponseMode(prompt string) ResponseMode {
	// Check if this is a secret prompt.
	lowered := strings.ToLower(prompt)
	for _, marker := range secretPromptMarkers {
		if strings.Contains(lowered, marker) {
			return ResponseModeSecret
		}
	}

	// Otherwise assume the response can be echoed.
	return ResponseModeEcho
}
