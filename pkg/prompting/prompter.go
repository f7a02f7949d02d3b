package prompting

import (
	"github.com/promptly-io/promptly/pkg/session"
)

// Prompter is the interface to which types supporting prompting must adhere.
// Implementations are not required to be safe for concurrent usage.
type Prompter interface {
	// Message should print a message to the user, returning an error if this
	// is not possible.
	Message(string) error
	// Prompt should print a prompt to the user, returning the user's response
	// or an error if this is not possible.
	Prompt(string) (string, error)
}

// sessionPrompter adapts a session to the Prompter interface, using prompt
// text classification to decide between masked and echoed capture.
type sessionPrompter struct {
	// session is the underlying session.
	session *session.Session
}

// NewSessionPrompter creates a prompter backed by the specified session.
func NewSessionPrompter(s *session.Session) Prompter {
	return &sessionPrompter{session: s}
}

// Message implements Prompter.Message.
func (p *sessionPrompter) Message(message string) error {
	p.session.WriteMessage(message)
	return nil
}

// Prompt implements Prompter.Prompt.
func (p *sessionPrompter) Prompt(prompt string) (string, error) {
	if determineResponseMode(prompt) == ResponseModeSecret {
		return p.session.AskSecret(&session.Options{Message: prompt, MaskRune: -1})
	}
	return p.session.AskString(&session.Options{Message: prompt})
}
