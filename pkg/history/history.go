package history

// Prompt records the last successful response for a prompt key. Prompt values
// are mutated in place on re-store, so references handed out by Lookup and All
// remain valid and observe later updates.
type Prompt struct {
	// ID is the prompt's identifier. It defaults to the prompt message when
	// not explicitly supplied.
	ID string
	// Message is the prompt text shown to the user.
	Message string
	// Response is the last successfully converted response for the prompt. Its
	// dynamic type depends on the target shape of the acquisition that stored
	// it.
	Response interface{}
}

// History is an insertion-ordered mapping from prompt key to the last stored
// prompt for that key. It is not safe for concurrent usage, being owned by
// the single-threaded foreground prompting loop.
type History struct {
	// order tracks keys in insertion order.
	order []string
	// prompts maps prompt keys to their records.
	prompts map[string]*Prompt
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		prompts: make(map[string]*Prompt),
	}
}

// Lookup returns the stored prompt for the specified key, if any. A miss is a
// normal outcome, not a failure.
func (h *History) Lookup(key string) (*Prompt, bool) {
	prompt, ok := h.prompts[key]
	return prompt, ok
}

// Store inserts or updates the prompt for the specified key. On first insert,
// the key takes its place at the end of the enumeration order. On update, the
// existing record is overwritten in place (never replaced), so external
// references to it remain valid. If id is empty, it defaults to the message.
func (h *History) Store(key, message string, response interface{}, id string) *Prompt {
	// Default the identifier.
	if id == "" {
		id = message
	}

	// Update in place if the key is already present.
	if prompt, ok := h.prompts[key]; ok {
		prompt.ID = id
		prompt.Message = message
		prompt.Response = response
		return prompt
	}

	// Otherwise insert a new record and record its position.
	prompt := &Prompt{
		ID:       id,
		Message:  message,
		Response: response,
	}
	h.prompts[key] = prompt
	h.order = append(h.order, key)

	// Done.
	return prompt
}

// All returns the stored prompts in insertion order.
func (h *History) All() []*Prompt {
	result := make([]*Prompt, 0, len(h.order))
	for _, key := range h.order {
		result = append(result, h.prompts[key])
	}
	return result
}

// Len returns the number of stored prompts.
func (h *History) Len() int {
	return len(h.order)
}

// Clear removes all stored prompts.
func (h *History) Clear() {
	h.order = nil
	h.prompts = make(map[string]*Prompt)
}
