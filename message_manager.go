package main

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	resource "github.com/quasilyte/ebitengine-resource"
)

var placeholderRegex = regexp.MustCompile(`{(\w+)}`)

// MessageTemplate は messages.json の1エントリです。
type MessageTemplate struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MessageManager handles loading and retrieving formatted messages.
type MessageManager struct {
	messages map[string]string
	loader   *resource.Loader
}

// NewMessageManager creates and initializes a new MessageManager.
func NewMessageManager(filePath string, loader *resource.Loader) (*MessageManager, error) {
	mm := &MessageManager{
		messages: make(map[string]string),
		loader:   loader,
	}
	err := mm.LoadMessages(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return mm, nil
}

// LoadMessages loads message templates from a JSON file using the resource loader.
func (mm *MessageManager) LoadMessages(filePath string) error {
	res := mm.loader.LoadRaw(RawMessagesJSON)
	if res.Data == nil {
		return fmt.Errorf("could not load message resource %s: data is nil", filePath)
	}

	var templates []MessageTemplate
	err := json.Unmarshal(res.Data, &templates)
	if err != nil {
		return fmt.Errorf("could not parse message data from %s: %w", filePath, err)
	}

	for _, t := range templates {
		mm.messages[t.ID] = t.Text
	}
	log.Printf("Loaded %d messages from %s", len(mm.messages), filePath)
	return nil
}

// GetRawMessage retrieves a raw message template by its ID.
func (mm *MessageManager) GetRawMessage(id string) (string, bool) {
	msg, found := mm.messages[id]
	return msg, found
}

// FormatMessage formats a message template, replacing {key} placeholders
// with the corresponding params values.
func (mm *MessageManager) FormatMessage(id string, params map[string]interface{}) string {
	template, ok := mm.messages[id]
	if !ok {
		log.Printf("Warning: Message with ID '%s' not found.", id)
		return id // Return ID if not found, so it's noticeable
	}

	formattedMessage := placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.Trim(match, "{}")
		if val, pOk := params[key]; pOk {
			return fmt.Sprintf("%v", val)
		}
		log.Printf("Warning: Placeholder '%s' not found in params for message ID '%s'", match, id)
		return match
	})

	return formattedMessage
}
