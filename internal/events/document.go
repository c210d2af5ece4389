// Package events turns document-change notifications into tenant recomputations.
// Notifications arrive either from a Pub/Sub subscription or as HTTP pushes
// (Eventarc CloudEvents or Pub/Sub push envelopes).
package events

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/castlemilk/bankroll/internal/service"
)

// ChangeHandler reacts to a changed document.
type ChangeHandler interface {
	HandleChange(ctx context.Context, path string) service.Outcome
}

// attributeKeys are checked in order for the changed document's path.
var attributeKeys = []string{"document", "ce-document", "subject", "ce-subject"}

// changePayload is the JSON body published for a change.
type changePayload struct {
	Document string `json:"document"`
	Name     string `json:"name"`
	Subject  string `json:"subject"`
}

// DocumentPath finds the changed document's path in message attributes or a JSON
// payload. Eventarc subjects carry a "documents/" prefix which is kept; callers
// resolve it with service.ParseDocumentPath.
func DocumentPath(attributes map[string]string, data []byte) (string, bool) {
	for _, key := range attributeKeys {
		if v := strings.TrimSpace(attributes[key]); v != "" {
			return v, true
		}
	}

	if len(data) == 0 {
		return "", false
	}
	var payload changePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", false
	}
	for _, v := range []string{payload.Document, payload.Name, payload.Subject} {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}
