package events

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// maxPushBody caps the request body read from a push delivery.
const maxPushBody = 1 << 20

// pushEnvelope is the body of a Pub/Sub push delivery.
type pushEnvelope struct {
	Message struct {
		Data       []byte            `json:"data"`
		ID         string            `json:"messageId"`
		Attributes map[string]string `json:"attributes"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler accepts change notifications over HTTP. It understands Eventarc
// binary CloudEvents (Ce-Subject / Ce-Document headers), Pub/Sub push envelopes and
// a bare {"document": "..."} body. It answers 204 for every well-formed POST so the
// sender never retries.
func PushHandler(handler ChangeHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()
		logger := zerolog.Ctx(ctx).With().Str("component", "PushHandler").Logger()
		ctx = logger.WithContext(ctx)

		headers := map[string]string{
			"ce-document": r.Header.Get("Ce-Document"),
			"ce-subject":  r.Header.Get("Ce-Subject"),
		}
		if headers["ce-document"] != "" || headers["ce-subject"] != "" {
			logger.Debug().Str("ce_id", r.Header.Get("Ce-Id")).Msg("cloud event received")
			handleMessage(ctx, handler, headers, nil)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxPushBody))
		if err != nil {
			logger.Warn().Err(err).Msg("failed to read push body")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var envelope pushEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && (envelope.Message.ID != "" || len(envelope.Message.Data) > 0 || len(envelope.Message.Attributes) > 0) {
			ctx = logger.With().Str("message_id", envelope.Message.ID).Logger().WithContext(ctx)
			handleMessage(ctx, handler, envelope.Message.Attributes, envelope.Message.Data)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		handleMessage(ctx, handler, nil, body)
		w.WriteHeader(http.StatusNoContent)
	})
}
