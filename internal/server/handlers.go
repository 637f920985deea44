package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/techstore/chatbot/internal/metrics"
)

const apologyText = "I apologize, but I'm having trouble processing your request. " +
	"Please try again or contact our support team."

type webhookRequest struct {
	QueryResult struct {
		QueryText  string            `json:"queryText"`
		Parameters map[string]string `json:"parameters"`
	} `json:"queryResult"`
}

type webhookResponse struct {
	FulfillmentText     string               `json:"fulfillmentText"`
	FulfillmentMessages []fulfillmentMessage `json:"fulfillmentMessages"`
	Payload             *webhookPayload      `json:"payload,omitempty"`
}

type fulfillmentMessage struct {
	Text struct {
		Text []string `json:"text"`
	} `json:"text"`
}

type webhookPayload struct {
	QuickReplies []string `json:"quickReplies,omitempty"`
	Error        string   `json:"error,omitempty"`
}

func newWebhookResponse(text string, payload *webhookPayload) webhookResponse {
	var msg fulfillmentMessage
	msg.Text.Text = []string{text}
	return webhookResponse{
		FulfillmentText:     text,
		FulfillmentMessages: []fulfillmentMessage{msg},
		Payload:             payload,
	}
}

// handleWebhook is the error boundary for the whole reply pipeline: any
// responder error or panic is logged and converted to a fixed apology
// payload. The endpoint answers 200 even then; failure is communicated only
// in the body, which is the contract the legacy clients rely on.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	metrics.WebhookRequestsTotal.Inc()

	// Malformed bodies degrade to empty values so the classifier falls
	// through to the fallback intent instead of the request failing.
	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("webhook body did not parse, treating as empty", zap.Error(err))
	}

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("panic during response generation", zap.Any("panic", rec))
			metrics.WebhookFailuresTotal.Inc()
			respondJSON(w, http.StatusOK, newWebhookResponse(apologyText, &webhookPayload{Error: "internal"}))
		}
	}()

	reply, err := s.responder.Respond(r.Context(), req.QueryResult.QueryText, req.QueryResult.Parameters)
	if err != nil {
		s.logger.Error("response generation failed",
			zap.String("query", req.QueryResult.QueryText),
			zap.Error(err),
		)
		metrics.WebhookFailuresTotal.Inc()
		respondJSON(w, http.StatusOK, newWebhookResponse(apologyText, &webhookPayload{Error: "internal"}))
		return
	}

	s.logger.Debug("sending reply", zap.String("text", firstLine(reply.Text)))
	respondJSON(w, http.StatusOK, newWebhookResponse(reply.Text, &webhookPayload{QuickReplies: reply.QuickReplies}))
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, ok := s.catalog.Order(id)
	if !ok {
		metrics.CatalogMissesTotal.WithLabelValues("orders").Inc()
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "Order not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, ok := s.catalog.Product(id)
	if !ok {
		metrics.CatalogMissesTotal.WithLabelValues("products").Inc()
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"product": product,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "techstore-chatbot",
	})
}
