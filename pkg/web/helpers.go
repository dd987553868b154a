package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, map[string]string{"error": message})
}

// ParseObjectID extracts and validates the document ID from the request path.
// A malformed identifier can never match a stored record, so it is reported
// as not found rather than as a client syntax error.
// Returns the ID and a boolean indicating success.
func ParseObjectID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (primitive.ObjectID, bool) {
	pathValueID := r.PathValue("id")
	id, err := primitive.ObjectIDFromHex(pathValueID)
	if err != nil {
		RespondError(w, logger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", pathValueID))
		return primitive.NilObjectID, false
	}
	return id, true
}
