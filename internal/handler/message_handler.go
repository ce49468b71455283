/*
Package handler provides HTTP handler functions for the chat API.

This file handles posting, listing, and deleting messages. The sender identity
comes from the user header on every route; there is no further authentication.
*/
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"salachat/internal/app/message"
	"salachat/internal/pkg/req"
	"salachat/internal/pkg/resp"
)

// userHeader names the request header carrying the caller's participant name.
const userHeader = "user"

// postMessageBody is the client-supplied part of a message; the sender is
// taken from the user header, never from the body.
type postMessageBody struct {
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// HandlePostMessage processes POST /messages.
// 201 on success, 422 when any field (including the user header) is invalid.
func HandlePostMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body postMessageBody

		if customErr := req.BindJSON(r, &body); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input := message.PostInput{
			From: r.Header.Get(userHeader),
			To:   body.To,
			Text: body.Text,
			Type: body.Type,
		}

		m, customErr := deps.Messages.Append(r.Context(), input)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondCreated(w, r, m)
	}
}

// HandleListMessages processes GET /messages.
// Responds 200 with the messages visible to the caller, oldest first. The
// optional limit query parameter keeps only the most recent entries; a value
// that is absent, unparseable, or not positive means no limit.
func HandleListMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.Header.Get(userHeader)

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil {
				limit = parsed
			}
		}

		messages, customErr := deps.Messages.ListFor(r.Context(), user, limit)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondOK(w, r, messages)
	}
}

// HandleDeleteMessage processes DELETE /messages/{id}.
// 200 on success, 400 on a malformed id, 404 when the message does not exist,
// 401 when the caller is not the sender.
func HandleDeleteMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		requester := r.Header.Get(userHeader)

		if customErr := deps.Messages.Delete(r.Context(), id, requester); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondOK(w, r, map[string]string{"status": "deleted"})
	}
}
