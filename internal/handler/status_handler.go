/*
Package handler provides HTTP handler functions for the chat API.

This file handles the polling heartbeat that renews a participant's presence
lease.
*/
package handler

import (
	"net/http"

	"salachat/internal/pkg/resp"
)

// HandleStatus processes POST /status.
// 200 on a renewed lease, 404 when the caller is not a registered participant.
// An empty user header cannot match any record and is a 404 like any other
// unknown name.
func HandleStatus(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.Header.Get(userHeader)

		if customErr := deps.Participants.Touch(r.Context(), name); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondOK(w, r, map[string]string{"status": "ok"})
	}
}
