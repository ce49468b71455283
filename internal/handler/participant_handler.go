/*
Package handler provides HTTP handler functions for the chat API.

This file handles participant registration and listing.
*/
package handler

import (
	"net/http"

	"salachat/internal/app/participant"
	"salachat/internal/pkg/req"
	"salachat/internal/pkg/resp"
)

// HandleRegisterParticipant processes POST /participants.
// 201 on creation, 422 on an invalid name, 409 when the name is taken.
func HandleRegisterParticipant(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input participant.RegisterInput

		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		p, customErr := deps.Participants.Register(r.Context(), input)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondCreated(w, r, p)
	}
}

// HandleListParticipants processes GET /participants.
// Responds 200 with the array of all participants.
func HandleListParticipants(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participants, customErr := deps.Participants.List(r.Context())
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondOK(w, r, participants)
	}
}
