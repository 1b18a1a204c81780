// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

// command runs one chat line for the authenticated caller.
//
// Every line that decodes gets a 200 with the bot's reply, including lines
// the bot rejects: rejections are chat replies, not transport failures.
func (h *Handler) command(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("identity is missing in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CommandRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("error decoding command request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	reply := h.bot.Handle(ctx, identity, req.Text)

	if _, err := utils.WriteJSON(w, models.CommandResponse{Reply: reply}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing command response")
	}
}
