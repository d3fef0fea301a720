// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-item-sync/internal/utils"
)

// hideWrongMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with a method it does not serve answers 404, the
// same as an unknown path, instead of chi's 405.
//
// Routes are matched by exact pattern, so every sync route must be
// registered flat on router (no Route or Mount sub-routers).
func hideWrongMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
