// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed]. Chi answers 405 when a path matches but the
// method does not; this handler answers 404 instead, so probing an endpoint
// with the wrong method reveals nothing about which routes exist.
//
// The lookup compares each registered route's pattern against the raw
// request path; parameterised segments are not expanded during the check.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// registered method, let the normal pipeline handle it
		router.ServeHTTP(w, r)
	}
}
