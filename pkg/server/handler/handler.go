/*
Copyright 2026 the QAP-PetFriends Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-logr/logr"

	"github.com/Skifchik666/QAP-PetFriends/pkg/constants"
	"github.com/Skifchik666/QAP-PetFriends/pkg/server/auth"
	"github.com/Skifchik666/QAP-PetFriends/pkg/server/store"
)

// maxFormMemory is how much of a multipart body is held in memory.
const maxFormMemory = 32 << 20

const forbiddenPage = `<!doctype html>
<html lang=en>
<title>403 Forbidden</title>
<h1>Forbidden</h1>
<p>Please provide a valid email and password, or a valid authorisation key.</p>
`

type Handler struct {
	// auth issues and checks keys.
	auth *auth.Authenticator

	// pets holds every pet of every user.
	pets *store.Memory
}

func New(authenticator *auth.Authenticator, pets *store.Memory) *Handler {
	return &Handler{
		auth: authenticator,
		pets: pets,
	}
}

// Register mounts the PetFriends API on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/key", h.GetAPIKey)
	r.Get("/api/pets", h.ListPets)
	r.Post("/api/pets", h.CreatePet)
	r.Post("/api/create_pet_simple", h.CreatePetSimple)
	r.Post("/api/pets/set_photo/{pet_id}", h.SetPhoto)
	r.Put("/api/pets/{pet_id}", h.UpdatePet)
	r.Delete("/api/pets/{pet_id}", h.DeletePet)
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logr.FromContextOrDiscard(r.Context()).Error(err, "failed to write response")
	}
}

func writeForbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(forbiddenPage))
}

func writeError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

// handleStoreError maps store errors onto responses.
func handleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	log := logr.FromContextOrDiscard(r.Context())

	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrForbidden):
		log.V(1).Info("rejecting pet access", "reason", err.Error())
		writeError(w, http.StatusBadRequest)
	default:
		log.Error(err, "store failure")
		writeError(w, http.StatusInternalServerError)
	}
}

// authenticate resolves the caller from the auth_key header, writing a 403 on
// failure.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, err := h.auth.Verify(r.Header.Get(constants.AuthKeyHeader))
	if err != nil {
		logr.FromContextOrDiscard(r.Context()).V(1).Info("rejecting auth key", "reason", err.Error())
		writeForbidden(w)

		return "", false
	}

	return userID, true
}

func fields(r *http.Request) store.Fields {
	return store.Fields{
		Name:       r.FormValue("name"),
		AnimalType: r.FormValue("animal_type"),
		Age:        r.FormValue("age"),
	}
}

func (h *Handler) GetAPIKey(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)

	key, err := h.auth.IssueKey(r.Header.Get(constants.EmailHeader), r.Header.Get(constants.PasswordHeader))
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			logr.FromContextOrDiscard(r.Context()).Error(err, "failed to issue key")
			writeError(w, http.StatusInternalServerError)

			return
		}

		writeForbidden(w)

		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"key": key})
}

func (h *Handler) ListPets(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)

	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	var owner string

	switch filter := r.URL.Query().Get("filter"); filter {
	case "":
	case constants.FilterMyPets:
		owner = userID
	default:
		writeError(w, http.StatusBadRequest)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string][]store.Pet{"pets": h.pets.List(r.Context(), owner)})
}

func (h *Handler) CreatePet(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		writeError(w, http.StatusBadRequest)
		return
	}

	data, err := readPhoto(r)
	if err != nil {
		if errors.Is(err, ErrNoPhoto) || errors.Is(err, ErrPhotoTooLarge) {
			writeError(w, http.StatusBadRequest)
			return
		}

		logr.FromContextOrDiscard(r.Context()).Error(err, "failed to read photo")
		writeError(w, http.StatusInternalServerError)

		return
	}

	// Content that is not an image is accepted but dropped.
	photo, _ := encodePhoto(data)

	pet, err := h.pets.Create(r.Context(), userID, fields(r), photo)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, pet)
}

func (h *Handler) CreatePetSimple(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	pet, err := h.pets.Create(r.Context(), userID, fields(r), "")
	if err != nil {
		handleStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, pet)
}

func (h *Handler) SetPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	data, err := readPhoto(r)
	if err != nil {
		writeError(w, http.StatusBadRequest)
		return
	}

	photo, ok := encodePhoto(data)
	if !ok {
		writeError(w, http.StatusBadRequest)
		return
	}

	pet, err := h.pets.SetPhoto(r.Context(), userID, chi.URLParam(r, "pet_id"), photo)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, pet)
}

func (h *Handler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	pet, err := h.pets.Update(r.Context(), userID, chi.URLParam(r, "pet_id"), fields(r))
	if err != nil {
		handleStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, pet)
}

// DeletePet responds with an empty 200 whether or not the pet existed.
func (h *Handler) DeletePet(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	if err := h.pets.Delete(r.Context(), userID, chi.URLParam(r, "pet_id")); err != nil {
		handleStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
