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

package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is raised when a pet does not exist.
	ErrNotFound = errors.New("pet not found")

	// ErrForbidden is raised when a pet exists but belongs to someone else.
	ErrForbidden = errors.New("pet belongs to another user")
)

// Pet is a pet record as the service stores and returns it.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        string `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	UserID     string `json:"user_id"`
	CreatedAt  string `json:"created_at"`

	created time.Time
}

// Fields are the user mutable parts of a pet.
type Fields struct {
	Name       string
	AnimalType string
	Age        string
}

// Memory is a process local pet store.
type Memory struct {
	mu   sync.RWMutex
	byID map[string]Pet

	// now is replaceable for tests.
	now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		byID: map[string]Pet{},
		now:  time.Now,
	}
}

func (m *Memory) Create(_ context.Context, ownerID string, fields Fields, photo string) (Pet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	p := Pet{
		ID:         uuid.NewString(),
		Name:       fields.Name,
		AnimalType: fields.AnimalType,
		Age:        fields.Age,
		PetPhoto:   photo,
		UserID:     ownerID,
		CreatedAt:  strconv.FormatFloat(float64(now.UnixNano())/1e9, 'f', 6, 64),
		created:    now,
	}

	m.byID[p.ID] = p

	return p, nil
}

// owned looks up a pet and checks ownership, the caller must hold the lock.
func (m *Memory) owned(ownerID, id string) (Pet, error) {
	p, ok := m.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}

	if p.UserID != ownerID {
		return Pet{}, ErrForbidden
	}

	return p, nil
}

func (m *Memory) Update(_ context.Context, ownerID, id string, fields Fields) (Pet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.owned(ownerID, id)
	if err != nil {
		return Pet{}, err
	}

	p.Name = fields.Name
	p.AnimalType = fields.AnimalType
	p.Age = fields.Age

	m.byID[id] = p

	return p, nil
}

func (m *Memory) SetPhoto(_ context.Context, ownerID, id, photo string) (Pet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.owned(ownerID, id)
	if err != nil {
		return Pet{}, err
	}

	p.PetPhoto = photo

	m.byID[id] = p

	return p, nil
}

// Delete removes an owned pet.  Deleting a pet that does not exist is a no-op.
func (m *Memory) Delete(_ context.Context, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.owned(ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}

		return err
	}

	delete(m.byID, id)

	return nil
}

// List returns pets newest first, restricted to ownerID when it is not empty.
func (m *Memory) List(_ context.Context, ownerID string) []Pet {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Pet, 0, len(m.byID))

	for _, p := range m.byID {
		if ownerID != "" && p.UserID != ownerID {
			continue
		}

		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].created.Equal(out[j].created) {
			return out[i].ID < out[j].ID
		}

		return out[i].created.After(out[j].created)
	})

	return out
}
