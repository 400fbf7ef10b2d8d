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

package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is raised when an email/password pair is unknown.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidKey is raised when an auth key cannot be verified.
	ErrInvalidKey = errors.New("invalid auth key")
)

const issuer = "petfriends-stub"

type user struct {
	id   string
	hash []byte
}

// Authenticator issues and verifies auth keys for a fixed set of users.
type Authenticator struct {
	mu         sync.RWMutex
	users      map[string]user
	signingKey []byte
	now        func() time.Time
}

func New(signingKey []byte) (*Authenticator, error) {
	if len(signingKey) == 0 {
		return nil, fmt.Errorf("%w: empty signing key", ErrInvalidKey)
	}

	a := &Authenticator{
		users:      map[string]user{},
		signingKey: signingKey,
		now:        time.Now,
	}

	return a, nil
}

// AddUser registers a user and returns its generated identifier.
func (a *Authenticator) AddUser(email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrInvalidCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	u := user{
		id:   uuid.NewString(),
		hash: hash,
	}

	a.users[strings.ToLower(email)] = u

	return u.id, nil
}

// IssueKey checks credentials and returns a new key for the user.
func (a *Authenticator) IssueKey(email, password string) (string, error) {
	a.mu.RLock()
	u, ok := a.users[strings.ToLower(strings.TrimSpace(email))]
	a.mu.RUnlock()

	if !ok {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(u.hash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	// Keys never expire, the remote service has no notion of key lifetime.
	claims := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  u.id,
		IssuedAt: jwt.NewNumericDate(a.now()),
		ID:       uuid.NewString(),
	}

	key, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing key: %w", err)
	}

	return key, nil
}

// Verify returns the user identifier the key was issued to.
func (a *Authenticator) Verify(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(key, claims, func(_ *jwt.Token) (interface{}, error) {
		return a.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(issuer),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidKey
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, u := range a.users {
		if u.id == claims.Subject {
			return u.id, nil
		}
	}

	return "", ErrInvalidKey
}
