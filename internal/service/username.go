// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/civibridge/mattersync/internal/adapter"
	"github.com/civibridge/mattersync/models"
)

// maxUsernameAttempts bounds the suffix disambiguation loop so a pathological
// directory cannot spin it forever.
const maxUsernameAttempts = 100

// slugify lowercases s and folds every run of characters outside [a-z0-9]
// into a single hyphen.
func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// usernameBase derives the preferred username of a contact: first and last
// name joined, falling back to the display name, then to a synthetic name
// from the contact id.
func usernameBase(contact models.Contact) string {
	base := slugify(strings.TrimSpace(contact.FirstName + " " + contact.LastName))
	if base == "" {
		base = slugify(contact.DisplayName)
	}
	if base == "" {
		base = fmt.Sprintf("contact-%d", contact.ID)
	}
	return base
}

// uniqueUsername probes the chat directory for base, then base-1, base-2 and
// so on until a free name is found. An indeterminate probe aborts the search
// rather than risking a duplicate.
func uniqueUsername(ctx context.Context, chat adapter.ChatDirectory, base string) (string, error) {
	for i := 0; i < maxUsernameAttempts; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}

		_, err := chat.UserByUsername(ctx, candidate)
		if errors.Is(err, adapter.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("error probing username %q: %w", candidate, err)
		}
	}

	return "", fmt.Errorf("no free username found for %q after %d attempts", base, maxUsernameAttempts)
}
