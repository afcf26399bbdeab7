// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is one stored vault record keyed by the (title, username) pair.
//
// ID is a surrogate key assigned by the database on insert; it is monotonic
// and never reused. Title and Username form the record's identity and never
// change after creation. Password holds ciphertext while the record is in the
// store and plaintext after the service layer has decrypted it for a response.
type Credential struct {
	ID        int64     `json:"id,omitempty"`
	Title     string    `json:"title"`
	Username  string    `json:"username"`
	URL       string    `json:"url"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// DefaultURL is stored when a create request carries no URL.
const DefaultURL = "N/A"
