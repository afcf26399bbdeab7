package models

// PasswordEntry is the request body for creating a vault record.
//
// Password may be empty when Generate is true: the service then replaces it
// with a freshly generated password before encryption. The response echoes
// the entry back with the plaintext password filled in, so the caller sees
// the generated value exactly once.
type PasswordEntry struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	URL      string `json:"url,omitempty"`
	Password string `json:"password,omitempty"`
	Generate bool   `json:"generate,omitempty"`
}

// UpdateEntry is the request body for updating an existing vault record.
//
// Title and Username identify the record and are never modified. URL and
// Password are partial-update fields: nil means "do not touch". When
// Generate is true a fresh password is generated server-side, overriding
// any Password value the caller supplied.
type UpdateEntry struct {
	Title    string  `json:"title"`
	Username string  `json:"username"`
	URL      *string `json:"url,omitempty"`
	Password *string `json:"password,omitempty"`
	Generate bool    `json:"generate,omitempty"`
}
