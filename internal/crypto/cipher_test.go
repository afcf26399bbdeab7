package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func testCipher(t *testing.T, keyByte byte) RecordCipher {
	t.Helper()

	c, err := NewRecordCipher(bytes.Repeat([]byte{keyByte}, 32))
	if err != nil {
		t.Fatalf("NewRecordCipher error: %v", err)
	}
	return c
}

func TestNewRecordCipher_RejectsBadKeyLength(t *testing.T) {
	_, err := NewRecordCipher([]byte("short"))
	if err == nil {
		t.Fatal("expected error for 5-byte key, got nil")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := testCipher(t, 0x2A)

	plaintexts := []string{
		"",
		"p@ssw0rd",
		"пароль с юникодом",
		"with \"quotes\" and 'apostrophes' and ~!@#$%^&*()",
	}

	for _, plaintext := range plaintexts {
		blob, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plaintext, err)
		}

		got, err := c.Decrypt(blob)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != plaintext {
			t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
		}
	}
}

func TestEncrypt_NonceRandomness(t *testing.T) {
	c := testCipher(t, 0x2A)

	b1, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	b2, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if b1 == b2 {
		t.Fatalf("expected different blobs for two encryptions of the same plaintext")
	}
}

func TestDecrypt_WrongKeyFailsWithInvalidCredentials(t *testing.T) {
	cipherA := testCipher(t, 0xAA)
	cipherB := testCipher(t, 0xBB)

	blob, err := cipherA.Encrypt("secret under key A")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	// Wrong key must be detected, never silently produce wrong plaintext.
	_, err = cipherB.Decrypt(blob)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	c := testCipher(t, 0x2A)

	blob, err := c.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	raw[len(raw)-1] ^= 0x01 // flip one bit in the auth tag

	_, err = c.Decrypt(base64.StdEncoding.EncodeToString(raw))
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestDecrypt_MalformedBlob(t *testing.T) {
	c := testCipher(t, 0x2A)

	for _, blob := range []string{"%%% not base64 %%%", base64.StdEncoding.EncodeToString([]byte("tiny"))} {
		_, err := c.Decrypt(blob)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Decrypt(%q): expected ErrInvalidCredentials, got %v", blob, err)
		}
	}
}

func TestUninitialized_FailsBothOperations(t *testing.T) {
	c := Uninitialized()

	if _, err := c.Encrypt("x"); !errors.Is(err, ErrCipherUninitialized) {
		t.Fatalf("Encrypt: expected ErrCipherUninitialized, got %v", err)
	}
	if _, err := c.Decrypt("x"); !errors.Is(err, ErrCipherUninitialized) {
		t.Fatalf("Decrypt: expected ErrCipherUninitialized, got %v", err)
	}
}
