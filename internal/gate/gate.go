// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate implements the interactive master-password gate that guards
// vault startup. On first run it walks the operator through setup; on every
// later run it verifies the entered password against the stored hash before
// any cipher is built.
package gate

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/MKhiriev/keypass/internal/crypto"
	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/internal/store"
	"github.com/MKhiriev/keypass/models"
)

const (
	// MinPasswordLength is the minimum accepted master password length.
	MinPasswordLength = 4

	// maxVerifyAttempts is how many wrong passwords are tolerated before the
	// vault locks and the process must terminate.
	maxVerifyAttempts = 3
)

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Gate drives the master-password setup/verification state machine.
//
// The branch is selected by master-record existence: no record means the
// vault has never been set up and the setup flow runs; otherwise the
// verification flow runs with at most three attempts.
type Gate struct {
	masterRecords store.MasterRecordRepository
	keychain      crypto.KeyChainService
	kdfMode       string
	in            io.Reader
	reader        *bufio.Reader
	out           io.Writer
	logger        *logger.Logger
}

// NewGate constructs a [Gate] reading from stdin and writing prompts to
// stdout. kdfMode names the key-derivation mode recorded for a newly created
// vault (models.KDFLegacy or models.KDFArgon2id); it is ignored when the
// vault already exists.
func NewGate(masterRecords store.MasterRecordRepository, keychain crypto.KeyChainService, kdfMode string, logger *logger.Logger) *Gate {
	return newGateWithIO(masterRecords, keychain, kdfMode, os.Stdin, os.Stdout, logger)
}

func newGateWithIO(masterRecords store.MasterRecordRepository, keychain crypto.KeyChainService, kdfMode string, in io.Reader, out io.Writer, logger *logger.Logger) *Gate {
	return &Gate{
		masterRecords: masterRecords,
		keychain:      keychain,
		kdfMode:       kdfMode,
		in:            in,
		reader:        bufio.NewReader(in),
		out:           out,
		logger:        logger,
	}
}

// Unlock runs the gate to completion and returns the verified plaintext
// master password together with the vault's master record.
//
// First run (no master record): the setup flow prompts for a password of at
// least [MinPasswordLength] characters plus a confirmation, re-prompting
// until both checks pass, then persists the SHA-256 hash along with the
// configured key-derivation mode.
//
// Later runs: the verification flow compares the hash of each candidate
// against the stored hash, allowing [maxVerifyAttempts] attempts before
// returning [ErrVaultLocked].
func (g *Gate) Unlock(ctx context.Context) (string, models.MasterRecord, error) {
	record, err := g.masterRecords.GetMasterRecord(ctx)
	if err != nil {
		if errors.Is(err, store.ErrMasterRecordNotFound) {
			return g.setup(ctx)
		}

		g.logger.Err(err).Str("func", "Gate.Unlock").Msg("failed to read master record")
		return "", models.MasterRecord{}, err
	}

	return g.verify(ctx, record)
}

func (g *Gate) setup(ctx context.Context) (string, models.MasterRecord, error) {
	fmt.Fprintln(g.out, promptStyle.Render("No vault found. Let's set one up."))

	for {
		password, err := g.readSecret("Set up your main password: ")
		if err != nil {
			return "", models.MasterRecord{}, err
		}

		if validateErr := validatePassword(password); validateErr != nil {
			fmt.Fprintln(g.out, errorStyle.Render(fmt.Sprintf("Password must be at least %d characters long.", MinPasswordLength)))
			continue
		}

		confirmation, err := g.readSecret("Confirm your main password: ")
		if err != nil {
			return "", models.MasterRecord{}, err
		}

		if password != confirmation {
			fmt.Fprintln(g.out, errorStyle.Render("Passwords do not match. Try again."))
			continue
		}

		record := models.MasterRecord{
			PasswordHash: hashPassword(password),
			KDF:          g.kdfMode,
		}

		if g.kdfMode == models.KDFArgon2id {
			salt, saltErr := g.keychain.GenerateSalt()
			if saltErr != nil {
				g.logger.Err(saltErr).Str("func", "Gate.setup").Msg("failed to generate KDF salt")
				return "", models.MasterRecord{}, saltErr
			}
			record.Salt = hex.EncodeToString(salt)
		}

		saved, saveErr := g.masterRecords.SaveMasterRecord(ctx, record)
		if saveErr != nil {
			g.logger.Err(saveErr).Str("func", "Gate.setup").Msg("failed to save master record")
			return "", models.MasterRecord{}, saveErr
		}

		g.logger.Info().Str("func", "Gate.setup").Str("kdf", saved.KDF).Msg("vault initialized")
		fmt.Fprintln(g.out, successStyle.Render("Vault initialized."))

		return password, saved, nil
	}
}

func (g *Gate) verify(ctx context.Context, record models.MasterRecord) (string, models.MasterRecord, error) {
	for attempt := 1; attempt <= maxVerifyAttempts; attempt++ {
		password, err := g.readSecret("Enter your main password: ")
		if err != nil {
			return "", models.MasterRecord{}, err
		}

		if hashPassword(password) == record.PasswordHash {
			g.logger.Info().Str("func", "Gate.verify").Int("attempt", attempt).Msg("master password verified")
			fmt.Fprintln(g.out, successStyle.Render("Vault unlocked."))
			return password, record, nil
		}

		g.logger.Warn().Str("func", "Gate.verify").Int("attempt", attempt).Msg("wrong master password")
		if attempt < maxVerifyAttempts {
			fmt.Fprintln(g.out, errorStyle.Render(fmt.Sprintf("Wrong password. %d attempt(s) left.", maxVerifyAttempts-attempt)))
		}
	}

	fmt.Fprintln(g.out, errorStyle.Render("Too many failed attempts. Vault is locked."))

	return "", models.MasterRecord{}, ErrVaultLocked
}

// readSecret prompts and reads one password. On a terminal the input is read
// without echo; when stdin is piped (tests, containers) it falls back to a
// plain line read.
func (g *Gate) readSecret(prompt string) (string, error) {
	fmt.Fprint(g.out, promptStyle.Render(prompt))

	if f, ok := g.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(g.out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(secret), nil
	}

	line, err := g.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

func hashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))

	return hex.EncodeToString(digest[:])
}
