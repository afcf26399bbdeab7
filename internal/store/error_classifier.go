// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result type returned by
// [ErrorClassifier.Classify]. It indicates whether a failed database
// operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)

// String returns a log-friendly label for the classification.
func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// ErrorClassifier translates driver-specific errors into driver-neutral
// answers the repositories can act on. Each database backend carries its own
// implementation inside the [DB] it is opened with.
type ErrorClassifier interface {
	// Classify reports whether err describes a transient failure worth
	// retrying. nil and unrecognised errors classify as [NonRetryable].
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique-constraint
	// violation. This is how [ErrDuplicateEntry] and
	// [ErrMasterRecordExists] are detected without read-before-write.
	IsUniqueViolation(err error) bool
}
