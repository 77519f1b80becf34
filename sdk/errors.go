package sdk

import "errors"

// Failure taxonomy of the submission pipeline. Callers map these with
// errors.Is; the server turns ErrInvalidInput into a client error and the
// rest into server errors.
var (
	// ErrInvalidInput is returned for missing/empty required fields or a
	// malformed email address. It carries no side effects.
	ErrInvalidInput = errors.New("symptom description and email are required")

	// ErrNormalization is returned when the language model call failed or
	// returned content that is not parsable json. Nothing gets persisted.
	ErrNormalization = errors.New("failed to process report with AI service")

	// ErrPersistence is returned when the insert or the read-back failed.
	// The record's existence is then not confirmed.
	ErrPersistence = errors.New("failed to store report")

	// ErrReportNotFound is returned for ids that do not resolve to a record.
	ErrReportNotFound = errors.New("no report with that id")
)
