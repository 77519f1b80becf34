package sdk

import (
	"fmt"
	"log"
	"net/mail"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soumitsalman/globaldoc/nlp"
	"github.com/soumitsalman/globaldoc/store"
)

const _DEFAULT_LIST_SIZE = 50

// SubmitReport runs the whole submission pipeline: validate, normalize the
// free text through the language model, classify it, merge both outputs into
// one record, insert and read the record back. The steps run strictly in that
// order and every failure short-circuits the rest. On success the returned id
// belongs to a confirmed persisted record.
//
// Submitting the same (symptoms, email) twice creates two records with two
// distinct ids.
func SubmitReport(symptoms, email string) (string, error) {
	// fail fast. no external call gets made for bad input
	if err := validateSubmission(symptoms, email); err != nil {
		return "", err
	}

	normalized, err := normalizer.ExtractNormalizedReport(symptoms)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNormalization, err)
	}

	// an unreachable classifier degrades to the N/A sentinel instead of
	// throwing away a completed normalizer call
	prediction, err := classifier.PredictCondition(symptoms)
	if err != nil {
		log.Println("[reportops] PredictCondition failed. Falling back to sentinel diagnosis.", err)
		prediction = &nlp.Prediction{Label: nlp.NO_DIAGNOSIS, Score: 0.0}
	}

	report := assembleReport(symptoms, email, normalized, prediction)

	id, err := reportstore.Insert(report)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	// read back what was just written. until this succeeds the record is not
	// confirmed
	if _, err = reportstore.GetByID(id); err != nil {
		return "", fmt.Errorf("%w: read-back failed: %v", ErrPersistence, err)
	}
	return id.Hex(), nil
}

func GetReport(id string) (*Report, error) {
	object_id, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	report, err := reportstore.GetByID(object_id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	return report, nil
}

// GetReports lists stored reports, newest first. Reviewers filter with the
// Options; this never mutates anything.
func GetReports(top_n int, filters ...Option) []Report {
	filter := store.JSON{}
	for _, opt := range filters {
		opt(filter)
	}
	if top_n <= 0 {
		top_n = _DEFAULT_LIST_SIZE
	}
	return reportstore.Get(filter, store.JSON{"_id": -1}, top_n)
}

func validateSubmission(symptoms, email string) error {
	if len(symptoms) == 0 || len(email) == 0 {
		return ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %s is not a valid email address", ErrInvalidInput, email)
	}
	return nil
}

func assembleReport(symptoms, email string, normalized *nlp.NormalizedReport, prediction *nlp.Prediction) Report {
	structured := normalized.StructuredReport
	return Report{
		UserInfo: UserInfo{
			Age:    structured.Age,
			Gender: structured.Gender,
			// both halves may be empty, which leaves ", ". stored as is
			Location: fmt.Sprintf("%s, %s", structured.City, structured.Country),
		},
		Symptoms:  symptoms, // verbatim, no trimming
		Severity:  normalized.Severity,
		Diagnosis: prediction.Label,
		Status:    STATUS_PENDING_REVIEW,
		FollowUps: normalized.FollowUps,
		Email:     email,
	}
}
