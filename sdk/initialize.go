package sdk

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soumitsalman/globaldoc/nlp"
	"github.com/soumitsalman/globaldoc/store"
)

const (
	GLOBALDOC = "globaldoc"
	REPORTS   = "reports"
)

// collaborator boundaries of the pipeline. the drivers in nlp and the mongo
// store satisfy these; tests swap in deterministic fakes.
type ReportNormalizer interface {
	ExtractNormalizedReport(text string) (*nlp.NormalizedReport, error)
}

type ConditionClassifier interface {
	PredictCondition(text string) (*nlp.Prediction, error)
}

type ReportStore interface {
	Insert(report Report) (primitive.ObjectID, error)
	GetByID(id primitive.ObjectID) (*Report, error)
	Get(filter store.JSON, sort_by store.JSON, top_n int) []Report
}

var (
	reportstore ReportStore
	normalizer  ReportNormalizer
	classifier  ConditionClassifier
)

type GlobalDocError string

func (err GlobalDocError) Error() string {
	return string(err)
}

func InitializeGlobalDoc(db_conn_str, gemini_api_key, classifier_url, classifier_auth_token string) error {
	mongostore := store.New[Report](db_conn_str, GLOBALDOC, REPORTS)
	if mongostore == nil {
		return GlobalDocError("Initialization Failed. db_conn_str Not working.")
	}
	reportstore = mongostore

	normalizer_client := nlp.NewNormalizerDriver(gemini_api_key)
	if normalizer_client == nil {
		return GlobalDocError("Initialization Failed. gemini_api_key Not working.")
	}
	normalizer = normalizer_client
	classifier = nlp.NewClassifierDriver(classifier_url, classifier_auth_token)

	return nil
}
