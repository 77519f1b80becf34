package nlp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPredictConditionTakesTopLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[[{"label": "Flu", "score": 0.82}, {"label": "Common Cold", "score": 0.11}]]`))
	}))
	defer server.Close()

	prediction, err := NewClassifierDriver(server.URL, "").PredictCondition("Fever and cough for 3 days")
	if err != nil {
		t.Fatalf("expected a prediction, got %v", err)
	}
	if prediction.Label != "Flu" {
		t.Fatalf("expected label Flu, got %q", prediction.Label)
	}
	if prediction.Score != 0.82 {
		t.Fatalf("expected score 0.82, got %f", prediction.Score)
	}
}

func TestPredictConditionEmptyTextSkipsTheServer(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	prediction, err := NewClassifierDriver(server.URL, "").PredictCondition("")
	if err != nil {
		t.Fatalf("empty text must not fail, got %v", err)
	}
	if prediction.Label != NO_DIAGNOSIS || prediction.Score != 0.0 {
		t.Fatalf("expected the %s sentinel with score 0, got %+v", NO_DIAGNOSIS, prediction)
	}
	if requests != 0 {
		t.Fatalf("expected no request to the model server, got %d", requests)
	}
}

func TestPredictConditionRejectsShortResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := NewClassifierDriver(server.URL, "").PredictCondition("Fever")
	if err == nil {
		t.Fatal("expected an error when the server returns no predictions")
	}
	if strings.Contains(err.Error(), "[classifierdriver]") {
		t.Fatalf("log prefix leaked into the error value: %q", err.Error())
	}
}
