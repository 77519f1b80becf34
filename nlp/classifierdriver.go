package nlp

import (
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/soumitsalman/globaldoc/nlp/utils"
)

// the inference server hosts a pretrained text-classification model with a
// fixed inventory of condition labels. which model it is, is not this
// package's business.
const _CLASSIFIER_BASE_URL = "https://api-inference.huggingface.co/models/d4data/biobert-medical-condition-classification"

// sentinel label for when there is nothing to classify
const NO_DIAGNOSIS = "N/A"

type ClassifierServerError string

func (err ClassifierServerError) Error() string {
	return string(err)
}

type ClassifierDriver struct {
	predict_url string
	auth_token  string
}

func NewClassifierDriver(base_url, auth_token string) *ClassifierDriver {
	driver := &ClassifierDriver{
		predict_url: _CLASSIFIER_BASE_URL,
		auth_token:  auth_token,
	}
	if len(base_url) > 0 {
		driver.predict_url = base_url
	}
	return driver
}

type inferenceInput struct {
	Inputs []string `json:"inputs"`
}

// PredictCondition maps free text to exactly one condition label and a
// confidence score in [0, 1]. Empty text gets the N/A sentinel without a
// round trip to the model server.
func (driver *ClassifierDriver) PredictCondition(text string) (*Prediction, error) {
	if len(text) == 0 {
		return &Prediction{Label: NO_DIAGNOSIS, Score: 0.0}, nil
	}
	predictions, err := driver.predict(&inferenceInput{[]string{utils.TruncateTextOnTokenCount(text)}})
	if err != nil {
		return nil, err
	}
	// the server returns the label scores sorted highest first
	return &predictions[0], nil
}

func (driver *ClassifierDriver) predict(input *inferenceInput) ([]Prediction, error) {
	var result [][]Prediction
	req := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		R().
		SetBody(input).
		SetResult(&result)
	if driver.auth_token != "" {
		req = req.SetAuthToken(driver.auth_token)
	}
	if _, err := req.Post(driver.predict_url); err != nil {
		log.Printf("[classifierdriver] Request Failed. Error: %v\n", err)
		return nil, err
	}
	if len(result) != len(input.Inputs) || len(result[0]) == 0 {
		err := ClassifierServerError(fmt.Sprintf("Expected predictions for %d inputs. Got %d.", len(input.Inputs), len(result)))
		log.Println("[classifierdriver]", err)
		return nil, err
	}
	return result[0], nil
}
