package nlp

// wire format of the normalizer response. every field is optional on the wire
// and absent fields flow downstream as nil/empty without any defaulting here.
type StructuredReport struct {
	Age      *int     `json:"age,omitempty" jsonschema_description:"Age of the patient in years"`
	Gender   string   `json:"gender,omitempty" jsonschema_description:"Gender of the patient exactly as stated, free form"`
	City     string   `json:"city,omitempty" jsonschema_description:"City the patient is reporting from"`
	Country  string   `json:"country,omitempty" jsonschema_description:"Country the patient is reporting from"`
	Symptoms []string `json:"symptoms,omitempty" jsonschema_description:"The individual symptoms mentioned in the description"`
	Duration string   `json:"duration,omitempty" jsonschema_description:"How long the symptoms have been going on such as: 3 days, 2 weeks"`
	Notes    string   `json:"notes,omitempty" jsonschema_description:"Any other clinically relevant detail found in the description"`
}

type NormalizedReport struct {
	StructuredReport StructuredReport `json:"structured_report" jsonschema_description:"Demographics and symptom breakdown extracted from the description"`
	Severity         *int             `json:"severity,omitempty" jsonschema_description:"Severity score between 1 and 5 where 5 needs immediate attention"`
	FollowUps        []string         `json:"follow_ups,omitempty" jsonschema_description:"Follow-up questions to ask the patient when required information is missing"`
}

// one condition label with a confidence score in [0, 1] from the
// classification model's fixed label inventory
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
