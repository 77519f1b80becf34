package nlp

const (
	_REPORT_EXTRACTION_INSTRUCTION = "You are a virtual medical assistant.\n" +
		"Each user input is a free-text description of how a patient is feeling.\n" +
		"From the description extract: age, gender, city, country, the list of symptoms,\n" +
		"the duration of the symptoms, a severity score between 1 and 5,\n" +
		"and follow-up questions to ask if required data is missing.\n" +
		"Leave out any field that the description does not mention.\n" +
		"Do NOT diagnose and do NOT add fields that are not in the schema."
)

var (
	_sample_age      = 34
	_sample_severity = 2

	_REPORT_SAMPLE_OUTPUT = NormalizedReport{
		StructuredReport: StructuredReport{
			Age:      &_sample_age,
			Gender:   "male",
			City:     "Lagos",
			Country:  "Nigeria",
			Symptoms: []string{"fever", "dry cough"},
			Duration: "3 days",
			Notes:    "symptoms get worse at night",
		},
		Severity:  &_sample_severity,
		FollowUps: []string{"Do you have any difficulty breathing?"},
	}
)
