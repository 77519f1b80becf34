package nlp

import (
	"strings"
	"testing"
)

func TestStripMarkdownFence(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fence", `{"severity": 2}`, `{"severity": 2}`},
		{"json fence", "```json\n{\"severity\": 2}\n```", `{"severity": 2}`},
		{"bare fence", "```\n{\"severity\": 2}\n```", `{"severity": 2}`},
		{"surrounding whitespace", "  \n```json\n{\"severity\": 2}\n```  \n", `{"severity": 2}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripMarkdownFence(tc.input); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestJsonOutputParserParsesFencedReport(t *testing.T) {
	parser := NewJsonOutputParser(_REPORT_SAMPLE_OUTPUT)

	value, err := parser.Parse("```json\n" +
		`{"structured_report": {"age": 30, "gender": "male", "city": "Lagos", "country": "Nigeria"}, "severity": 2, "follow_ups": []}` +
		"\n```")
	if err != nil {
		t.Fatalf("expected a parsable report, got %v", err)
	}
	report := value.(NormalizedReport)
	if report.StructuredReport.Age == nil || *report.StructuredReport.Age != 30 {
		t.Fatalf("expected age 30, got %v", report.StructuredReport.Age)
	}
	if report.Severity == nil || *report.Severity != 2 {
		t.Fatalf("expected severity 2, got %v", report.Severity)
	}
	if report.StructuredReport.City != "Lagos" {
		t.Fatalf("expected city Lagos, got %q", report.StructuredReport.City)
	}
}

func TestJsonOutputParserToleratesMissingFields(t *testing.T) {
	parser := NewJsonOutputParser(_REPORT_SAMPLE_OUTPUT)

	value, err := parser.Parse(`{"structured_report": {}}`)
	if err != nil {
		t.Fatalf("absent fields must parse, got %v", err)
	}
	report := value.(NormalizedReport)
	if report.StructuredReport.Age != nil || report.Severity != nil {
		t.Fatalf("absent fields must stay nil, got age=%v severity=%v", report.StructuredReport.Age, report.Severity)
	}
	if report.StructuredReport.City != "" || report.StructuredReport.Country != "" {
		t.Fatalf("absent fields must stay empty, got city=%q country=%q", report.StructuredReport.City, report.StructuredReport.Country)
	}
	if len(report.FollowUps) != 0 {
		t.Fatalf("expected no follow ups, got %v", report.FollowUps)
	}
}

func TestJsonOutputParserRejectsNonJson(t *testing.T) {
	parser := NewJsonOutputParser(_REPORT_SAMPLE_OUTPUT)

	if _, err := parser.Parse("```json\nI am sorry, I cannot help with that.\n```"); err == nil {
		t.Fatal("expected an error for non-json content")
	}
}

func TestFormatInstructionsCarrySchemaAndSample(t *testing.T) {
	instructions := NewJsonOutputParser(_REPORT_SAMPLE_OUTPUT).GetFormatInstructions()
	for _, key := range []string{"structured_report", "severity", "follow_ups", "Lagos"} {
		if !strings.Contains(instructions, key) {
			t.Fatalf("format instructions are missing %q:\n%s", key, instructions)
		}
	}
}
