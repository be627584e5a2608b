// Package reporting renders collected facts for CI systems.
package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/llmdp/llmdp/internal/facts"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one adapter run.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Time       float64         `xml:"time,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one fact.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

// JUnitFailure represents a check that ran and failed.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitSkipped marks a fact the adapter did not produce.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Run describes one completed fact collection.
type Run struct {
	RunID    string
	Language string
	Repo     string
	// Vocabulary is every fact the adapter can produce, in check order.
	Vocabulary []string
	Facts      facts.Facts
	Started    time.Time
	Duration   time.Duration
}

// ConvertToJUnit converts a Run to JUnit XML form. Each vocabulary entry
// becomes a test case: passed, failed, or skipped when the check did not
// apply to the repository.
func ConvertToJUnit(run *Run) *JUnitTestSuites {
	durationSec := run.Duration.Seconds()

	suite := JUnitTestSuite{
		Name:      "llmdp." + run.Language,
		Time:      durationSec,
		Timestamp: run.Started.UTC().Format(time.RFC3339),
		Properties: []JUnitProperty{
			{Name: "run_id", Value: run.RunID},
			{Name: "language", Value: run.Language},
			{Name: "repo", Value: run.Repo},
		},
	}

	for _, key := range run.Vocabulary {
		tc := JUnitTestCase{
			Name:      key,
			Classname: "llmdp." + run.Language,
		}

		ok, present := run.Facts[key]
		switch {
		case !present:
			tc.Skipped = &JUnitSkipped{Message: "not applicable"}
			suite.Skipped++
		case !ok:
			tc.Failure = &JUnitFailure{
				Message: fmt.Sprintf("%s is false", key),
				Type:    "CheckFailure",
			}
			suite.Failures++
		}

		suite.Tests++
		suite.TestCases = append(suite.TestCases, tc)
	}

	return &JUnitTestSuites{
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		Time:       durationSec,
		TestSuites: []JUnitTestSuite{suite},
	}
}

// WriteJUnitXML writes JUnit XML to the specified file path.
func WriteJUnitXML(run *Run, path string) error {
	suites := ConvertToJUnit(run)

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	output := append([]byte(xml.Header), data...)
	return os.WriteFile(path, output, 0644)
}
