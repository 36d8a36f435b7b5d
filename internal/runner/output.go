package runner

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/pretty"
)

// PrintText outputs a report in human-readable format.
func PrintText(w io.Writer, report Report, verbose bool) {
	errors := 0

	for _, r := range report.Results {
		icon := "✓"
		if !r.Success {
			icon = "✗"
			errors++
		}

		target := r.Method + " " + r.URL
		if r.Method == "" {
			target = "(not sent)"
		}
		statusStr := fmt.Sprintf("%d %s", r.StatusCode, r.Status)

		fmt.Fprintf(w, "%s %-10s %-40s  %s  %s  %s\n",
			icon, r.Name, truncate(target, 40),
			statusStr, formatDuration(r.Duration), humanize.IBytes(uint64(max(r.Size, 0))))
		if !r.Success {
			fmt.Fprintf(w, "  └ Error: %s\n", r.ErrorString)
		}

		if verbose && len(r.Data) > 0 {
			fmt.Fprintf(w, "  --- Response Data ---\n")
			for _, line := range strings.Split(strings.TrimRight(string(pretty.Pretty(r.Data)), "\n"), "\n") {
				fmt.Fprintf(w, "  %s\n", line)
			}
			fmt.Fprintf(w, "  ---------------------\n")
		}
	}

	if len(report.Log) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Activity log:")
		for _, e := range report.Log {
			fmt.Fprintf(w, "  [%s] %s\n", e.Timestamp, e.Message)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Status: %s\n", report.Status.Message)
	fmt.Fprintf(w, "Commands: %d total, %d errors\n", len(report.Results), errors)
}

// PrintJSON outputs a report as JSON.
func PrintJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

type junitTestSuite struct {
	XMLName  xml.Name        `xml:"testsuite"`
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Errors   int             `xml:"errors,attr"`
	Time     float64         `xml:"time,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *junitFailure `xml:"failure,omitempty"`
	Error     *junitFailure `xml:"error,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

// PrintJUnit outputs results as a single JUnit test suite for CI. Responses
// with a status code are failures; everything else that failed is an error.
func PrintJUnit(w io.Writer, results []Result) error {
	suite := junitTestSuite{Name: "edgepanel", Tests: len(results)}

	for _, r := range results {
		tc := junitTestCase{
			Name:      r.Name,
			ClassName: strings.TrimSpace(r.Method + " " + r.URL),
			Time:      r.Duration.Seconds(),
		}
		suite.Time += r.Duration.Seconds()

		if !r.Success {
			f := &junitFailure{Message: r.ErrorString, Content: fmt.Sprintf("%d %s", r.StatusCode, r.Status)}
			if r.StatusCode > 0 {
				suite.Failures++
				f.Type = "HTTPError"
				tc.Failure = f
			} else {
				suite.Errors++
				f.Type = "RequestError"
				tc.Error = f
			}
		}
		suite.Cases = append(suite.Cases, tc)
	}

	fmt.Fprint(w, xml.Header)
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(suite); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
