package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/nlsh-go/internal/domain"
)

// renderResolution prints a resolution in a friendly, ASCII-only format.
func renderResolution(out io.Writer, res domain.Resolution) {
	fmt.Fprintf(out, "%s\n", res.Command)
	if res.Explanation != "" {
		fmt.Fprintf(out, "  %s\n", res.Explanation)
	}
	fmt.Fprintf(out, "  source: %s  confidence: %.2f\n", res.Source, res.Confidence)
	if !res.Safe {
		fmt.Fprintf(out, "  WARNING: %s\n", strings.Join(res.RiskReasons, "; "))
	}
}

func renderResolutionJSON(out io.Writer, res domain.Resolution) error {
	payload := struct {
		Command     string   `json:"command"`
		Explanation string   `json:"explanation,omitempty"`
		Confidence  float64  `json:"confidence"`
		Source      string   `json:"source"`
		Phrase      string   `json:"phrase"`
		Safe        bool     `json:"safe"`
		RiskReasons []string `json:"risk_reasons,omitempty"`
	}{
		Command:     res.Command,
		Explanation: res.Explanation,
		Confidence:  res.Confidence,
		Source:      string(res.Source),
		Phrase:      res.Phrase,
		Safe:        res.Safe,
		RiskReasons: res.RiskReasons,
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%-5s] %-18s %s\n", strings.ToUpper(string(check.Status)), check.Name, check.Details)
	}
	if report.Healthy() {
		fmt.Fprintln(out, "\nEnvironment looks good.")
	} else {
		fmt.Fprintln(out, "\nSome checks failed; see above.")
	}
}
