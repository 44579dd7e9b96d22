// internal/models/report.go
package models

import "time"

// Report is a moderation flag submitted against an account, offer or
// wheel. Reports are append-only: status starts at pending and no
// workflow in this service transitions it further.
type Report struct {
	ID          string       `json:"id"`
	Type        ReportType   `json:"type"`
	TargetID    string       `json:"target_id"`
	TargetName  string       `json:"target_name"`
	Reason      string       `json:"reason"`
	Description string       `json:"description,omitempty"`
	ReportedBy  string       `json:"reported_by"`
	ReportedAt  time.Time    `json:"reported_at"`
	Status      ReportStatus `json:"status"`
}

var reportReasons = map[ReportType][]string{
	ReportTypeAccount: {
		"Spam or fake account",
		"Harassment or bullying",
		"Impersonation",
		"Inappropriate content",
		"Scam or fraud",
		"Other",
	},
	ReportTypeOffer: {
		"Misleading information",
		"Duplicate listing",
		"Stolen vehicle",
		"Price manipulation",
		"Inappropriate content",
		"Scam or fraud",
		"Other",
	},
	ReportTypeWheel: {
		"Inappropriate content",
		"Misleading information",
		"Spam",
		"Copyright violation",
		"Dangerous content",
		"Other",
	},
}

// ReportReasons returns the fixed reason list for a target kind.
func ReportReasons(t ReportType) []string {
	reasons := reportReasons[t]
	out := make([]string, len(reasons))
	copy(out, reasons)
	return out
}

// ValidReportReason reports whether reason is in the fixed list for the
// given target kind.
func ValidReportReason(t ReportType, reason string) bool {
	for _, r := range reportReasons[t] {
		if r == reason {
			return true
		}
	}
	return false
}
