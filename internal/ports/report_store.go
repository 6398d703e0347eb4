package ports

import "github.com/aalvaropc/romconv/internal/domain"

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
}
