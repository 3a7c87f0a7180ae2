package repository

import (
	"github.com/ppcraft/close-variant-negatives-go/internal/domain/entity"
)

// ExportRepository defines the interface for writing run reports to files.
type ExportRepository interface {
	ExportRunReportToCSV(report entity.RunReport, filename string, outputDir string) (string, error)
	ExportRunReportToJSON(report entity.RunReport, filename string, outputDir string) (string, error)
	ExportRunReportToPDF(report entity.RunReport, filename string, outputDir string) (string, error)
}
