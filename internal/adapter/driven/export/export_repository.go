package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ppcraft/close-variant-negatives-go/internal/domain/entity"
	"github.com/ppcraft/close-variant-negatives-go/internal/domain/repository"
)

// ExportRepositoryImpl implements the ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository creates a new ExportRepository implementation.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportRunReportToCSV writes one row per negative-keyword decision.
func (r *ExportRepositoryImpl) ExportRunReportToCSV(report entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Campaign", "Ad Group", "Ad Group ID", "Search Query",
		"Negative Keyword", "Conversions", "Applied", "Error",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, result := range report.Results {
		record := []string{
			result.CampaignName,
			result.AdGroupName,
			strconv.FormatInt(result.AdGroupID, 10),
			result.Query,
			result.NegativeKeyword,
			strconv.Itoa(result.Conversions),
			strconv.FormatBool(result.Applied),
			result.Error,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportRunReportToJSON writes the full run report as indented JSON.
func (r *ExportRepositoryImpl) ExportRunReportToJSON(report entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportRunReportToPDF renders the run report grouped the way the email is.
func (r *ExportRepositoryImpl) ExportRunReportToPDF(report entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Close Variant Negative Keywords"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	accountLine := fmt.Sprintf("  Account: %s (%s)", report.Account.DescriptiveName, report.Account.CustomerID)
	pdf.CellFormat(0, 8, tr(accountLine), "", 1, "L", true, 0, "")
	mode := "negatives applied"
	if report.EmailOnly {
		mode = "email only, no changes made"
	}
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Date range: %s (%s)", report.DateRange, mode)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	drawBlockHeader := func(campaign, adGroup string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s / %s", campaign, adGroup)))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	}

	var lastAdGroupID int64 = -1
	for _, result := range report.Results {
		if result.AdGroupID != lastAdGroupID {
			if lastAdGroupID != -1 {
				pdf.Ln(6)
			}
			drawBlockHeader(result.CampaignName, result.AdGroupName)
			lastAdGroupID = result.AdGroupID
		}

		line := " - " + result.Query
		if result.Conversions == 1 {
			line += " (1 conversion)"
		} else if result.Conversions > 1 {
			line += fmt.Sprintf(" (%d conversions)", result.Conversions)
		}
		if result.Error != "" {
			line += " [FAILED: " + result.Error + "]"
		}
		pdf.MultiCell(190, 5, tr(line), "", "L", false)
	}

	if len(report.Results) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(190, 5, tr("No close variant search queries matched in this date range."), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
