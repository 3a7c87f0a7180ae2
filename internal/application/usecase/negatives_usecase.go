package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ppcraft/close-variant-negatives-go/internal/domain/entity"
	"github.com/ppcraft/close-variant-negatives-go/internal/domain/repository"
	"github.com/ppcraft/close-variant-negatives-go/internal/shared/types"
)

// closeVariantMatchType is the report classification, after lowercasing and
// trimming, of a search term matched to an exact keyword through a close
// variant (plural, synonym, reordering).
const closeVariantMatchType = "exact (close variant)"

// emailSubjectLabel is the fixed first segment of the notification subject.
const emailSubjectLabel = "Close Match Script"

// NegativesUseCase runs the close-variant reconciliation pipeline: build
// the exact-keyword index, collect close-variant search terms per ad group,
// apply exact-match negatives, and mail the resulting log.
type NegativesUseCase struct {
	adsRepo    repository.AdsRepository
	exportRepo repository.ExportRepository
	mailRepo   repository.MailRepository
	console    types.ConsoleInterface
}

// NewNegativesUseCase creates a new negatives use case.
func NewNegativesUseCase(
	adsRepo repository.AdsRepository,
	exportRepo repository.ExportRepository,
	mailRepo repository.MailRepository,
	console types.ConsoleInterface,
) *NegativesUseCase {
	return &NegativesUseCase{
		adsRepo:    adsRepo,
		exportRepo: exportRepo,
		mailRepo:   mailRepo,
		console:    console,
	}
}

// Run executes the full pipeline for one lookback window.
func (uc *NegativesUseCase) Run(ctx context.Context, args *types.CLIArgs) error {
	if args.Email == "" {
		return types.ErrMissingRecipient
	}

	dateRange, err := entity.ParseDateRange(args.DateRange)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrInvalidDateRange, err)
	}

	status := uc.console.Status("Fetching exact match keywords...")

	index, err := uc.BuildExactKeywordIndex(ctx, dateRange)
	if err != nil {
		status.Stop()
		return fmt.Errorf("keyword performance report failed: %w", err)
	}

	status.Update("Fetching close variant search terms...")
	groups, err := uc.CollectCloseVariantQueries(ctx, dateRange, args.CampaignNameFilter)
	if err != nil {
		status.Stop()
		return fmt.Errorf("search term performance report failed: %w", err)
	}
	status.Stop()

	uc.console.LogInfo("Found %d exact match keywords and %d ad groups with close variant traffic", index.Len(), len(groups))

	report, err := uc.ApplyNegativeKeywords(ctx, groups, index, args.EmailOnly)
	if err != nil {
		return err
	}
	report.DateRange = dateRange.String()

	account, err := uc.adsRepo.GetAccountInfo(ctx)
	if err != nil {
		uc.console.LogWarning("Could not resolve account info: %s", err)
	}
	report.Account = account

	uc.Notify(ctx, &report, args.Email)

	uc.exportReport(report, args)

	return nil
}

// BuildExactKeywordIndex consumes the keyword-performance report and builds
// the set of composite keys for every active exact-match keyword.
func (uc *NegativesUseCase) BuildExactKeywordIndex(ctx context.Context, dateRange entity.DateRange) (entity.ExactKeywordIndex, error) {
	cursor, err := uc.adsRepo.KeywordPerformanceReport(ctx, dateRange)
	if err != nil {
		return nil, err
	}

	index := entity.NewExactKeywordIndex()
	for cursor.Next() {
		row := cursor.Row()
		index.Add(entity.NewKeywordKey(row.AdGroupID, row.KeywordID))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return index, nil
}

// CollectCloseVariantQueries consumes the search-term report and groups the
// close-variant rows by ad group, preserving report row order. A row is
// kept only if its query text differs from the keyword text and its match
// type is the close-variant classification. Rows with malformed metric
// fields are rejected with a warning.
func (uc *NegativesUseCase) CollectCloseVariantQueries(
	ctx context.Context,
	dateRange entity.DateRange,
	campaignNameFilter string,
) (map[int64]*entity.AdGroupQueries, error) {
	cursor, err := uc.adsRepo.SearchTermPerformanceReport(ctx, dateRange, campaignNameFilter)
	if err != nil {
		return nil, err
	}

	groups := make(map[int64]*entity.AdGroupQueries)
	for cursor.Next() {
		row := cursor.Row()

		query := strings.ToLower(row.Query)
		keywordText := strings.ToLower(row.KeywordText)
		matchType := strings.TrimSpace(strings.ToLower(row.MatchTypeWithVariant))

		if keywordText == query || matchType != closeVariantMatchType {
			continue
		}

		impressions, clicks, conversions, err := parseRowMetrics(row)
		if err != nil {
			uc.console.LogWarning("Skipping malformed report row for query %q in ad group %d: %s", row.Query, row.AdGroupID, err)
			continue
		}

		group, ok := groups[row.AdGroupID]
		if !ok {
			group = &entity.AdGroupQueries{
				AdGroupID:    row.AdGroupID,
				AdGroupName:  row.AdGroupName,
				CampaignName: row.CampaignName,
			}
			groups[row.AdGroupID] = group
		}

		group.Queries = append(group.Queries, entity.SearchQueryRecord{
			Key:         entity.NewKeywordKey(row.AdGroupID, row.KeywordID),
			KeywordText: keywordText,
			Query:       query,
			MatchType:   matchType,
			Impressions: impressions,
			Clicks:      clicks,
			Conversions: conversions,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// ApplyNegativeKeywords resolves the ad groups present in the mapping and,
// for every record whose composite key is in the index, creates an
// exact-match negative keyword (unless emailOnly) and appends the display
// lines. A mutation failure abandons the current ad group with a failure
// note and moves on to the next one.
func (uc *NegativesUseCase) ApplyNegativeKeywords(
	ctx context.Context,
	groups map[int64]*entity.AdGroupQueries,
	index entity.ExactKeywordIndex,
	emailOnly bool,
) (entity.RunReport, error) {
	report := entity.RunReport{EmailOnly: emailOnly}
	if len(groups) == 0 {
		return report, nil
	}

	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}

	adGroups, err := uc.adsRepo.GetAdGroups(ctx, ids)
	if err != nil {
		return report, fmt.Errorf("ad group lookup failed: %w", err)
	}

	progress := uc.console.ProgressWithTotal(len(adGroups))
	for _, adGroup := range adGroups {
		group, ok := groups[adGroup.ID]
		if !ok {
			progress.Increment()
			continue
		}

		report.Log = append(report.Log,
			"",
			"Campaign: "+group.CampaignName,
			"Ad Group: "+group.AdGroupName,
			"Search Queries: "+group.AdGroupName,
		)

		for _, record := range group.Queries {
			// Only create negatives for queries whose keyword is still an
			// active exact-match keyword.
			if !index.Contains(record.Key) {
				continue
			}

			phrase := "[" + record.Query + "]"
			result := entity.NegativeKeywordResult{
				CampaignName:    group.CampaignName,
				AdGroupName:     group.AdGroupName,
				AdGroupID:       adGroup.ID,
				Query:           record.Query,
				NegativeKeyword: phrase,
				Conversions:     record.Conversions,
			}

			if !emailOnly {
				if err := uc.adsRepo.CreateNegativeKeyword(ctx, adGroup.ID, phrase); err != nil {
					result.Error = err.Error()
					report.Results = append(report.Results, result)
					report.Log = append(report.Log,
						fmt.Sprintf(" ! failed to add negatives to ad group %q: %s", group.AdGroupName, err))
					uc.console.LogWarning("Failed to add negatives to ad group %d: %s", adGroup.ID, err)
					break
				}
				result.Applied = true
			}

			report.Log = append(report.Log, " - "+record.Query+conversionSuffix(record.Conversions))
			report.Results = append(report.Results, result)
		}

		progress.Increment()
	}
	progress.Stop()

	return report, nil
}

// Notify prepends the summary header, mirrors every line to the console,
// and mails the joined log. The console output is the fallback record, so
// it always happens before the mail attempt; a mail failure is non-fatal.
func (uc *NegativesUseCase) Notify(ctx context.Context, report *entity.RunReport, recipient string) {
	notApplied := ""
	if report.EmailOnly {
		notApplied = " not"
	}
	summary := fmt.Sprintf(
		"Your ad groups generated these `exact (close variant)` search queries in the `%s` date range. They have%s been added as exact match negative keywords.",
		report.DateRange, notApplied)

	report.Log = append([]string{"", summary}, report.Log...)

	for _, line := range report.Log {
		uc.console.Println(line)
	}

	subject := strings.Join([]string{
		emailSubjectLabel,
		report.Account.DescriptiveName,
		report.Account.CustomerID,
	}, " | ")

	if err := uc.mailRepo.Send(ctx, recipient, subject, strings.Join(report.Log, "\n")); err != nil {
		uc.console.LogWarning("Failed to send report email to %s: %s", recipient, err)
	}
}

// exportReport writes the run report to the requested file formats.
func (uc *NegativesUseCase) exportReport(report entity.RunReport, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportRunReportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportRunReportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportRunReportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type %q, skipping", reportType)
		}
	}
}

// parseRowMetrics parses the numeric report fields, rejecting the row on
// the first malformed value.
func parseRowMetrics(row entity.SearchTermRow) (impressions, clicks, conversions int, err error) {
	impressions, err = parseMetric("impressions", row.Impressions)
	if err != nil {
		return 0, 0, 0, err
	}
	clicks, err = parseMetric("clicks", row.Clicks)
	if err != nil {
		return 0, 0, 0, err
	}
	conversions, err = parseMetric("conversions", row.Conversions)
	if err != nil {
		return 0, 0, 0, err
	}
	return impressions, clicks, conversions, nil
}

func parseMetric(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("non-numeric %s value %q", field, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative %s value %q", field, value)
	}
	return n, nil
}

// conversionSuffix renders the " (N conversions)" display suffix, singular
// for exactly one conversion and empty below one.
func conversionSuffix(n int) string {
	if n < 1 {
		return ""
	}
	if n == 1 {
		return " (1 conversion)"
	}
	return fmt.Sprintf(" (%d conversions)", n)
}
