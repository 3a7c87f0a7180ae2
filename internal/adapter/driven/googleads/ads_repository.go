package googleads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/ppcraft/close-variant-negatives-go/internal/domain/entity"
	"github.com/ppcraft/close-variant-negatives-go/internal/domain/repository"
	"github.com/ppcraft/close-variant-negatives-go/internal/shared/types"
)

const (
	defaultEndpoint = "https://googleads.googleapis.com"
	apiVersion      = "v17"
	tokenURL        = "https://oauth2.googleapis.com/token"
)

// AdsRepositoryImpl implements the AdsRepository over the Google Ads REST
// API: googleAds:searchStream for the reports and lookups,
// adGroupCriteria:mutate for negative keyword creation.
type AdsRepositoryImpl struct {
	httpClient      *http.Client
	endpoint        string
	customerID      string
	loginCustomerID string
	developerToken  string
	logger          zerolog.Logger
}

// NewAdsRepository creates a Google Ads repository authenticated with the
// configured oauth2 refresh token.
func NewAdsRepository(cfg types.GoogleAdsConfig, logger zerolog.Logger) repository.AdsRepository {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
	}
	tokenSource := oauthCfg.TokenSource(context.Background(), &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
	})

	return &AdsRepositoryImpl{
		httpClient: &http.Client{
			Transport: &oauth2.Transport{Source: tokenSource},
			Timeout:   2 * time.Minute,
		},
		endpoint:        defaultEndpoint,
		customerID:      strings.ReplaceAll(cfg.CustomerID, "-", ""),
		loginCustomerID: strings.ReplaceAll(cfg.LoginCustomerID, "-", ""),
		developerToken:  cfg.DeveloperToken,
		logger:          logger,
	}
}

// --- searchStream wire types ---

type searchStreamRequest struct {
	Query string `json:"query"`
}

type searchStreamChunk struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Customer         *customerFields         `json:"customer"`
	Campaign         *campaignFields         `json:"campaign"`
	AdGroup          *adGroupFields          `json:"adGroup"`
	AdGroupCriterion *adGroupCriterionFields `json:"adGroupCriterion"`
	SearchTermView   *searchTermViewFields   `json:"searchTermView"`
	Segments         *segmentFields          `json:"segments"`
	Metrics          *metricFields           `json:"metrics"`
}

type customerFields struct {
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
}

type campaignFields struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type adGroupFields struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type adGroupCriterionFields struct {
	CriterionID string         `json:"criterionId"`
	Keyword     *keywordFields `json:"keyword"`
}

type keywordFields struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type searchTermViewFields struct {
	SearchTerm string `json:"searchTerm"`
}

type segmentFields struct {
	Keyword             *segmentKeyword `json:"keyword"`
	SearchTermMatchType string          `json:"searchTermMatchType"`
}

type segmentKeyword struct {
	AdGroupCriterion string         `json:"adGroupCriterion"`
	Info             *keywordFields `json:"info"`
}

type metricFields struct {
	Impressions string  `json:"impressions"`
	Clicks      string  `json:"clicks"`
	Conversions float64 `json:"conversions"`
}

// --- cursors ---

type keywordRowCursor struct {
	rows []entity.KeywordRow
	pos  int
}

func (c *keywordRowCursor) Next() bool {
	if c.pos < len(c.rows) {
		c.pos++
		return true
	}
	return false
}

func (c *keywordRowCursor) Row() entity.KeywordRow { return c.rows[c.pos-1] }
func (c *keywordRowCursor) Err() error             { return nil }

type searchTermRowCursor struct {
	rows []entity.SearchTermRow
	pos  int
}

func (c *searchTermRowCursor) Next() bool {
	if c.pos < len(c.rows) {
		c.pos++
		return true
	}
	return false
}

func (c *searchTermRowCursor) Row() entity.SearchTermRow { return c.rows[c.pos-1] }
func (c *searchTermRowCursor) Err() error                { return nil }

// --- repository operations ---

// KeywordPerformanceReport runs the keyword-performance query and returns a
// cursor over its rows.
func (r *AdsRepositoryImpl) KeywordPerformanceReport(ctx context.Context, dateRange entity.DateRange) (repository.KeywordRowCursor, error) {
	results, err := r.searchStream(ctx, keywordPerformanceQuery(dateRange))
	if err != nil {
		return nil, err
	}

	rows := make([]entity.KeywordRow, 0, len(results))
	for _, result := range results {
		if result.AdGroup == nil || result.AdGroupCriterion == nil {
			continue
		}
		adGroupID, err := strconv.ParseInt(result.AdGroup.ID, 10, 64)
		if err != nil {
			r.logger.Warn().Str("ad_group_id", result.AdGroup.ID).Msg("skipping keyword row with unparsable ad group id")
			continue
		}
		keywordID, err := strconv.ParseInt(result.AdGroupCriterion.CriterionID, 10, 64)
		if err != nil {
			r.logger.Warn().Str("criterion_id", result.AdGroupCriterion.CriterionID).Msg("skipping keyword row with unparsable criterion id")
			continue
		}
		row := entity.KeywordRow{
			KeywordID: keywordID,
			AdGroupID: adGroupID,
		}
		if result.AdGroupCriterion.Keyword != nil {
			row.KeywordText = result.AdGroupCriterion.Keyword.Text
		}
		rows = append(rows, row)
	}

	r.logger.Debug().Int("rows", len(rows)).Msg("keyword performance report fetched")
	return &keywordRowCursor{rows: rows}, nil
}

// SearchTermPerformanceReport runs the search-term query and returns a
// cursor over its rows. Metric values keep their report string form; the
// match-type enum is mapped to the legacy display string.
func (r *AdsRepositoryImpl) SearchTermPerformanceReport(ctx context.Context, dateRange entity.DateRange, campaignNameFilter string) (repository.SearchTermRowCursor, error) {
	results, err := r.searchStream(ctx, searchTermPerformanceQuery(dateRange, campaignNameFilter))
	if err != nil {
		return nil, err
	}

	rows := make([]entity.SearchTermRow, 0, len(results))
	for _, result := range results {
		if result.AdGroup == nil || result.SearchTermView == nil || result.Segments == nil {
			continue
		}
		adGroupID, err := strconv.ParseInt(result.AdGroup.ID, 10, 64)
		if err != nil {
			r.logger.Warn().Str("ad_group_id", result.AdGroup.ID).Msg("skipping search term row with unparsable ad group id")
			continue
		}

		row := entity.SearchTermRow{
			Query:                result.SearchTermView.SearchTerm,
			AdGroupID:            adGroupID,
			AdGroupName:          result.AdGroup.Name,
			MatchTypeWithVariant: matchTypeDisplay(result.Segments.SearchTermMatchType),
		}
		if result.Campaign != nil {
			row.CampaignName = result.Campaign.Name
			if campaignID, err := strconv.ParseInt(result.Campaign.ID, 10, 64); err == nil {
				row.CampaignID = campaignID
			}
		}
		if result.Segments.Keyword != nil {
			keywordID, err := criterionIDFromResourceName(result.Segments.Keyword.AdGroupCriterion)
			if err != nil {
				r.logger.Warn().Str("resource", result.Segments.Keyword.AdGroupCriterion).Msg("skipping search term row with unparsable keyword criterion")
				continue
			}
			row.KeywordID = keywordID
			if result.Segments.Keyword.Info != nil {
				row.KeywordText = result.Segments.Keyword.Info.Text
			}
		}
		if result.Metrics != nil {
			row.Impressions = result.Metrics.Impressions
			row.Clicks = result.Metrics.Clicks
			// The legacy report serves conversions as whole counts.
			row.Conversions = strconv.FormatInt(int64(math.Round(result.Metrics.Conversions)), 10)
		}
		rows = append(rows, row)
	}

	r.logger.Debug().Int("rows", len(rows)).Msg("search term performance report fetched")
	return &searchTermRowCursor{rows: rows}, nil
}

// GetAccountInfo returns the account display name and customer id.
func (r *AdsRepositoryImpl) GetAccountInfo(ctx context.Context) (entity.AccountInfo, error) {
	results, err := r.searchStream(ctx, accountInfoQuery())
	if err != nil {
		return entity.AccountInfo{}, err
	}
	for _, result := range results {
		if result.Customer != nil {
			return entity.AccountInfo{
				CustomerID:      result.Customer.ID,
				DescriptiveName: result.Customer.DescriptiveName,
			}, nil
		}
	}
	return entity.AccountInfo{}, fmt.Errorf("customer %s not found", r.customerID)
}

// GetAdGroups resolves exactly the given ad-group ids.
func (r *AdsRepositoryImpl) GetAdGroups(ctx context.Context, ids []int64) ([]entity.AdGroup, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	results, err := r.searchStream(ctx, adGroupLookupQuery(ids))
	if err != nil {
		return nil, err
	}

	adGroups := make([]entity.AdGroup, 0, len(results))
	for _, result := range results {
		if result.AdGroup == nil {
			continue
		}
		id, err := strconv.ParseInt(result.AdGroup.ID, 10, 64)
		if err != nil {
			r.logger.Warn().Str("ad_group_id", result.AdGroup.ID).Msg("skipping ad group with unparsable id")
			continue
		}
		adGroups = append(adGroups, entity.AdGroup{ID: id, Name: result.AdGroup.Name})
	}
	return adGroups, nil
}

// --- mutation wire types ---

type mutateCriteriaRequest struct {
	Operations []criterionOperation `json:"operations"`
}

type criterionOperation struct {
	Create *adGroupCriterionCreate `json:"create"`
}

type adGroupCriterionCreate struct {
	AdGroup  string        `json:"adGroup"`
	Negative bool          `json:"negative"`
	Keyword  keywordFields `json:"keyword"`
}

// CreateNegativeKeyword registers an exact-match negative keyword on the ad
// group. The phrase arrives bracketed ("[query]"); the API wants the bare
// text plus an EXACT match type.
func (r *AdsRepositoryImpl) CreateNegativeKeyword(ctx context.Context, adGroupID int64, phrase string) error {
	text := strings.TrimSuffix(strings.TrimPrefix(phrase, "["), "]")

	request := mutateCriteriaRequest{
		Operations: []criterionOperation{{
			Create: &adGroupCriterionCreate{
				AdGroup:  fmt.Sprintf("customers/%s/adGroups/%d", r.customerID, adGroupID),
				Negative: true,
				Keyword:  keywordFields{Text: text, MatchType: "EXACT"},
			},
		}},
	}

	path := fmt.Sprintf("/%s/customers/%s/adGroupCriteria:mutate", apiVersion, r.customerID)
	if _, err := r.post(ctx, path, request); err != nil {
		return fmt.Errorf("creating negative keyword %q on ad group %d: %w", phrase, adGroupID, err)
	}

	r.logger.Info().Int64("ad_group_id", adGroupID).Str("keyword", phrase).Msg("negative keyword created")
	return nil
}

// --- transport helpers ---

// searchStream posts a GAQL query and flattens the streamed chunks into a
// single result slice.
func (r *AdsRepositoryImpl) searchStream(ctx context.Context, query string) ([]searchResult, error) {
	path := fmt.Sprintf("/%s/customers/%s/googleAds:searchStream", apiVersion, r.customerID)
	body, err := r.post(ctx, path, searchStreamRequest{Query: query})
	if err != nil {
		return nil, err
	}

	var chunks []searchStreamChunk
	if err := json.Unmarshal(body, &chunks); err != nil {
		return nil, fmt.Errorf("decoding searchStream response: %w", err)
	}

	var results []searchResult
	for _, chunk := range chunks {
		results = append(results, chunk.Results...)
	}
	return results, nil
}

func (r *AdsRepositoryImpl) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+path, bytes.NewReader(requestBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", r.developerToken)
	if r.loginCustomerID != "" {
		req.Header.Set("login-customer-id", r.loginCustomerID)
	}

	r.logger.Debug().Str("path", path).Msg("google ads api request")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google ads api request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading google ads api response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google ads api returned %s: %s", resp.Status, truncateForError(responseBody))
	}

	return responseBody, nil
}

// criterionIDFromResourceName extracts the keyword criterion id from an
// adGroupCriteria resource name ("customers/1/adGroupCriteria/222~111").
func criterionIDFromResourceName(resourceName string) (int64, error) {
	idx := strings.LastIndex(resourceName, "~")
	if idx < 0 || idx == len(resourceName)-1 {
		return 0, fmt.Errorf("malformed ad group criterion resource name %q", resourceName)
	}
	return strconv.ParseInt(resourceName[idx+1:], 10, 64)
}

func truncateForError(body []byte) string {
	const max = 512
	s := string(body)
	if len(s) > max {
		return s[:max] + "..."
	}
	return strings.TrimSpace(s)
}
