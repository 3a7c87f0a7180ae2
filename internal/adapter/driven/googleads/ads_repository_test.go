package googleads

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppcraft/close-variant-negatives-go/internal/domain/entity"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *AdsRepositoryImpl {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &AdsRepositoryImpl{
		httpClient:      server.Client(),
		endpoint:        server.URL,
		customerID:      "1112223333",
		loginCustomerID: "9998887777",
		developerToken:  "dev-token",
		logger:          zerolog.Nop(),
	}
}

func mustDateRange(t *testing.T, raw string) entity.DateRange {
	t.Helper()
	dr, err := entity.ParseDateRange(raw)
	require.NoError(t, err)
	return dr
}

func TestKeywordPerformanceReport_DecodesStream(t *testing.T) {
	var gotPath, gotToken, gotLogin string
	var gotRequest searchStreamRequest

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("developer-token")
		gotLogin = r.Header.Get("login-customer-id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotRequest)

		io.WriteString(w, `[
			{"results": [
				{"adGroup": {"id": "222"}, "adGroupCriterion": {"criterionId": "111", "keyword": {"text": "buy shoes", "matchType": "EXACT"}}}
			]},
			{"results": [
				{"adGroup": {"id": "222"}, "adGroupCriterion": {"criterionId": "333", "keyword": {"text": "red shoes", "matchType": "EXACT"}}},
				{"adGroup": {"id": "bogus"}, "adGroupCriterion": {"criterionId": "444"}}
			]}
		]`)
	})

	cursor, err := repo.KeywordPerformanceReport(context.Background(), mustDateRange(t, "LAST_7_DAYS"))
	require.NoError(t, err)

	var rows []entity.KeywordRow
	for cursor.Next() {
		rows = append(rows, cursor.Row())
	}
	require.NoError(t, cursor.Err())

	// Chunks are flattened; the unparsable row is skipped.
	require.Len(t, rows, 2)
	assert.Equal(t, entity.KeywordRow{KeywordID: 111, AdGroupID: 222, KeywordText: "buy shoes"}, rows[0])
	assert.Equal(t, entity.KeywordRow{KeywordID: 333, AdGroupID: 222, KeywordText: "red shoes"}, rows[1])

	assert.Equal(t, "/v17/customers/1112223333/googleAds:searchStream", gotPath)
	assert.Equal(t, "dev-token", gotToken)
	assert.Equal(t, "9998887777", gotLogin)
	assert.Contains(t, gotRequest.Query, "FROM keyword_view")
}

func TestSearchTermPerformanceReport_MapsRows(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"results": [
			{
				"searchTermView": {"searchTerm": "buy red shoes"},
				"adGroup": {"id": "222", "name": "Shoes AG"},
				"campaign": {"id": "5", "name": "Shoes Exact"},
				"segments": {
					"searchTermMatchType": "NEAR_EXACT",
					"keyword": {
						"adGroupCriterion": "customers/1112223333/adGroupCriteria/222~111",
						"info": {"text": "buy shoes", "matchType": "EXACT"}
					}
				},
				"metrics": {"impressions": "10", "clicks": "3", "conversions": 2.0}
			}
		]}]`)
	})

	cursor, err := repo.SearchTermPerformanceReport(context.Background(), mustDateRange(t, "LAST_7_DAYS"), "")
	require.NoError(t, err)

	require.True(t, cursor.Next())
	row := cursor.Row()
	assert.Equal(t, entity.SearchTermRow{
		Query:                "buy red shoes",
		AdGroupID:            222,
		AdGroupName:          "Shoes AG",
		CampaignID:           5,
		CampaignName:         "Shoes Exact",
		KeywordID:            111,
		KeywordText:          "buy shoes",
		MatchTypeWithVariant: "Exact (close variant)",
		Impressions:          "10",
		Clicks:               "3",
		Conversions:          "2",
	}, row)
	assert.False(t, cursor.Next())
}

func TestGetAccountInfo(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"results": [
			{"customer": {"id": "1112223333", "descriptiveName": "Acme Shoes"}}
		]}]`)
	})

	account, err := repo.GetAccountInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.AccountInfo{CustomerID: "1112223333", DescriptiveName: "Acme Shoes"}, account)
}

func TestGetAdGroups_EmptyIDsSkipsRequest(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	adGroups, err := repo.GetAdGroups(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, adGroups)
}

func TestCreateNegativeKeyword_StripsBracketsAndPostsMutation(t *testing.T) {
	var gotPath string
	var gotRequest mutateCriteriaRequest

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotRequest)
		io.WriteString(w, `{"results": []}`)
	})

	err := repo.CreateNegativeKeyword(context.Background(), 222, "[buy red shoes]")
	require.NoError(t, err)

	assert.Equal(t, "/v17/customers/1112223333/adGroupCriteria:mutate", gotPath)
	require.Len(t, gotRequest.Operations, 1)
	create := gotRequest.Operations[0].Create
	require.NotNil(t, create)
	assert.Equal(t, "customers/1112223333/adGroups/222", create.AdGroup)
	assert.True(t, create.Negative)
	assert.Equal(t, keywordFields{Text: "buy red shoes", MatchType: "EXACT"}, create.Keyword)
}

func TestPost_NonOKStatusIsError(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"error": {"message": "developer token not approved"}}`)
	})

	_, err := repo.KeywordPerformanceReport(context.Background(), mustDateRange(t, "LAST_7_DAYS"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "developer token not approved")
}

func TestCriterionIDFromResourceName(t *testing.T) {
	id, err := criterionIDFromResourceName("customers/1/adGroupCriteria/222~111")
	require.NoError(t, err)
	assert.Equal(t, int64(111), id)

	for _, resource := range []string{"", "customers/1/adGroupCriteria/222", "customers/1/adGroupCriteria/222~"} {
		_, err := criterionIDFromResourceName(resource)
		assert.Error(t, err, resource)
	}
}
