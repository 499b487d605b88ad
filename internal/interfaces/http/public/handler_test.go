package public

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/havenrealty/listings-api/internal/catalog/application"
	"github.com/havenrealty/listings-api/internal/catalog/fixture"
	"github.com/havenrealty/listings-api/internal/infrastructure/memory"
	inquiryapp "github.com/havenrealty/listings-api/internal/inquiry/application"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, err := catalogapp.NewStore(fixture.Properties(), fixture.Agents())
	require.NoError(t, err)

	inquiries := inquiryapp.NewCommandService(inquiryapp.Config{
		Repository: memory.NewInquiryRepository(),
		Failures:   memory.NewFailedNotificationRepository(),
		Properties: store,
		Receipts:   inquiryapp.NewReceiptIssuer([]byte("test-secret"), "listings-api-test", time.Hour),
		Logger:     logger,
	})

	r := chi.NewRouter()
	NewHandler(Config{
		Logger:    logger,
		Listings:  catalogapp.NewQueryService(store),
		Inquiries: inquiries,
	}).Register(r)
	return r
}

func get(t *testing.T, h http.Handler, target string, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func itemIDs(items []propertyResponse) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestPropertyList(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "everything", query: "", want: []string{"prop-1", "prop-2", "prop-3", "prop-4", "prop-5", "prop-6", "prop-7", "prop-8"}},
		{name: "plural type and bedrooms", query: "?type=houses&bedrooms=5", want: []string{"prop-1", "prop-5"}},
		{name: "comma list of types", query: "?type=apartment,condo", want: []string{"prop-2", "prop-4", "prop-6"}},
		{name: "amenities are canonicalised", query: "?amenities=pool,smart%20home", want: []string{"prop-1", "prop-8"}},
		{name: "zero bedrooms is a real bound", query: "?bedrooms=0&priceMax=2000", want: []string{"prop-6"}},
		{name: "empty parameters are absent", query: "?priceMin=&bedrooms=&city=", want: []string{"prop-1", "prop-2", "prop-3", "prop-4", "prop-5", "prop-6", "prop-7", "prop-8"}},
		{name: "status", query: "?status=Pending", want: []string{"prop-7"}},
		{name: "free text", query: "?query=lakefront", want: []string{"prop-1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var resp propertyListResponse
			require.Equal(t, http.StatusOK, get(t, router, "/properties"+tc.query, &resp))
			assert.Equal(t, tc.want, itemIDs(resp.Items))
			assert.Equal(t, len(tc.want), resp.Total)
		})
	}
}

func TestPropertyListPagination(t *testing.T) {
	router := newTestRouter(t)

	var resp propertyListResponse
	require.Equal(t, http.StatusOK, get(t, router, "/properties?page=2&limit=3", &resp))
	assert.Equal(t, []string{"prop-4", "prop-5", "prop-6"}, itemIDs(resp.Items))
	assert.Equal(t, 8, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 3, resp.Limit)

	require.Equal(t, http.StatusOK, get(t, router, "/properties?page=9&limit=3", &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, 8, resp.Total)
	var far propertyListResponse
	require.Equal(t, http.StatusOK, get(t, router, "/properties?page=92233720368547760&limit=100", &far))
	assert.Empty(t, far.Items)
	assert.Equal(t, 8, far.Total)
}

func TestPropertyListRejectsMalformedParameters(t *testing.T) {
	router := newTestRouter(t)

	for _, query := range []string{"priceMin=cheap", "bedrooms=2.5", "type=castle", "status=demolished", "squareFeetMax=-1"} {
		assert.Equal(t, http.StatusBadRequest, get(t, router, "/properties?"+query, nil), query)
	}
}

func TestPropertyDetail(t *testing.T) {
	router := newTestRouter(t)

	var resp propertyDetailResponse
	require.Equal(t, http.StatusOK, get(t, router, "/properties/prop-1", &resp))
	assert.Equal(t, "prop-1", resp.Property.ID)
	assert.Equal(t, "$2,450,000", resp.Property.FormattedPrice)
	assert.Equal(t, "For Sale", resp.Property.PriceTypeLabel)
	assert.Equal(t, "agent-1", resp.Agent.ID)
	assert.Equal(t, []string{"prop-3", "prop-5", "prop-8"}, itemIDs(resp.Similar))
	require.NotNil(t, resp.PricePerSquareFoot)
	assert.Equal(t, 510, *resp.PricePerSquareFoot)
	assert.Equal(t, "$510/sqft", resp.FormattedPricePerSqFt)
	assert.Equal(t, "America/Los_Angeles", resp.TimeZone)

	require.Equal(t, http.StatusOK, get(t, router, "/properties/prop-4", &resp))
	assert.Equal(t, "$5,500/mo", resp.Property.FormattedPrice)

	assert.Equal(t, http.StatusNotFound, get(t, router, "/properties/prop-404", nil))
	assert.Equal(t, http.StatusNotFound, get(t, router, "/properties/prop-404/similar", nil))
}

func TestFeaturedAndSimilar(t *testing.T) {
	router := newTestRouter(t)

	var resp struct {
		Items []propertyResponse `json:"items"`
	}
	require.Equal(t, http.StatusOK, get(t, router, "/properties/featured", &resp))
	assert.Equal(t, []string{"prop-1", "prop-2", "prop-3", "prop-5", "prop-8"}, itemIDs(resp.Items))

	require.Equal(t, http.StatusOK, get(t, router, "/properties/featured?limit=2", &resp))
	assert.Equal(t, []string{"prop-1", "prop-2"}, itemIDs(resp.Items))

	require.Equal(t, http.StatusOK, get(t, router, "/properties/prop-1/similar?limit=1", &resp))
	assert.Equal(t, []string{"prop-3"}, itemIDs(resp.Items))
}

func TestPropertyNearby(t *testing.T) {
	router := newTestRouter(t)

	var resp struct {
		Items []nearbyPropertyResponse `json:"items"`
	}
	require.Equal(t, http.StatusOK, get(t, router, "/properties/nearby?lat=34.05&lng=-118.25&radius=50", &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "prop-6", resp.Items[0].ID)
	assert.Equal(t, "prop-8", resp.Items[1].ID)
	assert.Less(t, resp.Items[0].DistanceMiles, resp.Items[1].DistanceMiles)

	assert.Equal(t, http.StatusBadRequest, get(t, router, "/properties/nearby?lng=-118.25", nil))
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/properties/nearby?lat=95&lng=0", nil))
}

func TestAgents(t *testing.T) {
	router := newTestRouter(t)

	var roster struct {
		Items []agentSummaryResponse `json:"items"`
	}
	require.Equal(t, http.StatusOK, get(t, router, "/agents", &roster))
	require.Len(t, roster.Items, 2)
	assert.Equal(t, "agent-1", roster.Items[0].ID)
	assert.Equal(t, 5, roster.Items[0].ListingCount)

	var profile agentProfileResponse
	require.Equal(t, http.StatusOK, get(t, router, "/agents/agent-2", &profile))
	assert.Equal(t, []string{"prop-2", "prop-4", "prop-6"}, itemIDs(profile.Listings))

	assert.Equal(t, http.StatusNotFound, get(t, router, "/agents/agent-9", nil))
}

func TestTaxonomy(t *testing.T) {
	router := newTestRouter(t)

	var resp taxonomyResponse
	require.Equal(t, http.StatusOK, get(t, router, "/amenities", &resp))
	assert.Contains(t, resp.Amenities, "Pool")
	assert.Len(t, resp.PropertyTypes, 6)
	assert.Equal(t, propertyTypeOption{Value: "house", Label: "House"}, resp.PropertyTypes[0])
}

func TestInquiryRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	body := `{"kind":"property","name":"Dana Reyes","email":"dana@example.com","message":"Is the dock shared?","propertyId":"prop-1"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inquiries", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created inquiryCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "new", created.Status)
	require.NotEmpty(t, created.Receipt)

	var status inquiryStatusResponse
	require.Equal(t, http.StatusOK, get(t, router, "/inquiries/status?receipt="+created.Receipt, &status))
	assert.Equal(t, created.ID, status.ID)
	assert.Equal(t, "prop-1", status.PropertyID)
	assert.Equal(t, "agent-1", status.AgentID)

	assert.Equal(t, http.StatusUnauthorized, get(t, router, "/inquiries/status?receipt=not-a-token", nil))
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/inquiries/status", nil))
}

func TestInquiryRejectsBadPayloads(t *testing.T) {
	router := newTestRouter(t)

	for name, body := range map[string]string{
		"not json":         `{"name":`,
		"unknown field":    `{"name":"A","email":"a@example.com","message":"hi","kind":"general","extra":true}`,
		"bad email":        `{"kind":"general","name":"A","email":"nope","message":"hi"}`,
		"unknown property": `{"kind":"property","name":"A","email":"a@example.com","message":"hi","propertyId":"prop-404"}`,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inquiries", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}
