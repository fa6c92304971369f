package tests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"local-business-dashboard/dashboard-svc/internal/dashboard"
	"local-business-dashboard/dashboard-svc/internal/gateway"
	"local-business-dashboard/dashboard-svc/internal/mocks"
)

func sampleData() *dashboard.BusinessData {
	return &dashboard.BusinessData{
		Rating:   4.3,
		Reviews:  275,
		Headline: "Why Cake Shop is Oslo's Sunday Favorite in 2025",
	}
}

func TestModel_Submit(t *testing.T) {
	client := mocks.NewBusinessClient(t)
	client.On("FetchBusinessData", mock.Anything, "Cake Shop", "Oslo").Return(sampleData(), nil).Once()

	model := dashboard.NewModel(client, zap.NewNop())
	model.SetInput("Cake Shop", "Oslo")

	require.NoError(t, model.Submit(context.Background()))

	state := model.State()
	assert.True(t, state.ShowData)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.Equal(t, 4.3, state.Rating)
	assert.Equal(t, 275, state.Reviews)
	assert.Equal(t, "Why Cake Shop is Oslo's Sunday Favorite in 2025", state.Headline)
}

func TestModel_Submit_BlankInput(t *testing.T) {
	tests := []struct {
		name     string
		business string
		location string
	}{
		{name: "both empty", business: "", location: ""},
		{name: "whitespace name", business: "   ", location: "Oslo"},
		{name: "whitespace location", business: "Cake Shop", location: "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewBusinessClient(t)
			model := dashboard.NewModel(client, zap.NewNop())
			model.SetInput(tt.business, tt.location)

			err := model.Submit(context.Background())

			assert.ErrorIs(t, err, dashboard.ErrMissingInput)
			assert.Equal(t, dashboard.MsgMissingInput, model.State().Error)
			assert.False(t, model.State().ShowData)
			client.AssertNotCalled(t, "FetchBusinessData", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestModel_Submit_FailureHidesResults(t *testing.T) {
	client := mocks.NewBusinessClient(t)
	client.On("FetchBusinessData", mock.Anything, "Cake Shop", "Oslo").Return(sampleData(), nil).Once()
	client.On("FetchBusinessData", mock.Anything, "Cake Shop", "Oslo").Return(nil, errors.New("connection refused")).Once()

	model := dashboard.NewModel(client, zap.NewNop())
	model.SetInput("Cake Shop", "Oslo")
	require.NoError(t, model.Submit(context.Background()))

	assert.Error(t, model.Submit(context.Background()))

	state := model.State()
	assert.Equal(t, dashboard.MsgFetchFailed, state.Error)
	assert.False(t, state.ShowData)
	assert.False(t, state.Loading)
}

func TestModel_Regenerate_ReplacesOnlyHeadline(t *testing.T) {
	client := mocks.NewBusinessClient(t)
	client.On("FetchBusinessData", mock.Anything, "Cake Shop", "Oslo").Return(sampleData(), nil).Once()
	client.On("RegenerateHeadline", mock.Anything, "Bread Shop", "Bergen").Return("Bread Shop: Bergen's Best Kept Secret", nil).Once()

	model := dashboard.NewModel(client, zap.NewNop())
	model.SetInput("Cake Shop", "Oslo")
	require.NoError(t, model.Submit(context.Background()))

	// Regenerate uses the field values as they are now, not as submitted.
	model.SetInput("Bread Shop", "Bergen")
	require.NoError(t, model.Regenerate(context.Background()))

	state := model.State()
	assert.Equal(t, "Bread Shop: Bergen's Best Kept Secret", state.Headline)
	assert.Equal(t, 4.3, state.Rating)
	assert.Equal(t, 275, state.Reviews)
	assert.True(t, state.ShowData)
}

func TestModel_Regenerate_FailureKeepsResults(t *testing.T) {
	client := mocks.NewBusinessClient(t)
	client.On("RegenerateHeadline", mock.Anything, "Cake Shop", "Oslo").Return("", errors.New("status 500")).Once()

	model := dashboard.NewModel(client, zap.NewNop())
	model.SetInput("Cake Shop", "Oslo")
	model.Restore(*sampleData())

	assert.Error(t, model.Regenerate(context.Background()))

	state := model.State()
	assert.Equal(t, dashboard.MsgRegenerateFailed, state.Error)
	assert.True(t, state.ShowData)
	assert.Equal(t, "Why Cake Shop is Oslo's Sunday Favorite in 2025", state.Headline)
	assert.False(t, state.Loading)
}

func TestModel_RejectsRequestsWhileLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	client := mocks.NewBusinessClient(t)
	client.On("FetchBusinessData", mock.Anything, "Cake Shop", "Oslo").
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(sampleData(), nil).Once()

	model := dashboard.NewModel(client, zap.NewNop())
	model.SetInput("Cake Shop", "Oslo")

	done := make(chan error, 1)
	go func() { done <- model.Submit(context.Background()) }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("first request never reached the client")
	}

	assert.True(t, model.State().Loading)
	assert.ErrorIs(t, model.Submit(context.Background()), dashboard.ErrBusy)
	assert.ErrorIs(t, model.Regenerate(context.Background()), dashboard.ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, model.State().Loading)
}

func setupDashboard(client dashboard.BusinessClient) http.Handler {
	gw := gateway.NewGateway(gateway.Config{BusinessSvcURL: "http://business-svc"}, nil, zap.NewNop())
	return gw.SetupRoutes(dashboard.NewPages(client, zap.NewNop()))
}

func postForm(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestPages_Index(t *testing.T) {
	handler := setupDashboard(mocks.NewBusinessClient(t))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "Local Business Dashboard")
	assert.Contains(t, body, "Get Business Data")
	assert.NotContains(t, body, "SEO Tips")
}

func TestPages_Submit(t *testing.T) {
	client := mocks.NewBusinessClient(t)
	client.On("FetchBusinessData", mock.Anything, "Cake Shop", "Oslo").Return(sampleData(), nil).Once()

	rr := postForm(setupDashboard(client), "/", url.Values{
		"business_name": {"Cake Shop"},
		"location":      {"Oslo"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "4.3&#9733;")
	assert.Contains(t, body, "Number of Reviews: 275")
	assert.Contains(t, body, "Regenerate SEO Headline")
	assert.Contains(t, body, "SEO Tips")
	assert.Contains(t, body, "Include your location to improve local SEO.")
	assert.Contains(t, body, "[12,19,14,20,25,275]")
	assert.Contains(t, body, "/review-qrcode?")
}

func TestPages_Submit_Blank(t *testing.T) {
	client := mocks.NewBusinessClient(t)

	rr := postForm(setupDashboard(client), "/", url.Values{
		"business_name": {"  "},
		"location":      {"Oslo"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Please enter both business name and location.")
	client.AssertNotCalled(t, "FetchBusinessData", mock.Anything, mock.Anything, mock.Anything)
}

func TestPages_Submit_Failure(t *testing.T) {
	client := mocks.NewBusinessClient(t)
	client.On("FetchBusinessData", mock.Anything, "Cake Shop", "Oslo").Return(nil, errors.New("boom")).Once()

	rr := postForm(setupDashboard(client), "/", url.Values{
		"business_name": {"Cake Shop"},
		"location":      {"Oslo"},
	})

	body := rr.Body.String()
	assert.Contains(t, body, "Failed to fetch business data")
	assert.NotContains(t, body, "Number of Reviews")
}

func TestPages_Submit_EscapesOutput(t *testing.T) {
	client := mocks.NewBusinessClient(t)
	client.On("FetchBusinessData", mock.Anything, "<script>alert(1)</script>", "Oslo").Return(&dashboard.BusinessData{
		Rating:   3.5,
		Reviews:  50,
		Headline: "<script>alert(1)</script>: Oslo's Best Kept Secret",
	}, nil).Once()

	rr := postForm(setupDashboard(client), "/", url.Values{
		"business_name": {"<script>alert(1)</script>"},
		"location":      {"Oslo"},
	})

	body := rr.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestPages_Regenerate(t *testing.T) {
	client := mocks.NewBusinessClient(t)
	client.On("RegenerateHeadline", mock.Anything, "Cake Shop", "Oslo").Return("Discover Cake Shop in Oslo", nil).Once()

	rr := postForm(setupDashboard(client), "/regenerate", url.Values{
		"business_name": {"Cake Shop"},
		"location":      {"Oslo"},
		"rating":        {"4.5"},
		"reviews":       {"120"},
		"headline":      {"Old Headline"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Discover Cake Shop in Oslo")
	assert.NotContains(t, body, "Old Headline")
	assert.Contains(t, body, "4.5&#9733;")
	assert.Contains(t, body, "Number of Reviews: 120")
	assert.Contains(t, body, "[12,19,14,20,25,120]")
}

func TestPages_Regenerate_FailureKeepsResults(t *testing.T) {
	client := mocks.NewBusinessClient(t)
	client.On("RegenerateHeadline", mock.Anything, "Cake Shop", "Oslo").Return("", errors.New("boom")).Once()

	rr := postForm(setupDashboard(client), "/regenerate", url.Values{
		"business_name": {"Cake Shop"},
		"location":      {"Oslo"},
		"rating":        {"4.5"},
		"reviews":       {"120"},
		"headline":      {"Old Headline"},
	})

	body := rr.Body.String()
	assert.Contains(t, body, "Failed to regenerate headline")
	assert.Contains(t, body, "Old Headline")
	assert.Contains(t, body, "Number of Reviews: 120")
}

func TestPages_Health(t *testing.T) {
	rr := httptest.NewRecorder()
	setupDashboard(mocks.NewBusinessClient(t)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "dashboard-svc")
}
