package tests

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"local-business-dashboard/business-svc/internal/domain"
	"local-business-dashboard/business-svc/internal/mocks"
	"local-business-dashboard/business-svc/internal/service"
)

type stubRandomizer struct {
	rating  float64
	reviews int
	calls   int
}

func (s *stubRandomizer) Rating() float64 {
	s.calls++
	return s.rating
}

func (s *stubRandomizer) Reviews() int {
	s.calls++
	return s.reviews
}

type stubHeadlines struct {
	index int
}

func (s *stubHeadlines) Generate(name, location string) domain.Headline {
	return domain.Headline{Text: name + " @ " + location, TemplateIndex: s.index}
}

type stubQR struct {
	png []byte
}

func (s stubQR) Generate(name, location string) ([]byte, error) {
	return s.png, nil
}

func TestBusinessService_FetchBusinessData(t *testing.T) {
	randomizer := &stubRandomizer{rating: 4.7, reviews: 321}
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewBusinessService(randomizer, &stubHeadlines{index: 4}, stubQR{}, publisher, zap.NewNop())

	publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(event domain.GenerationEvent) bool {
		return event.Type == domain.EventBusinessDataGenerated &&
			event.Name == "Joe's Pizza" &&
			event.Location == "Austin" &&
			event.TemplateIndex == 4 &&
			event.Rating != nil && *event.Rating == 4.7 &&
			event.Reviews != nil && *event.Reviews == 321 &&
			!event.Timestamp.IsZero()
	})).Return(nil).Once()

	data, err := svc.FetchBusinessData(context.Background(), domain.BusinessQuery{Name: "Joe's Pizza", Location: "Austin"})
	require.NoError(t, err)
	assert.Equal(t, &domain.BusinessData{Rating: 4.7, Reviews: 321, Headline: "Joe's Pizza @ Austin"}, data)
	assert.Equal(t, 2, randomizer.calls)
}

func TestBusinessService_FetchBusinessData_MissingInput(t *testing.T) {
	tests := []struct {
		name  string
		query domain.BusinessQuery
	}{
		{name: "both empty", query: domain.BusinessQuery{}},
		{name: "no name", query: domain.BusinessQuery{Location: "Austin"}},
		{name: "no location", query: domain.BusinessQuery{Name: "Joe"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			randomizer := &stubRandomizer{}
			publisher := mocks.NewEventPublisher(t)
			svc := service.NewBusinessService(randomizer, &stubHeadlines{}, stubQR{}, publisher, zap.NewNop())

			data, err := svc.FetchBusinessData(context.Background(), testCase.query)
			assert.Nil(t, data)
			assert.ErrorIs(t, err, service.ErrMissingBusinessData)
			assert.Zero(t, randomizer.calls)
			publisher.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestBusinessService_RegenerateHeadline_NeverTouchesMetrics(t *testing.T) {
	randomizer := &stubRandomizer{rating: 4.0, reviews: 100}
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewBusinessService(randomizer, &stubHeadlines{index: 2}, stubQR{}, publisher, zap.NewNop())

	publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(event domain.GenerationEvent) bool {
		return event.Type == domain.EventHeadlineRegenerated &&
			event.TemplateIndex == 2 &&
			event.Rating == nil &&
			event.Reviews == nil
	})).Return(nil).Once()

	resp, err := svc.RegenerateHeadline(context.Background(), domain.BusinessQuery{Name: "Joe", Location: "Austin"})
	require.NoError(t, err)
	assert.Equal(t, "Joe @ Austin", resp.Headline)
	assert.Zero(t, randomizer.calls)
}

func TestBusinessService_RegenerateHeadline_MissingInput(t *testing.T) {
	svc := service.NewBusinessService(&stubRandomizer{}, &stubHeadlines{}, stubQR{}, nil, zap.NewNop())

	resp, err := svc.RegenerateHeadline(context.Background(), domain.BusinessQuery{Name: "Joe"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, service.ErrMissingQueryParams)
}

func TestBusinessService_PublishFailureDoesNotFailRequest(t *testing.T) {
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewBusinessService(&stubRandomizer{rating: 3.9, reviews: 77}, &stubHeadlines{}, stubQR{}, publisher, zap.NewNop())

	publisher.On("PublishEvent", mock.Anything, mock.Anything).Return(assert.AnError).Twice()

	data, err := svc.FetchBusinessData(context.Background(), domain.BusinessQuery{Name: "A", Location: "B"})
	require.NoError(t, err)
	assert.Equal(t, 77, data.Reviews)

	_, err = svc.RegenerateHeadline(context.Background(), domain.BusinessQuery{Name: "A", Location: "B"})
	assert.NoError(t, err)
}

func TestBusinessService_NilPublisher(t *testing.T) {
	svc := service.NewBusinessService(&stubRandomizer{rating: 5.0, reviews: 500}, &stubHeadlines{}, stubQR{}, nil, nil)

	data, err := svc.FetchBusinessData(context.Background(), domain.BusinessQuery{Name: "A", Location: "B"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, data.Rating)
}

func TestBusinessService_ReviewQRCode(t *testing.T) {
	svc := service.NewBusinessService(&stubRandomizer{}, &stubHeadlines{}, stubQR{png: []byte("png")}, nil, zap.NewNop())

	png, err := svc.ReviewQRCode(domain.BusinessQuery{Name: "A", Location: "B"})
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = svc.ReviewQRCode(domain.BusinessQuery{Name: "A"})
	assert.ErrorIs(t, err, service.ErrMissingQueryParams)
}

func TestDefaultQRGenerator_ReviewLink(t *testing.T) {
	gen := service.DefaultQRGenerator{SearchURL: "https://www.google.com/search"}

	link, err := gen.ReviewLink("Joe's Pizza", "Austin")
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", parsed.Host)
	assert.Equal(t, "Joe's Pizza Austin reviews", parsed.Query().Get("q"))
}

func TestDefaultQRGenerator_Generate(t *testing.T) {
	gen := service.DefaultQRGenerator{SearchURL: "https://www.google.com/search", Size: 128}

	png, err := gen.Generate("Joe's Pizza", "Austin")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = service.DefaultQRGenerator{SearchURL: "://bad"}.Generate("A", "B")
	assert.Error(t, err)
}
