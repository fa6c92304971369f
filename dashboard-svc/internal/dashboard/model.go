package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	MsgMissingInput     = "Please enter both business name and location."
	MsgFetchFailed      = "Failed to fetch business data"
	MsgRegenerateFailed = "Failed to regenerate headline"
)

var (
	ErrBusy         = errors.New("a request is already in progress")
	ErrMissingInput = errors.New("business name and location are required")
)

// ViewState is everything one render of the page needs.
type ViewState struct {
	BusinessName string
	Location     string
	Rating       float64
	Reviews      int
	Headline     string
	Loading      bool
	Error        string
	ShowData     bool
}

// Model drives the form through idle, loading, results and error states.
// Only one request may be in flight at a time.
type Model struct {
	client BusinessClient
	log    *zap.Logger

	mu    sync.Mutex
	state ViewState
}

func NewModel(client BusinessClient, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	return &Model{client: client, log: log}
}

func (m *Model) State() ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SetInput mirrors the text fields.
func (m *Model) SetInput(name, location string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.BusinessName = name
	m.state.Location = location
}

// Restore puts previously fetched results back on screen.
func (m *Model) Restore(data BusinessData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Rating = data.Rating
	m.state.Reviews = data.Reviews
	m.state.Headline = data.Headline
	m.state.ShowData = true
}

func (m *Model) Submit(ctx context.Context) error {
	m.mu.Lock()
	if m.state.Loading {
		m.mu.Unlock()
		return ErrBusy
	}
	m.state.Error = ""
	name, location := m.state.BusinessName, m.state.Location
	if strings.TrimSpace(name) == "" || strings.TrimSpace(location) == "" {
		m.state.Error = MsgMissingInput
		m.mu.Unlock()
		return ErrMissingInput
	}
	m.state.Loading = true
	m.mu.Unlock()

	data, err := m.client.FetchBusinessData(ctx, name, location)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = false
	if err != nil {
		m.log.Warn("fetch business data failed", zap.Error(err))
		m.state.Error = MsgFetchFailed
		m.state.ShowData = false
		return err
	}
	m.state.Rating = data.Rating
	m.state.Reviews = data.Reviews
	m.state.Headline = data.Headline
	m.state.ShowData = true
	return nil
}

// Regenerate replaces only the headline, using whatever is currently in
// the name and location fields.
func (m *Model) Regenerate(ctx context.Context) error {
	m.mu.Lock()
	if m.state.Loading {
		m.mu.Unlock()
		return ErrBusy
	}
	m.state.Error = ""
	m.state.Loading = true
	name, location := m.state.BusinessName, m.state.Location
	m.mu.Unlock()

	headline, err := m.client.RegenerateHeadline(ctx, name, location)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = false
	if err != nil {
		m.log.Warn("regenerate headline failed", zap.Error(err))
		m.state.Error = MsgRegenerateFailed
		return err
	}
	m.state.Headline = headline
	return nil
}
