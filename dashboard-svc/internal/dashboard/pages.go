package dashboard

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{
			"rating": func(r float64) string { return strconv.FormatFloat(r, 'f', -1, 64) },
		}).
		ParseFS(templatesFS, "templates/index.html"),
)

type pageData struct {
	State     ViewState
	Tips      []string
	Chart     Chart
	QRCodeURL string
}

type Pages struct {
	client BusinessClient
	log    *zap.Logger
}

func NewPages(client BusinessClient, log *zap.Logger) *Pages {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pages{client: client, log: log}
}

func (p *Pages) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", p.Index).Methods("GET")
	r.HandleFunc("/", p.Submit).Methods("POST")
	r.HandleFunc("/regenerate", p.Regenerate).Methods("POST")
}

func (p *Pages) Index(w http.ResponseWriter, r *http.Request) {
	p.render(w, NewModel(p.client, p.log).State())
}

func (p *Pages) Submit(w http.ResponseWriter, r *http.Request) {
	model := NewModel(p.client, p.log)
	if err := r.ParseForm(); err == nil {
		model.SetInput(r.PostFormValue("business_name"), r.PostFormValue("location"))
	}

	// Failures are already reflected in the view state.
	_ = model.Submit(r.Context())
	p.render(w, model.State())
}

func (p *Pages) Regenerate(w http.ResponseWriter, r *http.Request) {
	model := NewModel(p.client, p.log)
	if err := r.ParseForm(); err == nil {
		model.SetInput(r.PostFormValue("business_name"), r.PostFormValue("location"))
		if data, ok := restoredResults(r); ok {
			model.Restore(data)
		}
	}

	_ = model.Regenerate(r.Context())
	p.render(w, model.State())
}

// restoredResults reads the hidden fields carrying the last fetch.
func restoredResults(r *http.Request) (BusinessData, bool) {
	rating, err := strconv.ParseFloat(r.PostFormValue("rating"), 64)
	if err != nil {
		return BusinessData{}, false
	}
	reviews, err := strconv.Atoi(r.PostFormValue("reviews"))
	if err != nil {
		return BusinessData{}, false
	}
	return BusinessData{
		Rating:   rating,
		Reviews:  reviews,
		Headline: r.PostFormValue("headline"),
	}, true
}

func (p *Pages) render(w http.ResponseWriter, state ViewState) {
	data := pageData{
		State: state,
		Tips:  SEOTips(),
		Chart: ReviewTrend(state.Reviews),
	}
	if state.ShowData {
		query := url.Values{}
		query.Set("name", state.BusinessName)
		query.Set("location", state.Location)
		data.QRCodeURL = "/review-qrcode?" + query.Encode()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		p.log.Error("failed to render dashboard", zap.Error(err))
	}
}
