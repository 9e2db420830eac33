package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"roasdash/adapters/tabular"
	"roasdash/app"
	"roasdash/domain/campaign"
	"roasdash/domain/metrics"
	"roasdash/internal"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// App is the server-rendered HTML dashboard. It consumes the same pipeline
// as the JSON API but renders the result set directly.
type App struct {
	router    *chi.Mux
	service   *app.DashboardService
	templates *template.Template
	logger    *internal.Logger
}

// NewApp creates the HTML dashboard application
func NewApp(service *app.DashboardService, logger *internal.Logger) (*App, error) {
	funcMap := template.FuncMap{
		"roas":     func(v float64) string { return fmt.Sprintf("%.2fx", v) },
		"money":    func(v float64) string { return fmt.Sprintf("₹%.0f", v) },
		"percent":  func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
		"round2":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"dateOnly": func(t time.Time) string { return t.Format("2006-01-02") },
		"markdown": renderMarkdown,
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		service:   service,
		templates: templates,
		logger:    logger,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleDashboard)
	a.router.Get("/templates/{kind}", a.handleTemplateDownload)
}

// Run starts the HTML dashboard listener
func (a *App) Run(port string) error {
	a.logger.Info("dashboard listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

// Router exposes the chi mux for tests
func (a *App) Router() *chi.Mux {
	return a.router
}

// dashboardView is the template model for the main page
type dashboardView struct {
	Overview   metrics.Overview
	Lift       metrics.LiftResult
	Insights   []template.HTML
	Rows       []app.DetailedRow
	BrandROAS  []metrics.GroupedROAS
	SampleData bool
	Filter     metrics.Filter
	Kinds      []campaign.DatasetKind
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	// The HTML app is stateless across requests: every page load is its own
	// session over sample data unless a filter query narrows the view
	sess := a.service.Store().Create()
	defer a.service.Store().Drop(sess.ID)

	filter := metrics.Filter{
		Brand:    r.URL.Query().Get("brand"),
		Platform: r.URL.Query().Get("platform"),
		Tier:     campaign.Tier(r.URL.Query().Get("tier")),
	}

	snap := a.service.Compute(sess, filter)
	data := a.service.Store().Dataset(sess)

	view := dashboardView{
		Overview:   snap.Overview,
		Lift:       snap.Lift,
		Rows:       app.DetailedView(snap.Rows, data.Influencers),
		BrandROAS:  snap.BrandROAS,
		SampleData: snap.SampleData,
		Filter:     filter,
		Kinds:      campaign.AllKinds(),
	}
	for _, insight := range snap.Insights {
		view.Insights = append(view.Insights, renderMarkdown(insight))
	}

	if err := a.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		a.logger.Error("dashboard render failed: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func (a *App) handleTemplateDownload(w http.ResponseWriter, r *http.Request) {
	kind, err := campaign.ParseDatasetKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, "unknown dataset kind", http.StatusBadRequest)
		return
	}

	content, ok := tabular.Template(kind)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_template.csv", kind))
	fmt.Fprint(w, content)
}

// renderMarkdown converts an insight's markdown emphasis to safe HTML
func renderMarkdown(text string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	out := markdown.ToHTML([]byte(text), p, renderer)
	return template.HTML(strings.TrimSpace(string(out)))
}
