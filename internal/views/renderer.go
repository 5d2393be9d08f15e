// Package views renders the console page and its result fragments with html/template.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"lookup-console/internal/models"
	"lookup-console/internal/phone"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Template names understood by Render
const (
	PageTemplate  = "page"
	ErrorTemplate = "error"
)

// Renderer turns backend data into escaped HTML
type Renderer struct {
	templates *template.Template
	phones    *phone.Normalizer
}

// NewRenderer parses the embedded templates. Phone numbers valid for region
// are rendered as tel: links.
func NewRenderer(region string) (*Renderer, error) {
	tmpl, err := template.New("console").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse console templates: %w", err)
	}

	return &Renderer{
		templates: tmpl,
		phones:    phone.NewNormalizer(region),
	}, nil
}

// MustNewRenderer is NewRenderer for callers that cannot recover from a broken template set
func MustNewRenderer(region string) *Renderer {
	r, err := NewRenderer(region)
	if err != nil {
		panic(err)
	}
	return r
}

// Static returns the embedded stylesheet directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

type phoneView struct {
	Text string
	Href template.URL
}

type internalView struct {
	Name       string
	NationalID string
	TaxID      string
	Email      string
	BirthDate  string
	Phones     []phoneView
}

type externalView struct {
	Links  []string
	Phones string
	Emails string
}

// Internal renders the internal record list. An empty list renders the
// "No hay resultados." notice.
func (r *Renderer) Internal(records []models.InternalRecord) (template.HTML, error) {
	views := make([]internalView, 0, len(records))
	for _, rec := range records {
		views = append(views, internalView{
			Name:       rec.Name,
			NationalID: rec.NationalID,
			TaxID:      rec.TaxID,
			Email:      rec.Email,
			BirthDate:  rec.BirthDate,
			Phones:     r.phoneViews(rec.DisplayPhones()),
		})
	}
	return r.fragment("internal", views)
}

// External renders the enrichment summary; each empty part gets its own placeholder
func (r *Renderer) External(summary models.ExternalSummary) (template.HTML, error) {
	return r.fragment("external", externalView{
		Links:  summary.Links,
		Phones: strings.Join(summary.Phones, " | "),
		Emails: strings.Join(summary.Emails, " | "),
	})
}

// History renders the past-queries table
func (r *Renderer) History(entries []models.HistoryEntry) (template.HTML, error) {
	return r.fragment("history", entries)
}

// Records renders the raw-record table
func (r *Renderer) Records(rows []models.RawRecord) (template.HTML, error) {
	return r.fragment("records", rows)
}

func (r *Renderer) phoneViews(phones []string) []phoneView {
	views := make([]phoneView, 0, len(phones))
	for _, p := range phones {
		v := phoneView{Text: p}
		if uri, ok := r.phones.TelURI(p); ok {
			// E.164 digits only
			v.Href = template.URL(uri)
		}
		views = append(views, v)
	}
	return views
}

func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s fragment: %w", name, err)
	}
	// output of html/template is already escaped
	return template.HTML(buf.String()), nil
}
