package api

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/phrazzld/escribe/internal/api/shared"
	"github.com/phrazzld/escribe/internal/domain"
	"github.com/phrazzld/escribe/internal/platform/logger"
	"github.com/phrazzld/escribe/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

// pageData is what the compose page template renders.
type pageData struct {
	Tipo     string
	Tema     string
	Estilo   string
	Longitud string

	// HasResult separates an empty completion from the initial state.
	HasResult bool
	Resultado string

	Error   string
	TraceID string
}

// FormHandler serves the compose page.
type FormHandler struct {
	composer service.ComposeService
	page     *template.Template
}

// NewFormHandler creates a FormHandler backed by composer.
func NewFormHandler(composer service.ComposeService) (*FormHandler, error) {
	if composer == nil {
		return nil, errors.New("compose service cannot be nil")
	}

	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	return &FormHandler{composer: composer, page: page}, nil
}

// ShowForm handles GET / and renders the empty form.
func (h *FormHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageData{})
}

// Submit handles POST / requests.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, shared.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		shared.LogError(r, http.StatusBadRequest, "unreadable form", err)
		h.render(w, r, http.StatusBadRequest, pageData{
			Error:   "No se pudo leer el formulario.",
			TraceID: shared.GetTraceID(r.Context()),
		})
		return
	}

	// Only keys actually submitted are passed on, so an absent field is
	// reported as missing rather than empty.
	fields := make(domain.Fields, len(domain.RequiredFields))
	for _, key := range domain.RequiredFields {
		if r.PostForm.Has(key) {
			fields[key] = r.PostForm.Get(key)
		}
	}

	data := pageData{
		Tipo:     fields[domain.FieldContentType],
		Tema:     fields[domain.FieldTopic],
		Estilo:   fields[domain.FieldStyle],
		Longitud: fields[domain.FieldTargetLength],
	}

	result, err := h.composer.HandleSubmission(r.Context(), fields)
	if err != nil {
		status := MapErrorToStatusCode(err)
		data.Error = GetSafeErrorMessage(err)
		data.TraceID = shared.GetTraceID(r.Context())
		shared.LogError(r, status, data.Error, err)
		h.render(w, r, status, data)
		return
	}

	data.HasResult = true
	data.Resultado = result.Text
	h.render(w, r, http.StatusOK, data)
}

func (h *FormHandler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logger.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
