package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/phrazzld/escribe/internal/api/shared"
	"github.com/phrazzld/escribe/internal/domain"
	"github.com/phrazzld/escribe/internal/service"
)

// formValue accepts a JSON string or number. null decodes to "".
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("value must be a string or a number")
	}
	*v = formValue(n.String())
	return nil
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Tipo     formValue `json:"tipo"`
	Tema     formValue `json:"tema"`
	Estilo   formValue `json:"estilo"`
	Longitud formValue `json:"longitud"`
}

// Fields converts the request into raw submission fields.
func (req GenerateRequest) Fields() domain.Fields {
	return domain.Fields{
		domain.FieldContentType:  string(req.Tipo),
		domain.FieldTopic:        string(req.Tema),
		domain.FieldStyle:        string(req.Estilo),
		domain.FieldTargetLength: string(req.Longitud),
	}
}

// GenerateResponse is the success body of POST /api/generate.
type GenerateResponse struct {
	Resultado string `json:"resultado"`
	MaxTokens int    `json:"max_tokens"`
}

// GenerateHandler serves the JSON generation endpoint.
type GenerateHandler struct {
	composer service.ComposeService
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(composer service.ComposeService) (*GenerateHandler, error) {
	if composer == nil {
		return nil, errors.New("compose service cannot be nil")
	}
	return &GenerateHandler{composer: composer}, nil
}

// Generate handles POST /api/generate requests.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Formato de solicitud no válido.", err)
		return
	}

	result, err := h.composer.HandleSubmission(r.Context(), req.Fields())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{
		Resultado: result.Text,
		MaxTokens: result.MaxTokens,
	})
}
