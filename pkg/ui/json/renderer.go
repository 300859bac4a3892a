// Package json renders results as indented JSON documents
package json

import (
	"encoding/json"
	"io"

	"github.com/snifferhu/RIDE/pkg/errors"
)

// Renderer writes one JSON document per call
type Renderer struct {
	encoder *json.Encoder
}

// New creates a JSON renderer writing to output
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}, nil
}

func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// errorDoc is the JSON shape of a rendered error
type errorDoc struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RenderError writes the message, code and details of err
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorDoc{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
