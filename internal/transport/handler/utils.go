package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/ChieJuwonsFx/backend-converter/internal/entities"
)

type APIError struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, detail string, code int) {
	writeJSON(w, code, APIError{Detail: detail})
}

func writeAttachment(w http.ResponseWriter, a entities.Artifact) {
	w.Header().Set("Content-Type", a.MediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Filename))
	if _, err := w.Write(a.Data); err != nil {
		log.Err(err).Msg("failed writing converted image to response")
	}
}

func writeMultipartError(w http.ResponseWriter, err error) {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "too large"):
		writeJSONError(w, "uploaded file exceeds maximum allowed size", http.StatusRequestEntityTooLarge)

	case strings.Contains(msg, "content-type isn't multipart/form-data"):
		writeJSONError(w, "invalid content type, expected multipart/form-data", http.StatusBadRequest)

	default:
		writeJSONError(w, err.Error(), http.StatusInternalServerError)
	}
}

func validationDetail(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	fields := map[string]string{
		"TargetFormat":   "target_format",
		"OutputFilename": "output_filename",
		"CaptchaToken":   "g-recaptcha-response",
	}

	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		if name, ok := fields[field]; ok {
			field = name
		}
		switch e.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "max":
			parts = append(parts, field+" exceeds maximum length")
		default:
			parts = append(parts, field+" has an invalid value")
		}
	}
	return strings.Join(parts, "; ")
}
