package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/ChieJuwonsFx/backend-converter/internal/config"
	"github.com/ChieJuwonsFx/backend-converter/internal/converter"
	"github.com/ChieJuwonsFx/backend-converter/internal/entities"
	"github.com/ChieJuwonsFx/backend-converter/internal/filename"
	"github.com/ChieJuwonsFx/backend-converter/internal/recaptcha"
	"github.com/ChieJuwonsFx/backend-converter/internal/transport/middleware"
)

// Verifier gates the conversion endpoint behind a token check.
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

type Handler struct {
	verifier  Verifier
	cfg       *config.Config
	validator *validator.Validate
}

func New(verifier Verifier, cfg *config.Config) *Handler {
	return &Handler{
		verifier:  verifier,
		cfg:       cfg,
		validator: validator.New(),
	}
}

// Root is a liveness endpoint, not part of the conversion contract.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Welcome to the Image Converter API!",
	})
}

// ConvertImage re-encodes the uploaded image into the requested target
// format and returns it as a downloadable attachment. Exactly one artifact
// or one error response is produced per request.
func (h *Handler) ConvertImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Upload.MaxRequestBodyMB<<20)

	if err := r.ParseMultipartForm(h.cfg.Upload.MaxMultipartMemoryMB << 20); err != nil {
		writeMultipartError(w, err)
		return
	}

	file, fh, err := r.FormFile("file")
	if err != nil {
		if strings.Contains(err.Error(), "no such file") {
			writeJSONError(w, `missing image file: form field key should be "file"`, http.StatusBadRequest)
		} else {
			writeJSONError(w, "an error occurred while uploading the file: "+err.Error(), http.StatusBadRequest)
		}
		return
	}
	defer file.Close()

	params := ConvertParams{
		TargetFormat:   r.Form.Get("target_format"),
		OutputFilename: r.Form.Get("output_filename"),
		CaptchaToken:   r.Form.Get("g-recaptcha-response"),
	}

	if err := h.validator.Struct(params); err != nil {
		writeJSONError(w, validationDetail(err), http.StatusBadRequest)
		return
	}

	if err := h.verifier.Verify(r.Context(), params.CaptchaToken); err != nil {
		if errors.Is(err, recaptcha.ErrUnavailable) {
			writeJSONError(w, err.Error(), http.StatusBadGateway)
		} else {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	format, err := converter.Resolve(params.TargetFormat)
	if err != nil {
		writeJSONError(w, fmt.Sprintf("target format %q is not supported", params.TargetFormat), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.conversionError(w, err)
		return
	}

	log.Debug().
		Str("request_id", middleware.GetRequestID(r.Context())).
		Str("source_type", mimetype.Detect(data).String()).
		Str("target_format", format.Key).
		Int("size", len(data)).
		Msg("converting upload")

	out, err := converter.Convert(data, format)
	if err != nil {
		h.conversionError(w, err)
		return
	}

	artifact := entities.Artifact{
		Data:      out,
		MediaType: format.MediaType,
		Filename:  filename.Sanitize(params.OutputFilename, fh.Filename, format.Key),
	}
	writeAttachment(w, artifact)
}

// conversionError maps known pipeline failures to a 500 and forwards
// anything unrecognized to sentry as a last resort. Either way the caller
// gets a well-formed JSON body carrying the cause.
func (h *Handler) conversionError(w http.ResponseWriter, err error) {
	if !errors.Is(err, converter.ErrDecode) && !errors.Is(err, converter.ErrEncode) {
		sentry.CaptureException(err)
	}
	writeJSONError(w, "an error occurred during conversion: "+err.Error(), http.StatusInternalServerError)
}
