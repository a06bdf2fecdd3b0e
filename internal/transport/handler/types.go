package handler

type ConvertParams struct {
	TargetFormat   string `validate:"required"`          // form field target_format
	OutputFilename string `validate:"omitempty,max=128"` // form field output_filename
	CaptchaToken   string `validate:"required"`          // form field g-recaptcha-response
}
