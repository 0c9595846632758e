// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	perr "github.com/shivxmhere/ai-voice-detector/internal/platform/errors"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/logger"
)

// FieldError aliases validator.FieldError
type FieldError = validator.FieldError

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		// short messages for the tags this API leans on
		registerLenientBase64(v)
		registerShortOneof(v, trans)
		registerShortBase64(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{
		MaxBytes:        1 << 20,
		DisallowUnknown: true,
	}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	buf := make([]byte, 1)
	n, _ := r.Body.Read(buf)
	if n == 0 {
		return zero, perr.JSONErrf("empty body")
	}
	var reader io.Reader = io.MultiReader(bytes.NewReader(buf[:n]), r.Body)
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().Validator.Struct(dst); err != nil {
		if inv, ok := err.(*validator.InvalidValidationError); ok {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := ValidationFieldAndMessage(err)
		return zero, perr.WithField(perr.ValidationErrf("%s", msg), field)
	}

	return dst, nil
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return "", inv.Error()
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// custom translations with short messages

func registerShortOneof(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("oneof", trans,
		func(ut ut.Translator) error {
			return ut.Add("oneof", "{0} must be one of [{1}]", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("oneof", fe.Field(), fe.Param())
			return msg
		},
	)
}

// registerLenientBase64 replaces the stock base64 rule, which rejects
// padding-only strings. Those decode to zero bytes under lenient decoders,
// and the zero-byte case belongs to the decode step, not the schema
func registerLenientBase64(v *validator.Validate) {
	_ = v.RegisterValidation("base64", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if strings.Trim(s, "=") == "" {
			return true
		}
		_, err := base64.StdEncoding.DecodeString(s)
		return err == nil
	})
}

func registerShortBase64(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("base64", trans,
		func(ut ut.Translator) error {
			return ut.Add("base64", "{0} must be valid base64", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("base64", fe.Field())
			return msg
		},
	)
}
