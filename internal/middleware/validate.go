package middleware

import (
    "errors"
    "fmt"
    "net/http"
    "reflect"
    "strings"

    "github.com/bilgisen/trendportal/internal/logger"
    "github.com/go-playground/validator/v10"
    "github.com/gofiber/fiber/v2"
)

// Validator is a struct that holds the validator instance
type Validator struct {
    validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their json/query names
func NewValidator() *Validator {
    v := validator.New()
    v.RegisterTagNameFunc(func(fld reflect.StructField) string {
        for _, tag := range []string{"json", "query"} {
            name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
            if name == "-" {
                return ""
            }
            if name != "" {
                return name
            }
        }
        return fld.Name
    })
    return &Validator{validate: v}
}

// Validate validates s and returns a readable error
func (v *Validator) Validate(s interface{}) error {
    if err := v.validate.Struct(s); err != nil {
        return FormatValidationError(err)
    }
    return nil
}

// FormatValidationError turns validator errors into "field must ..." messages.
func FormatValidationError(err error) error {
    var verrs validator.ValidationErrors
    if !errors.As(err, &verrs) {
        return err
    }

    msgs := make([]string, 0, len(verrs))
    for _, fe := range verrs {
        switch fe.Tag() {
        case "required":
            msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
        case "url":
            msgs = append(msgs, fmt.Sprintf("%s must be a valid URL, got %q", fe.Field(), fe.Value()))
        case "numeric":
            msgs = append(msgs, fmt.Sprintf("%s must be numeric", fe.Field()))
        default:
            msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
        }
    }
    return errors.New(strings.Join(msgs, "; "))
}

// ParseQuery parses query parameters into s and validates the result
func (v *Validator) ParseQuery(c *fiber.Ctx, s interface{}) error {
    if err := c.QueryParser(s); err != nil {
        return fmt.Errorf("invalid query parameters: %w", err)
    }
    return v.Validate(s)
}

// ErrorHandler is the app-wide handler for errors returned by handlers and unknown routes
func ErrorHandler(c *fiber.Ctx, err error) error {
    code := fiber.StatusInternalServerError

    var e *fiber.Error
    if errors.As(err, &e) {
        code = e.Code
    }

    logger.Get().Error().
        Err(err).
        Str("method", c.Method()).
        Str("path", c.Path()).
        Int("status", code).
        Msg("HTTP error")

    return c.Status(code).JSON(fiber.Map{
        "error": http.StatusText(code),
    })
}
