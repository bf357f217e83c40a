// Package validation plugs the catalog's field rules into gin's validator
// engine and turns validation failures into short human-readable messages.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// movieURLPattern accepts absolute http(s) URLs as well as bare host/file
// references ("1.png").
var movieURLPattern = regexp.MustCompile(`^(https?://)?[\da-z.-]+(\.[a-z.]{2,6})?(/[\w .-]*)*/?$`)

var (
	once    sync.Once
	initErr error
)

// Register installs the custom tags on gin's default validator. Safe to call
// more than once.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			initErr = errors.New("validation: gin validator engine is not go-playground/validator")
			return
		}
		initErr = Install(v)
	})
	return initErr
}

// Install registers the custom tags and json field naming on v.
func Install(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("movieurl", func(fl validator.FieldLevel) bool {
		return movieURLPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("navpath", func(fl validator.FieldLevel) bool {
		return strings.HasPrefix(fl.Field().String(), "/")
	})
}

// Message renders a binding error for the client.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fe.Field()+": "+describe(fe))
		}
		return strings.Join(parts, "; ")
	}
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	if errors.As(err, &syn) || errors.As(err, &typ) {
		return "Incorrect request body"
	}
	return err.Error()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("should have at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "movieurl":
		return "Invalid URL format"
	case "navpath":
		return "must start with /"
	}
	return "failed on the '" + fe.Tag() + "' rule"
}
