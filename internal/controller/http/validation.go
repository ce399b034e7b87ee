package http

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"guestbook/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	zipRegex   = regexp.MustCompile(`^[0-9]{5}$`)
	phoneRegex = regexp.MustCompile(`^\+49(?:\d{8,11}|\(\d{1,6}\)\d{1,10}|\d{1,6}-\d{1,10}|\d{1,6}\s\d{1,10})$`)
)

// RegisterValidators installs the address format checks on gin's validator
// engine. Call once at startup, before the router handles requests.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("phone_de", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}

// fieldErrors flattens binding failures into the per-field error map returned
// to the client. Input that fails here never reaches storage.
func fieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fieldMessage(fe)
		}
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("can not be longer than %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "zipcode":
		return "must be a valid zip code"
	case "phone_de":
		return "must be a valid phone number with country code +49"
	default:
		return "is invalid"
	}
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fields := fieldErrors(err)
		body := gin.H{"error": "validation failed"}
		if len(fields) > 0 {
			body["fields"] = fields
		}
		c.JSON(http.StatusBadRequest, body)
		return false
	}
	return true
}

// respondError maps the error-kind taxonomy onto HTTP statuses. Internal
// errors stay opaque; everything else carries its message through.
func respondError(c *gin.Context, err error) {
	var e *entity.Error
	if !errors.As(err, &e) || e.Kind == entity.KindInternal {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var status int
	switch e.Kind {
	case entity.KindValidation:
		status = http.StatusBadRequest
	case entity.KindUnauthenticated:
		status = http.StatusUnauthorized
	case entity.KindForbidden:
		status = http.StatusForbidden
	case entity.KindNotFound:
		status = http.StatusNotFound
	case entity.KindConflict:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	body := gin.H{"error": e.Message}
	if len(e.Fields) > 0 {
		body["fields"] = e.Fields
	}
	c.JSON(status, body)
}
