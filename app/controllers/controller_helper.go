package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/internal/pkg/cache"
)

var validate = newValidator()

// newValidator builds the shared validator. Field names in error payloads
// come from the json tag so clients can map them back onto form fields.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusBadRequest, "bad_request", message)
}

func notFound(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusNotFound, "not_found", message)
}

func conflict(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusConflict, "conflict", message)
}

func serverError(c *fiber.Ctx, err error) error {
	log.Errorf("request failed: %v", err)
	return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Something went wrong")
}

// validationFailed maps validator errors onto a field->message object. Other
// errors fall back to a plain bad request.
func validationFailed(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return badRequest(c, "Invalid input")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = messageForTag(fe)
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "validation_error",
		"message": "Invalid input",
		"fields":  fields,
	})
}

// fieldInvalid reports a single-field validation failure in the same shape
// validationFailed produces.
func fieldInvalid(c *fiber.Ctx, field, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "validation_error",
		"message": "Invalid input",
		"fields":  map[string]string{field: message},
	})
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "oneof":
		return "Select a valid choice."
	default:
		return "This value is invalid."
	}
}

// parseID reads the numeric :id route parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// parsePagination reads page/page_size query parameters and converts them to
// an offset/limit pair. Page size is capped at 100.
func parsePagination(c *fiber.Ctx) (offset, limit int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	size := c.QueryInt("page_size", 20)
	if size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return (page - 1) * size, size
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

const listCacheTTL = 5 * time.Minute

// listPayload is the shared collection envelope.
func listPayload(data interface{}, total int64) fiber.Map {
	return fiber.Map{"data": data, "total": total}
}

// respondCachedList serves an unparameterized public listing through the
// Redis cache. Cache failures degrade to a plain database read. The build
// function returns the complete envelope so cached bytes replay as-is.
func respondCachedList(c *fiber.Ctx, key string, build func() (interface{}, error)) error {
	key = fmt.Sprintf("pages:%s:%s", key, c.BaseURL())
	if cached, err := cache.Get(key); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	payload, err := build()
	if err != nil {
		return serverError(c, err)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return serverError(c, err)
	}
	if err := cache.Set(key, body, listCacheTTL); err != nil {
		log.Debugf("list cache write skipped: %v", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// invalidateListCaches drops every cached public listing. Called after any
// admin write so readers never see stale content for long.
func invalidateListCaches() {
	if err := cache.DeletePattern("pages:*"); err != nil {
		log.Debugf("list cache invalidation skipped: %v", err)
	}
}
