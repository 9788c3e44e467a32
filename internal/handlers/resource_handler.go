package handlers

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// ResourceHandler handles HTTP requests for one collection.
type ResourceHandler[E models.Entity, D models.Draft[E], P models.Patch[E]] struct {
	path     string
	service  *services.ResourceService[E, D, P]
	validate *validator.Validate
}

// NewResourceHandler creates a handler serving service under path, e.g. "/categories".
func NewResourceHandler[E models.Entity, D models.Draft[E], P models.Patch[E]](path string, service *services.ResourceService[E, D, P], validate *validator.Validate) *ResourceHandler[E, D, P] {
	if validate == nil {
		validate = validator.New()
	}
	return &ResourceHandler[E, D, P]{
		path:     path,
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the collection routes with the Fiber router.
func (h *ResourceHandler[E, D, P]) RegisterRoutes(router fiber.Router) {
	routes := router.Group(h.path)
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGet)
	routes.Post("/", h.HandleCreate)
	routes.Put("/:id", h.HandleUpdate)
	routes.Patch("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleList returns every record as a JSON array.
func (h *ResourceHandler[E, D, P]) HandleList(c *fiber.Ctx) error {
	items, err := h.service.List()
	if err != nil {
		return h.fail(c, "list", err)
	}
	return c.JSON(items)
}

// HandleGet returns a single record.
func (h *ResourceHandler[E, D, P]) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid identifier", err)
	}
	item, err := h.service.Get(id)
	if err != nil {
		return h.fail(c, "get", err)
	}
	return c.JSON(item)
}

// HandleCreate creates a record from the request body.
func (h *ResourceHandler[E, D, P]) HandleCreate(c *fiber.Ctx) error {
	var draft D
	if err := parseJSON(c, &draft); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if err := h.validate.Struct(draft); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return badRequest(c, "Invalid request body", err)
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	item, err := h.service.Create(draft)
	if err != nil {
		return h.fail(c, "create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdate applies the fields present in the request body.
func (h *ResourceHandler[E, D, P]) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid identifier", err)
	}
	var patch P
	if err := parseJSON(c, &patch); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	item, err := h.service.Update(id, patch)
	if err != nil {
		return h.fail(c, "update", err)
	}
	return c.JSON(item)
}

// HandleDelete removes a record and answers 204.
func (h *ResourceHandler[E, D, P]) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid identifier", err)
	}
	if err := h.service.Delete(id); err != nil {
		return h.fail(c, "delete", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ResourceHandler[E, D, P]) fail(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).SendString(h.service.Name() + " not found")
	}
	log.Errorf("Error on %s %s: %v", op, strings.ToLower(h.service.Name()), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fmt.Sprintf("Could not %s %s", op, strings.ToLower(h.service.Name())),
		"error":   err.Error(),
	})
}

var errNotJSON = errors.New("content type must be application/json")

// parseJSON decodes the body only when the request declares a JSON payload.
func parseJSON(c *fiber.Ctx, out interface{}) error {
	if !c.Is("json") {
		return errNotJSON
	}
	return c.BodyParser(out)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
