// Package resourceController serves the uniform CRUD surface every entity
// collection exposes: list, fetch, create, shallow-merge patch, delete.
package resourceController

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"startupos/middleware"
	"startupos/store"
)

// ParseID reads the :id route parameter.
func ParseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// List returns every record in the collection.
func List[E store.Entity](col store.Collection[E]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recs, err := col.GetAll(c.Context())
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch records!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Records fetched!", recs)
	}
}

// Get returns one record or 404.
func Get[E store.Entity](col store.Collection[E]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := ParseID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid record id!", nil)
		}
		rec, err := col.GetByID(c.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Record not found!", nil)
		}
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch record!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Record fetched!", rec)
	}
}

// Create inserts a new record from the request body. The store assigns the
// identifier and timestamps.
func Create[T any, PT store.Ptr[T]](col store.Collection[PT]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec := PT(new(T))
		if err := c.BodyParser(rec); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		created, err := col.Create(c.Context(), rec)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create record!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Record created!", created)
	}
}

// Patch applies a shallow merge of the body's fields onto the record.
func Patch[E store.Entity](col store.Collection[E]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := ParseID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid record id!", nil)
		}
		patch := map[string]any{}
		if err := json.Unmarshal(c.Body(), &patch); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		updated, err := col.Update(c.Context(), id, patch)
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Record not found!", nil)
		}
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to update record!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Record updated!", updated)
	}
}

// Remove deletes the record permanently and returns it.
func Remove[E store.Entity](col store.Collection[E]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := ParseID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid record id!", nil)
		}
		removed, err := col.Delete(c.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Record not found!", nil)
		}
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete record!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Record deleted!", removed)
	}
}

// Register mounts the full CRUD surface on a route group.
func Register[T any, PT store.Ptr[T]](r fiber.Router, col store.Collection[PT]) {
	r.Get("/", List(col))
	r.Get("/:id", Get(col))
	r.Post("/", Create[T, PT](col))
	r.Patch("/:id", Patch(col))
	r.Delete("/:id", Remove(col))
}
