package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/simbalabs/simba-checkout-api/internal/application/usecases"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/interfaces/http/middleware"
)

type CourseHandler struct {
	courseUseCase usecases.CourseUseCase
}

func NewCourseHandler(courseUseCase usecases.CourseUseCase) *CourseHandler {
	return &CourseHandler{courseUseCase}
}

func (h *CourseHandler) GetCourses(c *fiber.Ctx) error {
	ownerID := middleware.OwnerID(c)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	courses, total, err := h.courseUseCase.GetCourses(c.Context(), ownerID, page, limit, "")
	if err != nil {
		return respondError(c, err)
	}
	if courses == nil {
		courses = []entities.Course{}
	}

	return c.JSON(fiber.Map{
		"data": courses,
		"meta": fiber.Map{
			"total":     total,
			"page":      page,
			"limit":     limit,
			"last_page": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	course, err := h.courseUseCase.GetCourse(c.Context(), middleware.OwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": course})
}

func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var course entities.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}
	course.ID = ""

	saved, err := h.courseUseCase.SaveCourse(c.Context(), middleware.OwnerID(c), &course)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": saved})
}

func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	ownerID := middleware.OwnerID(c)

	existing, err := h.courseUseCase.GetCourse(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	var course entities.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}
	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt

	saved, err := h.courseUseCase.SaveCourse(c.Context(), ownerID, &course)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": saved})
}

func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	if err := h.courseUseCase.DeleteCourse(c.Context(), middleware.OwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
