package controllers

import (
	"errors"
	"strconv"

	"SSAAM-Backend/src/models"
	"SSAAM-Backend/src/services/settings"
	"SSAAM-Backend/src/services/students"
	"SSAAM-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type StudentController struct {
	students *students.Service
	settings *settings.Service
	log      zerolog.Logger
}

func NewStudentController(studentSvc *students.Service, settingsSvc *settings.Service, log zerolog.Logger) *StudentController {
	return &StudentController{
		students: studentSvc,
		settings: settingsSvc,
		log:      log.With().Str("component", "student_controller").Logger(),
	}
}

// GetStudents godoc
// @Summary List students
// @Description Paginated roster, newest first
// @Tags students
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} models.PaginatedResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /apis/students [get]
func (h *StudentController) GetStudents(c *fiber.Ctx) error {
	params := paginationFromQuery(c)
	items, total, err := h.students.List(c.UserContext(), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(items, total, params))
}

// GetStats godoc
// @Summary Dashboard counters
// @Description Students per program and year level
// @Tags students
// @Produce json
// @Success 200 {object} models.StudentStats
// @Router /apis/students/stats [get]
func (h *StudentController) GetStats(c *fiber.Ctx) error {
	stats, err := h.students.Stats(c.UserContext())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(stats)
}

// SearchStudents godoc
// @Summary Search students
// @Tags students
// @Produce json
// @Param search query string false "Substring of id, names, email or RFID"
// @Param program query string false "Program"
// @Param yearLevel query string false "Year level"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} models.PaginatedResponse
// @Router /apis/students/search [get]
func (h *StudentController) SearchStudents(c *fiber.Ctx) error {
	params := paginationFromQuery(c)
	filter := students.Filter{
		Search:    c.Query("search"),
		Program:   c.Query("program"),
		YearLevel: c.Query("yearLevel"),
	}
	items, total, err := h.students.Search(c.UserContext(), filter, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(items, total, params))
}

// CreateStudent godoc
// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param student body models.StudentInput true "Student with _ssaam_access_token"
// @Success 201 {object} models.Student
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /apis/students [post]
func (h *StudentController) CreateStudent(c *fiber.Ctx) error {
	open, message, err := h.settings.RegistrationOpen(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("error checking settings")
	} else if !open {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message":              message,
			"registrationDisabled": true,
		})
	}

	var input models.StudentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	student, err := h.students.Create(c.UserContext(), input)
	if err != nil {
		return h.studentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

// UpdateStudent godoc
// @Summary Update a student
// @Description Partial update; student_id cannot change
// @Tags students
// @Accept json
// @Produce json
// @Param student_id path string true "Student ID"
// @Param student body models.StudentUpdate true "Fields to change"
// @Success 200 {object} models.Student
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /apis/students/{student_id} [put]
func (h *StudentController) UpdateStudent(c *fiber.Ctx) error {
	var upd models.StudentUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := h.students.Update(c.UserContext(), c.Params("student_id"), upd)
	if err != nil {
		return h.studentError(c, err)
	}
	return c.JSON(updated)
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /apis/students/{student_id} [delete]
func (h *StudentController) DeleteStudent(c *fiber.Ctx) error {
	err := h.students.Delete(c.UserContext(), c.Params("student_id"))
	if errors.Is(err, students.ErrStudentNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, "Student not found.")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully."})
}

// LoginStudent godoc
// @Summary Student login
// @Description Match by student ID and last name (case-insensitive)
// @Tags students
// @Accept json
// @Produce json
// @Param credentials body models.StudentLoginRequest true "Login"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /apis/students/login [post]
func (h *StudentController) LoginStudent(c *fiber.Ctx) error {
	open, message, err := h.settings.LoginOpen(c.UserContext())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !open {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message":       message,
			"loginDisabled": true,
		})
	}

	var req models.StudentLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	student, err := h.students.Login(c.UserContext(), req.StudentID, req.LastName)
	if errors.Is(err, students.ErrInvalidLogin) {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid Student ID or Last Name")
	}
	if err != nil {
		return h.studentError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"student": student,
	})
}

func (h *StudentController) studentError(c *fiber.Ctx, err error) error {
	var ve *students.ValidationError
	switch {
	case errors.As(err, &ve):
		return utils.HandleError(c, fiber.StatusBadRequest, ve.Message)
	case errors.Is(err, students.ErrDuplicateStudentID):
		return utils.HandleError(c, fiber.StatusBadRequest, "Duplicate student_id")
	case errors.Is(err, students.ErrStudentNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// paginationFromQuery reads page and limit, falling back to the defaults
// for missing, malformed or non-positive values. Oversized values are
// clamped to the maximum window.
func paginationFromQuery(c *fiber.Ctx) models.PaginationParams {
	params := models.DefaultPagination()
	if page, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil && page > 0 {
		params.Page = int(min(page, models.MaxPage))
	}
	if limit, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && limit > 0 {
		params.Limit = int(min(limit, models.MaxLimit))
	}
	params.Normalize()
	return params
}
