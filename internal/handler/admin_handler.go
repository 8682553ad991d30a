package handler

import (
	"errors"
	"net/url"
	"strconv"

	"eju-quiz/internal/domain"
	"eju-quiz/internal/dto"
	"eju-quiz/internal/logger"
	"eju-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feedback messages carried across redirects.
const (
	msgAdded    = "题目已添加"
	msgUpdated  = "题目已更新"
	msgDeleted  = "题目已删除"
	msgNotFound = "题目不存在"
)

// AdminHandler handles the question bank management pages
type AdminHandler struct {
	service service.AdminService
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// List handles GET /admin: the filtered management listing with the
// optional one-shot feedback banner from msg/category.
func (h *AdminHandler) List(c *fiber.Ctx) error {
	filter := filterFromQuery(c)

	data, err := h.service.List(c.Context(), filter, c.Query("msg"), c.Query("category"))
	if err != nil {
		logger.Get().Error("Failed to list questions for admin", zap.Error(err))
		return err
	}
	return c.Render("admin", data)
}

// ShowAddForm handles GET /admin/add.
func (h *AdminHandler) ShowAddForm(c *fiber.Ctx) error {
	sections, err := h.service.SectionChoices(c.Context())
	if err != nil {
		return err
	}
	return c.Render("add_edit", dto.FormPageData{
		Action:   "add",
		Sections: sections,
	})
}

// Create handles POST /admin/add. Validation failures redisplay the
// form with the submitted values at 422; success redirects to the
// listing with a feedback message.
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	form := formFromRequest(c)

	if _, err := h.service.Create(c.Context(), form.Input()); err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			return h.renderFormErrors(c, "add", form, verrs)
		}
		logger.Get().Error("Failed to create question", zap.Error(err))
		return err
	}
	return redirectWithFeedback(c, msgAdded, "success")
}

// ShowEditForm handles GET /admin/edit/:id.
func (h *AdminHandler) ShowEditForm(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return redirectWithFeedback(c, msgNotFound, "error")
	}

	form, err := h.service.GetForEdit(c.Context(), id)
	if err != nil {
		if isNotFound(err) {
			return redirectWithFeedback(c, msgNotFound, "error")
		}
		logger.Get().Error("Failed to load question for edit", zap.Error(err), zap.Int64("id", id))
		return err
	}

	sections, err := h.service.SectionChoices(c.Context())
	if err != nil {
		return err
	}
	return c.Render("add_edit", dto.FormPageData{
		Action:   "edit",
		Form:     *form,
		Sections: sections,
	})
}

// Update handles POST /admin/edit/:id.
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return redirectWithFeedback(c, msgNotFound, "error")
	}

	form := formFromRequest(c)
	form.ID = id

	if err := h.service.Update(c.Context(), id, form.Input()); err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			return h.renderFormErrors(c, "edit", form, verrs)
		}
		if isNotFound(err) {
			return redirectWithFeedback(c, msgNotFound, "error")
		}
		logger.Get().Error("Failed to update question", zap.Error(err), zap.Int64("id", id))
		return err
	}
	return redirectWithFeedback(c, msgUpdated, "success")
}

// Delete handles POST /admin/delete/:id. Deleting an unknown id is
// indistinguishable from a real delete for the caller.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if ok {
		if err := h.service.Delete(c.Context(), id); err != nil {
			logger.Get().Error("Failed to delete question", zap.Error(err), zap.Int64("id", id))
			return err
		}
	}
	return redirectWithFeedback(c, msgDeleted, "success")
}

func (h *AdminHandler) renderFormErrors(c *fiber.Ctx, action string, form dto.QuestionForm, verrs domain.ValidationErrors) error {
	sections, err := h.service.SectionChoices(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusUnprocessableEntity).Render("add_edit", dto.FormPageData{
		Action:   action,
		Form:     form,
		Sections: sections,
		Errors:   verrs.Messages(),
	})
}

func formFromRequest(c *fiber.Ctx) dto.QuestionForm {
	return dto.QuestionForm{
		Question:      c.FormValue("question"),
		OptionA:       c.FormValue("option_a"),
		OptionB:       c.FormValue("option_b"),
		OptionC:       c.FormValue("option_c"),
		OptionD:       c.FormValue("option_d"),
		CorrectOption: c.FormValue("correct_option"),
		Tags:          c.FormValue("tags"),
		Section:       c.FormValue("section"),
	}
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func redirectWithFeedback(c *fiber.Ctx, msg, category string) error {
	q := url.Values{}
	q.Set("msg", msg)
	q.Set("category", category)
	return c.Redirect("/admin?"+q.Encode(), fiber.StatusSeeOther)
}

func isNotFound(err error) bool {
	var derr *domain.DomainError
	return errors.As(err, &derr) && derr.Code == domain.ErrNotFound
}
