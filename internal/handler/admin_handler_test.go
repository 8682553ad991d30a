package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"eju-quiz/internal/domain"
	"eju-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedbackURL(msg, category string) string {
	q := url.Values{}
	q.Set("msg", msg)
	q.Set("category", category)
	return "/admin?" + q.Encode()
}

func validFormBody() string {
	form := url.Values{}
	form.Set("question", "2+2=?")
	form.Set("option_a", "3")
	form.Set("option_b", "4")
	form.Set("option_c", "5")
	form.Set("option_d", "6")
	form.Set("correct_option", "B")
	form.Set("tags", "数学/代数")
	form.Set("section", "理科")
	return form.Encode()
}

func TestAdminListShowsFeedback(t *testing.T) {
	adminSvc := &MockAdminService{
		ListFunc: func(ctx context.Context, filter domain.QuestionFilter, msg, category string) (*dto.AdminPageData, error) {
			return &dto.AdminPageData{
				Questions: []dto.QuestionView{{ID: 1, Question: "q", CorrectOption: "A", Section: "理科"}},
				Sections:  domain.SectionChoices(nil),
				Msg:       msg,
				Category:  category,
			}, nil
		},
	}
	app := newTestApp(nil, adminSvc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin?msg=%E9%A2%98%E7%9B%AE%E5%B7%B2%E6%B7%BB%E5%8A%A0&category=success", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "题目已添加")
	assert.Contains(t, body, "success")
}

func TestAdminShowAddForm(t *testing.T) {
	app := newTestApp(nil, &MockAdminService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/add", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "添加题目")
}

func TestAdminCreateSuccess(t *testing.T) {
	var created domain.QuestionInput
	adminSvc := &MockAdminService{
		CreateFunc: func(ctx context.Context, input domain.QuestionInput) (int64, error) {
			created = input
			return 1, nil
		},
	}
	app := newTestApp(nil, adminSvc)

	resp, err := app.Test(postForm("/admin/add", validFormBody()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, feedbackURL("题目已添加", "success"), resp.Header.Get("Location"))
	assert.Equal(t, "2+2=?", created.Question)
	assert.Equal(t, "理科", created.Section)
}

func TestAdminCreateValidationFailure(t *testing.T) {
	adminSvc := &MockAdminService{
		CreateFunc: func(ctx context.Context, input domain.QuestionInput) (int64, error) {
			return 0, input.Validate()
		},
	}
	app := newTestApp(nil, adminSvc)

	form := url.Values{}
	form.Set("question", "2+2=?")
	form.Set("option_a", "3")
	form.Set("option_b", "4")
	// option_c intentionally blank
	form.Set("option_d", "6")
	form.Set("correct_option", "B")
	form.Set("section", "理科")

	resp, err := app.Test(postForm("/admin/add", form.Encode()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// The form is redisplayed with the submitted values and the error.
	// html/template escapes "+" in the echoed question text.
	body := readBody(t, resp)
	assert.Contains(t, body, "选项")
	assert.Contains(t, body, "2&#43;2=?")
}

func TestAdminShowEditForm(t *testing.T) {
	adminSvc := &MockAdminService{
		GetForEditFunc: func(ctx context.Context, id int64) (*dto.QuestionForm, error) {
			return &dto.QuestionForm{
				ID: id, Question: "2+2=?",
				OptionA: "3", OptionB: "4", OptionC: "5", OptionD: "6",
				CorrectOption: "B", Tags: "数学/代数", Section: "理科",
			}, nil
		},
	}
	app := newTestApp(nil, adminSvc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/edit/9", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "编辑题目")
	assert.Contains(t, body, "/admin/edit/9")
	assert.Contains(t, body, "数学/代数")
}

func TestAdminShowEditFormNotFound(t *testing.T) {
	adminSvc := &MockAdminService{
		GetForEditFunc: func(ctx context.Context, id int64) (*dto.QuestionForm, error) {
			return nil, domain.NewQuestionNotFoundError(id)
		},
	}
	app := newTestApp(nil, adminSvc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/edit/999", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, feedbackURL("题目不存在", "error"), resp.Header.Get("Location"))
}

func TestAdminShowEditFormBadID(t *testing.T) {
	app := newTestApp(nil, &MockAdminService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/edit/not-a-number", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, feedbackURL("题目不存在", "error"), resp.Header.Get("Location"))
}

func TestAdminUpdateSuccess(t *testing.T) {
	var gotID int64
	adminSvc := &MockAdminService{
		UpdateFunc: func(ctx context.Context, id int64, input domain.QuestionInput) error {
			gotID = id
			return nil
		},
	}
	app := newTestApp(nil, adminSvc)

	resp, err := app.Test(postForm("/admin/edit/4", validFormBody()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, feedbackURL("题目已更新", "success"), resp.Header.Get("Location"))
	assert.Equal(t, int64(4), gotID)
}

func TestAdminUpdateNotFound(t *testing.T) {
	adminSvc := &MockAdminService{
		UpdateFunc: func(ctx context.Context, id int64, input domain.QuestionInput) error {
			return domain.NewQuestionNotFoundError(id)
		},
	}
	app := newTestApp(nil, adminSvc)

	resp, err := app.Test(postForm("/admin/edit/999", validFormBody()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, feedbackURL("题目不存在", "error"), resp.Header.Get("Location"))
}

func TestAdminDeleteAlwaysSucceeds(t *testing.T) {
	var deletedID int64
	adminSvc := &MockAdminService{
		DeleteFunc: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	app := newTestApp(nil, adminSvc)

	resp, err := app.Test(postForm("/admin/delete/7", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, feedbackURL("题目已删除", "success"), resp.Header.Get("Location"))
	assert.Equal(t, int64(7), deletedID)
}
