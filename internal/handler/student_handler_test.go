package handler_test

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/examdesk/examdesk-api/internal/dto"
	"github.com/examdesk/examdesk-api/internal/handler"
	"github.com/examdesk/examdesk-api/internal/service"
)

type mockStudentService struct {
	lastPayload dto.StudentCreateRequest
	lastFile    *multipart.FileHeader
	response    dto.StudentResponse
	err         error
}

func (m *mockStudentService) Register(_ context.Context, payload dto.StudentCreateRequest, idCard *multipart.FileHeader) (dto.StudentResponse, error) {
	m.lastPayload = payload
	m.lastFile = idCard
	if m.err != nil {
		return dto.StudentResponse{}, m.err
	}
	return m.response, nil
}

func newStudentApp(svc service.StudentService) *fiber.App {
	app := fiber.New()
	handler.NewStudentHandler(svc, zerolog.New(io.Discard)).Register(app)
	return app
}

func studentFormFields() map[string]string {
	return map[string]string{
		"department":  "CS",
		"class":       "A",
		"studentName": "Alice",
		"rollNumber":  "1",
	}
}

func TestStudentHandlerFormDescribesFields(t *testing.T) {
	app := newStudentApp(&mockStudentService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/add-student", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			Fields    []string `json:"fields"`
			FileField string   `json:"file_field"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &payload)
	require.True(t, payload.Success)
	require.Contains(t, payload.Data.Fields, "rollNumber")
	require.Equal(t, "idCardImage", payload.Data.FileField)
}

func TestStudentHandlerCreateRedirectsOnSuccess(t *testing.T) {
	svc := &mockStudentService{}
	app := newStudentApp(svc)

	body, contentType := buildMultipartForm(t, studentFormFields(), "idCardImage", "card.png", []byte("img"))
	req := httptest.NewRequest(http.MethodPost, "/add-student", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/add-student", resp.Header.Get("Location"))

	require.Equal(t, "CS", svc.lastPayload.Department)
	require.Equal(t, "Alice", svc.lastPayload.StudentName)
	require.NotNil(t, svc.lastFile)
}

func TestStudentHandlerCreateRequiresFile(t *testing.T) {
	svc := &mockStudentService{}
	app := newStudentApp(svc)

	body, contentType := buildMultipartForm(t, studentFormFields(), "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/add-student", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStudentHandlerCreateErrorMapping(t *testing.T) {
	validationErr := validator.New(validator.WithRequiredStructEnabled()).Struct(dto.StudentCreateRequest{})
	require.Error(t, validationErr)

	cases := []struct {
		name       string
		err        error
		statusCode int
	}{
		{name: "validation", err: validationErr, statusCode: fiber.StatusBadRequest},
		{name: "too_large", err: service.ErrUploadTooLarge, statusCode: fiber.StatusRequestEntityTooLarge},
		{name: "storage", err: service.ErrFileStorage, statusCode: fiber.StatusInternalServerError},
		{name: "store_down", err: context.DeadlineExceeded, statusCode: fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newStudentApp(&mockStudentService{err: tc.err})

			body, contentType := buildMultipartForm(t, studentFormFields(), "idCardImage", "card.png", []byte("img"))
			req := httptest.NewRequest(http.MethodPost, "/add-student", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.statusCode, resp.StatusCode)
		})
	}
}
