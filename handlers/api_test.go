package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/kevmuria/exam_online/handlers"
	"github.com/kevmuria/exam_online/models"
	"github.com/kevmuria/exam_online/routes"
	"github.com/kevmuria/exam_online/services"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Question{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	questions := services.NewQuestionService(db, logger)
	extractor := services.NewExtractor(logger)
	grader := services.NewGradingService(questions, logger)

	app := fiber.New()
	routes.AdminRoutes(app, handlers.NewQuestionHandler(questions), handlers.NewUploadHandler(extractor, questions, t.TempDir(), logger))
	routes.QuizRoutes(app, handlers.NewQuizHandler(questions, grader))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func createQuestion(t *testing.T, app *fiber.App, body map[string]any) map[string]any {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/admin/questions", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create question: status %d", resp.StatusCode)
	}
	var created map[string]any
	decodeBody(t, resp, &created)
	return created
}

func sampleBody() map[string]any {
	return map[string]any{
		"text":           "What is 2 + 2?",
		"options":        map[string]string{"A": "3", "B": "4"},
		"correct_option": "B",
		"course_id":      "101",
		"exam_type":      "final",
	}
}

func TestQuestionCRUDRoundTrip(t *testing.T) {
	app := newTestApp(t)

	created := createQuestion(t, app, sampleBody())
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("created response has no id: %v", created)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/questions/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: status %d", resp.StatusCode)
	}
	var got map[string]any
	decodeBody(t, resp, &got)
	for _, field := range []string{"text", "correct_option", "course_id", "exam_type"} {
		if got[field] != sampleBody()[field] {
			t.Errorf("%s = %v, want %v", field, got[field], sampleBody()[field])
		}
	}
	opts, _ := got["options"].(map[string]any)
	if opts["A"] != "3" || opts["B"] != "4" {
		t.Errorf("options = %v", got["options"])
	}

	resp = doJSON(t, app, http.MethodPut, "/api/v1/admin/questions/"+id, map[string]any{"text": "What is two plus two?"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: status %d", resp.StatusCode)
	}
	var updated map[string]any
	decodeBody(t, resp, &updated)
	if updated["text"] != "What is two plus two?" {
		t.Errorf("text = %v", updated["text"])
	}
	if updated["correct_option"] != "B" || updated["course_id"] != "101" || updated["exam_type"] != "final" {
		t.Errorf("partial update touched other fields: %v", updated)
	}

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/admin/questions/"+id, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}
	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/questions/"+id, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: status %d, want 404", resp.StatusCode)
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing text", func(b map[string]any) { delete(b, "text") }},
		{"missing correct option", func(b map[string]any) { delete(b, "correct_option") }},
		{"missing course id", func(b map[string]any) { delete(b, "course_id") }},
		{"missing exam type", func(b map[string]any) { delete(b, "exam_type") }},
		{"missing options", func(b map[string]any) { delete(b, "options") }},
		{"empty options", func(b map[string]any) { b["options"] = map[string]string{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := sampleBody()
			tc.mutate(body)
			resp := doJSON(t, app, http.MethodPost, "/api/v1/admin/questions", body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestAdminListIncludesEverything(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/questions", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("empty list: status %d, want 200", resp.StatusCode)
	}

	createQuestion(t, app, sampleBody())
	other := sampleBody()
	other["text"] = "What is 3 + 3?"
	other["exam_type"] = "midterm"
	createQuestion(t, app, other)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/questions", nil)
	var body struct {
		Questions []map[string]any `json:"questions"`
	}
	decodeBody(t, resp, &body)
	if len(body.Questions) != 2 {
		t.Errorf("got %d questions, want 2", len(body.Questions))
	}
}

func TestStudentListQuestions(t *testing.T) {
	app := newTestApp(t)
	createQuestion(t, app, sampleBody())

	resp := doJSON(t, app, http.MethodGet, "/api/v1/questions?course_id=101&exam_type=final", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
	var listed []map[string]any
	decodeBody(t, resp, &listed)
	if len(listed) != 1 {
		t.Fatalf("got %d questions, want 1", len(listed))
	}
	if _, ok := listed[0]["correct_option"]; ok {
		t.Errorf("student listing exposes the answer key: %v", listed[0])
	}
	if listed[0]["text"] != "What is 2 + 2?" {
		t.Errorf("text = %v", listed[0]["text"])
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/questions?course_id=101", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing exam_type: status %d, want 400", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/questions?course_id=999&exam_type=final", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("non-matching filter: status %d, want 404", resp.StatusCode)
	}
}

func TestSubmitAnswers(t *testing.T) {
	app := newTestApp(t)
	created := createQuestion(t, app, sampleBody())
	id := created["id"].(string)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/submit", map[string]any{
		"submissions": []map[string]string{
			{"question_id": id, "chosen_option": "B"},
			{"question_id": id, "chosen_option": "A"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
	var body struct {
		Results []services.Result `json:"results"`
	}
	decodeBody(t, resp, &body)
	if len(body.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(body.Results))
	}
	if !body.Results[0].Correct || body.Results[1].Correct {
		t.Errorf("correctness = %v/%v, want true/false", body.Results[0].Correct, body.Results[1].Correct)
	}
}

func TestSubmitAnswersFailures(t *testing.T) {
	app := newTestApp(t)
	created := createQuestion(t, app, sampleBody())
	id := created["id"].(string)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"no submissions key", map[string]any{}, http.StatusBadRequest},
		{"submissions not a list", map[string]any{"submissions": "nope"}, http.StatusBadRequest},
		{"empty list", map[string]any{"submissions": []any{}}, http.StatusBadRequest},
		{"item missing chosen option", map[string]any{"submissions": []map[string]string{{"question_id": id}}}, http.StatusBadRequest},
		{"unknown id aborts batch", map[string]any{"submissions": []map[string]string{
			{"question_id": id, "chosen_option": "B"},
			{"question_id": "0b1f2d74-9d5c-4a52-b478-0a1b2c3d4e5f", "chosen_option": "A"},
		}}, http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/v1/submit", tc.body)
			if resp.StatusCode != tc.want {
				t.Errorf("status %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestUploadPDFRejections(t *testing.T) {
	app := newTestApp(t)

	upload := func(t *testing.T, filename string) *http.Response {
		t.Helper()
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		if filename != "" {
			part, err := w.CreateFormFile("file", filename)
			if err != nil {
				t.Fatalf("create form file: %v", err)
			}
			fmt.Fprint(part, "dummy contents")
		}
		w.WriteField("course_id", "101")
		w.WriteField("exam_type", "final")
		w.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/upload-pdf", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("upload: %v", err)
		}
		return resp
	}

	resp := upload(t, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("no file: status %d, want 400", resp.StatusCode)
	}

	resp = upload(t, "notes.txt")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("non-pdf name: status %d, want 400", resp.StatusCode)
	}

	// A .pdf-named file with unreadable contents passes the suffix check and
	// fails at extraction.
	resp = upload(t, "questions.pdf")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("unreadable pdf: status %d, want 500", resp.StatusCode)
	}
}
