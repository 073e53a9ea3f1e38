package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	qmodel "quizku_backend/internals/features/quizzes/questions/model"
	"quizku_backend/internals/features/quizzes/questions/repository"
	helperAuth "quizku_backend/internals/helpers/auth"
)

/* ===================== fake repository ===================== */

type fakeQuestionRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]qmodel.QuestionModel
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{rows: map[uuid.UUID]qmodel.QuestionModel{}}
}

func (f *fakeQuestionRepo) Create(_ context.Context, m *qmodel.QuestionModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = m.CreatedAt
	f.rows[m.ID] = *m
	return nil
}

func (f *fakeQuestionRepo) List(_ context.Context, flt repository.QuestionFilter, offset, limit int) ([]qmodel.QuestionModel, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]qmodel.QuestionModel, 0, len(f.rows))
	for _, r := range f.rows {
		if flt.Difficulty != "" && string(r.Difficulty) != flt.Difficulty {
			continue
		}
		if flt.Category != "" && r.Category != flt.Category {
			continue
		}
		if flt.Status != "" && string(r.Status) != flt.Status {
			continue
		}
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	if offset >= len(all) {
		return []qmodel.QuestionModel{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeQuestionRepo) FindByID(_ context.Context, id uuid.UUID) (*qmodel.QuestionModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (f *fakeQuestionRepo) Update(_ context.Context, m *qmodel.QuestionModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.UpdatedAt = time.Now()
	f.rows[m.ID] = *m
	return nil
}

func (f *fakeQuestionRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, id)
	return nil
}

/* ===================== harness ===================== */

// identity disuntik lewat header supaya test tidak perlu mint JWT
func newTestApp(repo repository.QuestionRepository) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	app.Use(func(c *fiber.Ctx) error {
		if uid := c.Get("X-Test-User"); uid != "" {
			helperAuth.SetIdentity(c, helperAuth.Identity{
				UserID: uuid.MustParse(uid),
				Role:   c.Get("X-Test-Role", "user"),
			}, "")
		}
		return c.Next()
	})

	ctl := NewQuestionController(repo)
	g := app.Group("/api/questions")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	return app
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		Total int64 `json:"total"`
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Pages int   `json:"pages"`
	} `json:"pagination"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, user uuid.UUID, role string) (int, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if user != uuid.Nil {
		req.Header.Set("X-Test-User", user.String())
		req.Header.Set("X-Test-Role", role)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &env); err != nil {
			t.Fatalf("decode %s: %v", string(raw), err)
		}
	}
	return resp.StatusCode, env
}

func validBody() map[string]any {
	return map[string]any{
		"title":      "What is 2+2?",
		"difficulty": "easy",
		"category":   "math",
		"options": []map[string]any{
			{"text": "3", "isCorrect": false},
			{"text": "4", "isCorrect": true},
		},
	}
}

type questionJSON struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Marks     int       `json:"marks"`
	TimeLimit int       `json:"timeLimit"`
	Tags      []string  `json:"tags"`
	Status    string    `json:"status"`
	CreatedBy uuid.UUID `json:"createdBy"`
}

func decodeQuestion(t *testing.T, env envelope) questionJSON {
	t.Helper()
	var q questionJSON
	if err := sonic.Unmarshal(env.Data, &q); err != nil {
		t.Fatalf("decode question: %v", err)
	}
	return q
}

func seedQuestion(t *testing.T, repo *fakeQuestionRepo, owner uuid.UUID, createdAt time.Time) qmodel.QuestionModel {
	t.Helper()
	m := qmodel.QuestionModel{
		Title:      "seed",
		Options:    []qmodel.QuestionOption{{Text: "a", IsCorrect: true}, {Text: "b"}},
		Difficulty: qmodel.DifficultyEasy,
		Category:   "math",
		Marks:      1,
		TimeLimit:  60,
		Status:     qmodel.StatusActive,
		CreatedBy:  owner,
		CreatedAt:  createdAt,
	}
	if err := repo.Create(context.Background(), &m); err != nil {
		t.Fatal(err)
	}
	return m
}

/* ===================== tests ===================== */

func TestCreate_AppliesDefaults(t *testing.T) {
	repo := newFakeQuestionRepo()
	app := newTestApp(repo)
	coord := uuid.New()

	status, env := doJSON(t, app, http.MethodPost, "/api/questions", validBody(), coord, "coordinator")
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", status, env.Message)
	}
	q := decodeQuestion(t, env)
	if q.Marks != 1 || q.TimeLimit != 60 {
		t.Errorf("defaults = marks %d timeLimit %d, want 1/60", q.Marks, q.TimeLimit)
	}
	if q.Tags == nil || len(q.Tags) != 0 {
		t.Errorf("tags = %v, want empty array", q.Tags)
	}
	if q.Status != "active" {
		t.Errorf("status = %q, want active", q.Status)
	}
	if q.CreatedBy != coord {
		t.Errorf("createdBy = %s, want %s", q.CreatedBy, coord)
	}
}

func TestCreate_RejectsBadOptions(t *testing.T) {
	tests := []struct {
		name    string
		options []map[string]any
		wantMsg string
	}{
		{"single option", []map[string]any{{"text": "4", "isCorrect": true}}, qmodel.ErrTooFewOptions.Error()},
		{"no options", nil, qmodel.ErrTooFewOptions.Error()},
		{"none correct", []map[string]any{{"text": "3"}, {"text": "4"}}, qmodel.ErrNoCorrectOption.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeQuestionRepo()
			app := newTestApp(repo)

			body := validBody()
			body["options"] = tt.options
			status, env := doJSON(t, app, http.MethodPost, "/api/questions", body, uuid.New(), "coordinator")
			if status != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", status)
			}
			if env.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", env.Message, tt.wantMsg)
			}
			if len(repo.rows) != 0 {
				t.Errorf("repo has %d rows, want 0", len(repo.rows))
			}
		})
	}
}

func TestCreate_RequiresLogin(t *testing.T) {
	app := newTestApp(newFakeQuestionRepo())
	status, _ := doJSON(t, app, http.MethodPost, "/api/questions", validBody(), uuid.Nil, "")
	if status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
}

func TestList_Pagination(t *testing.T) {
	repo := newFakeQuestionRepo()
	app := newTestApp(repo)
	owner := uuid.New()

	base := time.Now()
	ids := make([]uuid.UUID, 12) // ids[0] paling baru
	for i := 0; i < 12; i++ {
		ids[i] = seedQuestion(t, repo, owner, base.Add(-time.Duration(i)*time.Minute)).ID
	}

	status, env := doJSON(t, app, http.MethodGet, "/api/questions?page=2&limit=5", nil, owner, "user")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var items []questionJSON
	if err := sonic.Unmarshal(env.Data, &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 5 {
		t.Fatalf("got %d items, want 5", len(items))
	}
	for i, it := range items {
		if it.ID != ids[5+i] {
			t.Errorf("item %d = %s, want %s", i, it.ID, ids[5+i])
		}
	}
	p := env.Pagination
	if p.Total != 12 || p.Page != 2 || p.Limit != 5 || p.Pages != 3 {
		t.Errorf("pagination = %+v, want total 12 page 2 limit 5 pages 3", p)
	}
}

func TestList_FilterByDifficulty(t *testing.T) {
	repo := newFakeQuestionRepo()
	app := newTestApp(repo)
	owner := uuid.New()

	seedQuestion(t, repo, owner, time.Now())
	hard := seedQuestion(t, repo, owner, time.Now())
	hard.Difficulty = qmodel.DifficultyHard
	_ = repo.Update(context.Background(), &hard)

	_, env := doJSON(t, app, http.MethodGet, "/api/questions?difficulty=HARD", nil, owner, "user")
	var items []questionJSON
	_ = sonic.Unmarshal(env.Data, &items)
	if len(items) != 1 || items[0].ID != hard.ID {
		t.Fatalf("filter returned %+v, want only %s", items, hard.ID)
	}
	if env.Pagination.Total != 1 {
		t.Errorf("total = %d, want 1", env.Pagination.Total)
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeQuestionRepo()
	app := newTestApp(repo)
	user := uuid.New()
	m := seedQuestion(t, repo, uuid.New(), time.Now())

	if status, _ := doJSON(t, app, http.MethodGet, "/api/questions/"+m.ID.String(), nil, user, "user"); status != http.StatusOK {
		t.Errorf("existing: status = %d, want 200", status)
	}
	status, env := doJSON(t, app, http.MethodGet, "/api/questions/"+uuid.NewString(), nil, user, "user")
	if status != http.StatusNotFound || env.Message != "Question not found" {
		t.Errorf("missing: status = %d msg %q, want 404 Question not found", status, env.Message)
	}
	if status, _ := doJSON(t, app, http.MethodGet, "/api/questions/not-a-uuid", nil, user, "user"); status != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", status)
	}
}

func TestUpdate_OwnerOnly(t *testing.T) {
	repo := newFakeQuestionRepo()
	app := newTestApp(repo)
	owner := uuid.New()
	m := seedQuestion(t, repo, owner, time.Now())

	body := validBody()
	body["title"] = "changed"
	body["status"] = "draft"
	body["marks"] = 5

	// coordinator lain tetap bukan pemilik
	status, env := doJSON(t, app, http.MethodPut, "/api/questions/"+m.ID.String(), body, uuid.New(), "coordinator")
	if status != http.StatusForbidden || env.Message != "Not authorized to update this question" {
		t.Fatalf("non-owner: status = %d msg %q", status, env.Message)
	}
	if got, _ := repo.FindByID(context.Background(), m.ID); got.Title != "seed" {
		t.Fatalf("non-owner update leaked: title = %q", got.Title)
	}

	status, env = doJSON(t, app, http.MethodPut, "/api/questions/"+m.ID.String(), body, owner, "user")
	if status != http.StatusOK {
		t.Fatalf("owner: status = %d (%s)", status, env.Message)
	}
	q := decodeQuestion(t, env)
	if q.Title != "changed" || q.Status != "draft" || q.Marks != 5 || q.TimeLimit != 60 {
		t.Errorf("updated = %+v", q)
	}
	if q.CreatedBy != owner {
		t.Errorf("createdBy changed to %s", q.CreatedBy)
	}
}

func TestUpdate_RevalidatesOptions(t *testing.T) {
	repo := newFakeQuestionRepo()
	app := newTestApp(repo)
	owner := uuid.New()
	m := seedQuestion(t, repo, owner, time.Now())

	body := validBody()
	body["status"] = "active"
	body["options"] = []map[string]any{{"text": "a"}, {"text": "b"}}

	status, env := doJSON(t, app, http.MethodPut, "/api/questions/"+m.ID.String(), body, owner, "user")
	if status != http.StatusBadRequest || env.Message != qmodel.ErrNoCorrectOption.Error() {
		t.Fatalf("status = %d msg %q, want 400 %q", status, env.Message, qmodel.ErrNoCorrectOption)
	}
}

func TestUpdate_MissingIs404BeforeOwnership(t *testing.T) {
	app := newTestApp(newFakeQuestionRepo())
	body := validBody()
	body["status"] = "active"
	status, _ := doJSON(t, app, http.MethodPut, "/api/questions/"+uuid.NewString(), body, uuid.New(), "user")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestDelete(t *testing.T) {
	repo := newFakeQuestionRepo()
	app := newTestApp(repo)
	owner := uuid.New()
	m := seedQuestion(t, repo, owner, time.Now())
	path := "/api/questions/" + m.ID.String()

	status, env := doJSON(t, app, http.MethodDelete, path, nil, uuid.New(), "admin")
	if status != http.StatusForbidden || env.Message != "Not authorized to delete this question" {
		t.Fatalf("non-owner: status = %d msg %q", status, env.Message)
	}

	if status, _ = doJSON(t, app, http.MethodDelete, path, nil, owner, "user"); status != http.StatusOK {
		t.Fatalf("owner: status = %d, want 200", status)
	}
	if _, err := repo.FindByID(context.Background(), m.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("row still present: %v", err)
	}

	if status, _ = doJSON(t, app, http.MethodDelete, path, nil, owner, "user"); status != http.StatusNotFound {
		t.Fatalf("second delete: status = %d, want 404", status)
	}
}

type brokenQuestionRepo struct{ err error }

func (b brokenQuestionRepo) Create(context.Context, *qmodel.QuestionModel) error { return b.err }

func (b brokenQuestionRepo) List(context.Context, repository.QuestionFilter, int, int) ([]qmodel.QuestionModel, int64, error) {
	return nil, 0, b.err
}

func (b brokenQuestionRepo) FindByID(context.Context, uuid.UUID) (*qmodel.QuestionModel, error) {
	return nil, b.err
}

func (b brokenQuestionRepo) Update(context.Context, *qmodel.QuestionModel) error { return b.err }

func (b brokenQuestionRepo) Delete(context.Context, uuid.UUID) error { return b.err }

func TestStoreFailureReturns500WithRawError(t *testing.T) {
	app := newTestApp(brokenQuestionRepo{err: errors.New("connection refused")})
	id := "/api/questions/" + uuid.NewString()
	update := validBody()
	update["status"] = "active"

	tests := []struct {
		name, method, path string
		body               any
		wantMsg            string
	}{
		{"create", http.MethodPost, "/api/questions", validBody(), "Error creating question"},
		{"list", http.MethodGet, "/api/questions", nil, "Error fetching questions"},
		{"get", http.MethodGet, id, nil, "Error fetching question"},
		{"update", http.MethodPut, id, update, "Error updating question"},
		{"delete", http.MethodDelete, id, nil, "Error deleting question"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.body != nil {
				b, _ := sonic.Marshal(tt.body)
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader(b))
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Test-User", uuid.NewString())
			req.Header.Set("X-Test-Role", "coordinator")

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			var out struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
				Error   string `json:"error"`
			}
			raw, _ := io.ReadAll(resp.Body)
			if err := sonic.Unmarshal(raw, &out); err != nil {
				t.Fatalf("decode %s: %v", raw, err)
			}

			if resp.StatusCode != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500 (%s)", resp.StatusCode, raw)
			}
			if out.Success || out.Message != tt.wantMsg || out.Error != "connection refused" {
				t.Errorf("body = %+v", out)
			}
		})
	}
}
