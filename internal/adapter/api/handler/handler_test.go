package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

type stubQuestionRepo struct {
	created *entity.Question
}

func (s *stubQuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	question.ID = "q-1"
	s.created = question
	return nil
}

func (s *stubQuestionRepo) GetByID(ctx context.Context, id string) (*entity.Question, error) {
	return nil, errors.NotFound("Question", nil)
}

func (s *stubQuestionRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Question, error) {
	return nil, nil
}

func (s *stubQuestionRepo) Update(ctx context.Context, question *entity.Question) error { return nil }

func (s *stubQuestionRepo) Delete(ctx context.Context, id string) error { return nil }

type stubProductRepo struct {
	created *entity.Product
}

func (s *stubProductRepo) Create(ctx context.Context, product *entity.Product) error {
	product.ID = "p-1"
	s.created = product
	return nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return nil, errors.NotFound("Product", nil)
}

func (s *stubProductRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }

func (s *stubProductRepo) SetApproval(ctx context.Context, id string, approved bool) error {
	return nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id string) error { return nil }

type stubNoteRepo struct {
	created *entity.Note
}

func (s *stubNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	note.ID = "n-1"
	s.created = note
	return nil
}

func (s *stubNoteRepo) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	return nil, errors.NotFound("Note", nil)
}

func (s *stubNoteRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Note, error) {
	return nil, nil
}

func (s *stubNoteRepo) Delete(ctx context.Context, id string) error { return nil }

type stubUserRepo struct{}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) GetByUID(ctx context.Context, uid string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) AppendSavedNote(ctx context.Context, uid, noteID string) error { return nil }

func (s *stubUserRepo) RemoveSavedNote(ctx context.Context, uid, noteID string) error { return nil }

type stubAdvisor struct {
	answer string
	err    error
}

func (s *stubAdvisor) Advise(ctx context.Context, prompt, expertName string) (string, error) {
	return s.answer, s.err
}

func TestCreateQuestionIgnoresClientStatusAndDate(t *testing.T) {
	repo := &stubQuestionRepo{}
	h := NewQuestionHandler(usecase.NewQuestionUseCase(repo))

	body := `{"question":"Why is my paddy yellowing?","expert":"Dr. Nimal Perera","status":"answered","date":"Jan 1, 1990"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/questions", body)

	require.NoError(t, h.CreateQuestion(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, entity.QuestionStatusPending, created.Status)
	assert.NotEqual(t, "Jan 1, 1990", created.Date)
}

func TestCreateQuestionMissingFields(t *testing.T) {
	h := NewQuestionHandler(usecase.NewQuestionUseCase(&stubQuestionRepo{}))

	c, rec := newTestContext(t, http.MethodPost, "/api/questions", `{"question":"no expert"}`)

	require.NoError(t, h.CreateQuestion(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error submitting question")
}

func TestCreateProductMissingFieldsIs400(t *testing.T) {
	repo := &stubProductRepo{}
	h := NewProductHandler(usecase.NewProductUseCase(repo))

	c, rec := newTestContext(t, http.MethodPost, "/api/products", `{"name":"Neem oil"}`)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Required fields are missing")
	assert.Nil(t, repo.created)
}

func TestCreateProductDefaultsCurrency(t *testing.T) {
	repo := &stubProductRepo{}
	h := NewProductHandler(usecase.NewProductUseCase(repo))

	body := `{"name":"Neem oil","category":"Pesticide","price":1250,"seller_name":"Green Agro","seller_contact":"+94 77 123 4567","seller_location":"Kandy"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/products", body)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, entity.DefaultCurrency, created.Currency)
	assert.False(t, created.IsApproved)
}

func TestListProductsReturnsEmptyArray(t *testing.T) {
	h := NewProductHandler(usecase.NewProductUseCase(&stubProductRepo{}))

	c, rec := newTestContext(t, http.MethodGet, "/api/products", "")

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestCreateNoteUsesAuthenticatedUID(t *testing.T) {
	noteRepo := &stubNoteRepo{}
	h := NewNoteHandler(usecase.NewNoteUseCase(noteRepo, &stubUserRepo{}))

	body := `{"user_id":"someone-else","title":"Obs","content":"Brown spots"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/notes", body)
	c.Set("uid", "uid-1")

	require.NoError(t, h.CreateNote(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, noteRepo.created)
	assert.Equal(t, "uid-1", noteRepo.created.UserID)
}

func TestChatMissingPrompt(t *testing.T) {
	h := NewChatHandler(usecase.NewChatUseCase(&stubAdvisor{}))

	c, rec := newTestContext(t, http.MethodPost, "/api/chat", `{"expertName":"Dr. Nimal Perera"}`)

	require.NoError(t, h.Chat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "User prompt is required.", resp.Error)
}

func TestChatSuccessEnvelope(t *testing.T) {
	h := NewChatHandler(usecase.NewChatUseCase(&stubAdvisor{answer: "Spray at dusk."}))

	c, rec := newTestContext(t, http.MethodPost, "/api/chat", `{"userPrompt":"When should I spray?"}`)

	require.NoError(t, h.Chat(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Spray at dusk.", resp.Response)
}

func TestChatUpstreamFailure(t *testing.T) {
	h := NewChatHandler(usecase.NewChatUseCase(&stubAdvisor{
		err: errors.Internal("Gemini API call failed.", fmt.Errorf("rpc error")),
	}))

	c, rec := newTestContext(t, http.MethodPost, "/api/chat", `{"userPrompt":"When should I spray?"}`)

	require.NoError(t, h.Chat(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gemini API call failed.")
}

func TestHealth(t *testing.T) {
	h := NewHealthHandler()

	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, h.CheckHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
