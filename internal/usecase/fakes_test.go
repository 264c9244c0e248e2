package usecase

import (
	"context"
	"fmt"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

type fakeQuestionRepo struct {
	created []*entity.Question
	listed  map[string]interface{}
}

func (f *fakeQuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	question.ID = fmt.Sprintf("q-%d", len(f.created)+1)
	f.created = append(f.created, question)
	return nil
}

func (f *fakeQuestionRepo) GetByID(ctx context.Context, id string) (*entity.Question, error) {
	for _, q := range f.created {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, errors.NotFound("Question", nil)
}

func (f *fakeQuestionRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Question, error) {
	f.listed = filter
	return f.created, nil
}

func (f *fakeQuestionRepo) Update(ctx context.Context, question *entity.Question) error {
	return nil
}

func (f *fakeQuestionRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	listed   map[string]interface{}
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	product.ID = fmt.Sprintf("p-%d", len(f.products)+1)
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (f *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Product, error) {
	f.listed = filter
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) SetApproval(ctx context.Context, id string, approved bool) error {
	product, ok := f.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.IsApproved = approved
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(f.products, id)
	return nil
}

type fakeNoteRepo struct {
	notes map[string]*entity.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]*entity.Note{}}
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	note.ID = fmt.Sprintf("n-%d", len(f.notes)+1)
	f.notes[note.ID] = note
	return nil
}

func (f *fakeNoteRepo) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	note, ok := f.notes[id]
	if !ok {
		return nil, errors.NotFound("Note", nil)
	}
	return note, nil
}

func (f *fakeNoteRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Note, error) {
	var out []*entity.Note
	for _, n := range f.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id string) error {
	delete(f.notes, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User

	appendErr error
	removeErr error
	appended  []string
	removed   []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.FirebaseUID] = user
	return nil
}

func (f *fakeUserRepo) GetByUID(ctx context.Context, uid string) (*entity.User, error) {
	user, ok := f.users[uid]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.FirebaseUID] = user
	return nil
}

func (f *fakeUserRepo) AppendSavedNote(ctx context.Context, uid, noteID string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, noteID)
	if user, ok := f.users[uid]; ok {
		user.SavedNotes = append(user.SavedNotes, noteID)
	}
	return nil
}

func (f *fakeUserRepo) RemoveSavedNote(ctx context.Context, uid, noteID string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, noteID)
	if user, ok := f.users[uid]; ok {
		kept := user.SavedNotes[:0]
		for _, id := range user.SavedNotes {
			if id != noteID {
				kept = append(kept, id)
			}
		}
		user.SavedNotes = kept
	}
	return nil
}

type fakeAdvisor struct {
	answer string
	err    error

	prompt     string
	expertName string
}

func (f *fakeAdvisor) Advise(ctx context.Context, prompt, expertName string) (string, error) {
	f.prompt = prompt
	f.expertName = expertName
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}
