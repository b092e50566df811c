package client

import (
	"context"
	"errors"
	"testing"
)

type fakeClientRepo struct {
	clients  map[string]*Client
	order    []string
	programs map[string]struct{}
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{
		clients:  make(map[string]*Client),
		programs: make(map[string]struct{}),
	}
}

func (r *fakeClientRepo) Create(ctx context.Context, client *Client) error {
	if _, ok := r.programs[client.ProgramID]; !ok {
		return ErrProgramReference
	}
	r.clients[client.ID] = client
	r.order = append(r.order, client.ID)
	return nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id string) (*Client, error) {
	stored, ok := r.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeClientRepo) GetDetailByID(ctx context.Context, id string) (*Detail, error) {
	stored, ok := r.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	return &Detail{Client: *stored}, nil
}

func (r *fakeClientRepo) List(ctx context.Context, filter ListFilter) ([]Client, error) {
	result := make([]Client, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.clients[id])
	}
	return result, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *Client) error {
	stored, ok := r.clients[client.ID]
	if !ok {
		return ErrClientNotFound
	}
	if _, ok := r.programs[client.ProgramID]; !ok {
		return ErrProgramReference
	}
	stored.FullName = client.FullName
	stored.Email = client.Email
	stored.Phone = client.Phone
	stored.ProgramID = client.ProgramID
	stored.UpdatedAt = client.UpdatedAt
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id string) error {
	delete(r.clients, id)
	for i, candidate := range r.order {
		if candidate == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func strPtr(value string) *string {
	return &value
}

func TestCreateClientSuccess(t *testing.T) {
	repo := newFakeClientRepo()
	repo.programs["prog-1"] = struct{}{}
	svc := NewService(repo)

	result, err := svc.Create(context.Background(), CreateInput{
		ProgramID: "prog-1",
		FullName:  "Jane Doe",
		Email:     strPtr("jane@x.com"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.FullName != "Jane Doe" {
		t.Fatalf("expected full name echoed, got %q", result.FullName)
	}
	if result.Email == nil || *result.Email != "jane@x.com" {
		t.Fatalf("expected email stored, got %v", result.Email)
	}
	if result.Phone != nil {
		t.Fatalf("expected nil phone, got %v", result.Phone)
	}
	if _, ok := repo.clients[result.ID]; !ok {
		t.Fatalf("expected client persisted")
	}
}

func TestCreateClientMissingProgram(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{ProgramID: "missing", FullName: "Jane Doe"})
	if !errors.Is(err, ErrProgramReference) {
		t.Fatalf("expected ErrProgramReference, got %v", err)
	}
	if len(repo.clients) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestCreateClientEmptyEmailStoredAsNull(t *testing.T) {
	repo := newFakeClientRepo()
	repo.programs["prog-1"] = struct{}{}
	svc := NewService(repo)

	result, err := svc.Create(context.Background(), CreateInput{
		ProgramID: "prog-1",
		FullName:  "Jane Doe",
		Email:     strPtr("   "),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Email != nil {
		t.Fatalf("expected blank email normalized to nil, got %v", result.Email)
	}
}

func TestUpdateClientPartial(t *testing.T) {
	repo := newFakeClientRepo()
	repo.programs["prog-1"] = struct{}{}
	repo.clients["c-1"] = &Client{ID: "c-1", FullName: "Jane Doe", Email: strPtr("jane@x.com"), ProgramID: "prog-1"}
	repo.order = []string{"c-1"}
	svc := NewService(repo)

	result, err := svc.Update(context.Background(), "c-1", Patch{Phone: strPtr("+123456")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.FullName != "Jane Doe" {
		t.Fatalf("expected full name untouched, got %q", result.FullName)
	}
	if result.Email == nil || *result.Email != "jane@x.com" {
		t.Fatalf("expected email untouched, got %v", result.Email)
	}
	if result.Phone == nil || *result.Phone != "+123456" {
		t.Fatalf("expected phone updated, got %v", result.Phone)
	}
}

func TestUpdateClientClearsPresentEmptyEmail(t *testing.T) {
	repo := newFakeClientRepo()
	repo.programs["prog-1"] = struct{}{}
	repo.clients["c-1"] = &Client{ID: "c-1", FullName: "Jane Doe", Email: strPtr("jane@x.com"), ProgramID: "prog-1"}
	repo.order = []string{"c-1"}
	svc := NewService(repo)

	result, err := svc.Update(context.Background(), "c-1", Patch{Email: strPtr("")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Email != nil {
		t.Fatalf("expected email cleared, got %v", result.Email)
	}
	if repo.clients["c-1"].Email != nil {
		t.Fatalf("expected cleared email persisted")
	}
}

func TestCreateClientKeepsPaddedFullName(t *testing.T) {
	repo := newFakeClientRepo()
	repo.programs["prog-1"] = struct{}{}
	svc := NewService(repo)

	result, err := svc.Create(context.Background(), CreateInput{ProgramID: "prog-1", FullName: " Jane Doe "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.FullName != " Jane Doe " {
		t.Fatalf("expected full name stored verbatim, got %q", result.FullName)
	}
}

func TestUpdateClientRejectsEmptyFullName(t *testing.T) {
	repo := newFakeClientRepo()
	repo.programs["prog-1"] = struct{}{}
	repo.clients["c-1"] = &Client{ID: "c-1", FullName: "Jane Doe", ProgramID: "prog-1"}
	repo.order = []string{"c-1"}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "c-1", Patch{FullName: strPtr("  ")})
	if !errors.Is(err, ErrFullNameRequired) {
		t.Fatalf("expected ErrFullNameRequired, got %v", err)
	}
	if repo.clients["c-1"].FullName != "Jane Doe" {
		t.Fatalf("expected full name unchanged")
	}
}

func TestUpdateClientMissingProgramReference(t *testing.T) {
	repo := newFakeClientRepo()
	repo.programs["prog-1"] = struct{}{}
	repo.clients["c-1"] = &Client{ID: "c-1", FullName: "Jane Doe", ProgramID: "prog-1"}
	repo.order = []string{"c-1"}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "c-1", Patch{ProgramID: strPtr("missing")})
	if !errors.Is(err, ErrProgramReference) {
		t.Fatalf("expected ErrProgramReference, got %v", err)
	}
}

func TestUpdateClientNotFound(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "missing", Patch{Phone: strPtr("1")})
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestDeleteClientNotFound(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestDeleteClientSuccess(t *testing.T) {
	repo := newFakeClientRepo()
	repo.programs["prog-1"] = struct{}{}
	repo.clients["c-1"] = &Client{ID: "c-1", FullName: "Jane Doe", ProgramID: "prog-1"}
	repo.order = []string{"c-1"}
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), "c-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.clients["c-1"]; ok {
		t.Fatalf("expected client removed")
	}
}
