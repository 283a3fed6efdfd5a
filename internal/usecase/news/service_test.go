package news_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsroom/internal/domain/entity"
	newsUC "newsroom/internal/usecase/news"
)

// minimal in-memory NewsRepository
type stubRepo struct {
	data   map[int64]*entity.News
	nextID int64
	err    error // forces an error when set
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.News{}, nextID: 1}
}

func (s *stubRepo) ListRecent(_ context.Context, limit int) ([]*entity.News, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.News
	for _, v := range s.data {
		out = append(out, v)
	}
	// newest first
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Date.After(out[i].Date) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.News, error) {
	return s.data[id], s.err
}

func (s *stubRepo) Create(_ context.Context, n *entity.News) error {
	if s.err != nil {
		return s.err
	}
	n.ID = s.nextID
	s.nextID++
	s.data[n.ID] = n
	return nil
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}

func seed(t *testing.T, repo *stubRepo, count int, start time.Time) {
	t.Helper()
	for i := 0; i < count; i++ {
		err := repo.Create(context.Background(), &entity.News{
			Title: "Новость",
			Text:  "Просто текст.",
			Date:  start.Add(time.Duration(i) * 24 * time.Hour),
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestHomeLimitsAndOrders(t *testing.T) {
	repo := newStub()
	seed(t, repo, 15, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := newsUC.Service{Repo: repo}

	items, err := svc.Home(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(items) != 10 {
		t.Fatalf("expected 10 items on home page, got %d", len(items))
	}

	for i := 1; i < len(items); i++ {
		if items[i].Date.After(items[i-1].Date) {
			t.Errorf("items out of order: item %d is newer than item %d", i, i-1)
		}
	}
}

func TestHomeRejectsNonPositiveLimit(t *testing.T) {
	svc := newsUC.Service{Repo: newStub()}

	if _, err := svc.Home(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero limit, got nil")
	}
}

func TestGet(t *testing.T) {
	repo := newStub()
	created, err := (&newsUC.Service{Repo: repo}).Create(context.Background(), newsUC.CreateInput{
		Title: "Заголовок",
		Text:  "Текст новости",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	svc := newsUC.Service{Repo: repo}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Title != "Заголовок" {
		t.Errorf("expected title to round-trip, got %q", got.Title)
	}

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, newsUC.ErrNewsNotFound) {
		t.Errorf("expected ErrNewsNotFound, got %v", err)
	}

	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, newsUC.ErrInvalidNewsID) {
		t.Errorf("expected ErrInvalidNewsID, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newsUC.Service{Repo: newStub()}

	tests := []struct {
		name  string
		in    newsUC.CreateInput
		field string
	}{
		{"missing title", newsUC.CreateInput{Text: "Текст"}, "title"},
		{"missing text", newsUC.CreateInput{Title: "Заголовок"}, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			var ve *entity.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, ve.Field)
			}
		})
	}
}

func TestCreateDefaultsDate(t *testing.T) {
	svc := newsUC.Service{Repo: newStub()}

	created, err := svc.Create(context.Background(), newsUC.CreateInput{
		Title: "Заголовок",
		Text:  "Текст",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Date.IsZero() {
		t.Error("expected date to default to now")
	}
	if created.ID == 0 {
		t.Error("expected generated ID to be set")
	}
}

func TestRepoErrorPropagates(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("boom")
	svc := newsUC.Service{Repo: repo}

	if _, err := svc.Home(context.Background(), 10); err == nil {
		t.Error("expected error from Home")
	}
	if _, err := svc.Get(context.Background(), 1); err == nil {
		t.Error("expected error from Get")
	}
	if _, err := svc.Count(context.Background()); err == nil {
		t.Error("expected error from Count")
	}
}
