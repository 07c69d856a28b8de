package service

import (
	"context"
	"time"

	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/internal/repository"
)

type memoryTasks struct {
	tasks   map[string]models.Task
	creates int
	updates int
}

func newMemoryTasks(seed ...models.Task) *memoryTasks {
	m := &memoryTasks{tasks: map[string]models.Task{}}
	for _, t := range seed {
		m.tasks[t.ID] = t
	}
	return m
}

func (m *memoryTasks) List(ctx context.Context, studentID string) ([]models.Task, error) {
	out := make([]models.Task, 0)
	for _, t := range m.tasks {
		if t.StudentID == studentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memoryTasks) FindByID(ctx context.Context, id string) (*models.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, notFound("task", id)
	}
	return &t, nil
}

func (m *memoryTasks) Create(ctx context.Context, task *models.Task) error {
	m.creates++
	m.tasks[task.ID] = *task
	return nil
}

func (m *memoryTasks) UpdateStatus(ctx context.Context, id string, status models.TaskStatus, updatedAt time.Time) (*models.Task, error) {
	m.updates++
	t, ok := m.tasks[id]
	if !ok {
		return nil, notFound("task", id)
	}
	t.Status = status
	t.UpdatedAt = updatedAt
	m.tasks[id] = t
	return &t, nil
}

type memoryNotes struct {
	notes   map[string]models.Note
	deletes int
}

func newMemoryNotes(seed ...models.Note) *memoryNotes {
	m := &memoryNotes{notes: map[string]models.Note{}}
	for _, n := range seed {
		m.notes[n.ID] = n
	}
	return m
}

func (m *memoryNotes) List(ctx context.Context, studentID string) ([]models.Note, error) {
	out := make([]models.Note, 0)
	for _, n := range m.notes {
		if n.StudentID == studentID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memoryNotes) FindByID(ctx context.Context, id string) (*models.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, notFound("note", id)
	}
	return &n, nil
}

func (m *memoryNotes) Create(ctx context.Context, note *models.Note) error {
	m.notes[note.ID] = *note
	return nil
}

func (m *memoryNotes) Update(ctx context.Context, id string, changes models.NoteChanges) (*models.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, notFound("note", id)
	}
	if changes.Content != nil {
		n.Content = *changes.Content
	}
	if changes.Visibility != nil {
		n.Visibility = *changes.Visibility
	}
	n.UpdatedAt = changes.UpdatedAt
	m.notes[id] = n
	return &n, nil
}

func (m *memoryNotes) Delete(ctx context.Context, id string) error {
	if _, ok := m.notes[id]; !ok {
		return notFound("note", id)
	}
	m.deletes++
	delete(m.notes, id)
	return nil
}

type memoryCommunications struct {
	items []models.Communication
	fail  bool
}

func (m *memoryCommunications) List(ctx context.Context, studentID string) ([]models.Communication, error) {
	if m.fail {
		return nil, errStoreDown
	}
	out := make([]models.Communication, 0)
	for _, c := range m.items {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryCommunications) Create(ctx context.Context, item *models.Communication) error {
	if m.fail {
		return errStoreDown
	}
	m.items = append(m.items, *item)
	return nil
}

type memoryInteractions struct {
	items []models.Interaction
}

func (m *memoryInteractions) List(ctx context.Context, studentID string) ([]models.Interaction, error) {
	out := make([]models.Interaction, 0)
	for _, i := range m.items {
		if i.StudentID == studentID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *memoryInteractions) Create(ctx context.Context, item *models.Interaction) error {
	m.items = append(m.items, *item)
	return nil
}

type memoryUsers struct {
	users []models.User
	// raceOnCreate simulates another request inserting the same profile first.
	raceOnCreate bool
}

func (m *memoryUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, notFound("user", id)
}

func (m *memoryUsers) Create(ctx context.Context, user *models.User) error {
	if m.raceOnCreate {
		return repository.ErrDuplicate
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *memoryUsers) List(ctx context.Context) ([]models.User, error) {
	return append([]models.User(nil), m.users...), nil
}
