package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/admissions-crm-api/internal/models"
)

var (
	firstNames = []string{"Alice", "Alan", "Bob", "Carla", "Dmitri", "Esther", "Farah", "Gabriel", "Hana", "Ibrahim", "Jae", "Kofi", "Lucia", "Mateo", "Nia", "Omar", "Priya", "Quinn", "Rosa", "Sami"}
	lastNames  = []string{"Johnson", "Smith", "Okafor", "Tanaka", "Garcia", "Nguyen", "Müller", "Haddad", "Kowalski", "Mensah", "Rossi", "Silva"}
	countries  = []string{"USA", "Canada", "Kenya", "India", "Brazil", "Germany", "Japan", "Nigeria"}
	seedTags   = []string{"Interested", "Athlete", "Scholarship", "International"}
	colleges   = []string{"Harvard", "Stanford", "MIT", "Yale", "Princeton"}
	devices    = []string{"mobile", "desktop", "tablet"}
	pages      = []string{"home", "profile", "applications"}
	summaries  = []string{"Discussed essay topics", "Shared scholarship deadlines", "Followed up on transcripts", "Answered visa questions", "Reviewed college list"}
	taskTexts  = []string{"Request recommendation letter", "Review personal statement", "Confirm test scores sent", "Schedule campus visit call", "Check financial aid form"}
	noteTexts  = []string{"<p>Strong interest in engineering programs.</p>", "<p>Parents want a call before <strong>Friday</strong>.</p>", "<p>Needs help choosing safety schools.</p>"}
)

var interactionTypes = []models.InteractionType{
	models.InteractionLogin,
	models.InteractionAIQuestion,
	models.InteractionDocumentUpload,
	models.InteractionDocumentDownload,
}

var channels = []models.CommunicationChannel{models.ChannelEmail, models.ChannelCall, models.ChannelSMS}

var seedTaskStatuses = []models.TaskStatus{models.TaskPending, models.TaskInProgress, models.TaskCompleted}

// dataset is everything written for one seeding run.
type dataset struct {
	Students       []models.Student
	Tasks          []models.Task
	Notes          []models.Note
	Communications []models.Communication
	Interactions   []models.Interaction
}

type generator struct {
	rng   *rand.Rand
	now   time.Time
	staff []string
}

func newGenerator(seed uint64, now time.Time, staff []string) *generator {
	if len(staff) == 0 {
		staff = []string{"admin"}
	}
	return &generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), now: now.UTC(), staff: staff}
}

func (g *generator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}

// subset returns between lo and hi distinct values in their original order.
func (g *generator) subset(values []string, lo, hi int) []string {
	n := lo
	if hi > lo {
		n += g.rng.IntN(hi - lo + 1)
	}
	idx := g.rng.Perm(len(values))[:min(n, len(values))]
	chosen := make(map[int]bool, len(idx))
	for _, i := range idx {
		chosen[i] = true
	}
	out := make([]string, 0, len(idx))
	for i, v := range values {
		if chosen[i] {
			out = append(out, v)
		}
	}
	return out
}

func (g *generator) recent() time.Time {
	return g.now.Add(-time.Duration(g.rng.Int64N(int64(14 * 24 * time.Hour)))).Truncate(time.Millisecond)
}

func (g *generator) soon() time.Time {
	return g.now.Add(time.Duration(1+g.rng.Int64N(int64(30*24*time.Hour)))).Truncate(time.Millisecond)
}

// generate builds count students with satellites. Student counters agree with the generated
// communications and open tasks.
func (g *generator) generate(count int) dataset {
	var ds dataset
	for i := 0; i < count; i++ {
		first, last := g.pick(firstNames), g.pick(lastNames)
		applying := g.subset(colleges, 0, 3)
		student := models.Student{
			ID:                uuid.NewString(),
			StudentCode:       fmt.Sprintf("S-%06d", 100000+g.rng.IntN(900000)),
			Name:              first + " " + last,
			Email:             fmt.Sprintf("%s.%s%d@example.com", first, last, i),
			Phone:             fmt.Sprintf("+1%010d", g.rng.Int64N(10_000_000_000)),
			Grade:             g.pick([]string{"9", "10", "11", "12"}),
			Country:           g.pick(countries),
			ApplicationStatus: models.ApplicationStatuses[g.rng.IntN(len(models.ApplicationStatuses))],
			Tags:              g.subset(seedTags, 0, 3),
			ApplyingColleges:  applying,
			SubmittedColleges: g.subset(applying, 0, len(applying)),
			LastActive:        g.recent(),
			CreatedAt:         g.now.AddDate(0, -g.rng.IntN(12), -g.rng.IntN(28)).Truncate(time.Millisecond),
		}

		for n := 1 + g.rng.IntN(4); n > 0; n-- {
			ds.Interactions = append(ds.Interactions, models.Interaction{
				ID:          uuid.NewString(),
				StudentID:   student.ID,
				Type:        interactionTypes[g.rng.IntN(len(interactionTypes))],
				Description: fmt.Sprintf("file_%d.pdf", g.rng.IntN(1000)),
				Timestamp:   g.recent(),
				Metadata:    map[string]interface{}{"device": g.pick(devices), "page": g.pick(pages)},
			})
		}

		comms := g.rng.IntN(3)
		for n := comms; n > 0; n-- {
			ds.Communications = append(ds.Communications, models.Communication{
				ID:        uuid.NewString(),
				StudentID: student.ID,
				Channel:   channels[g.rng.IntN(len(channels))],
				Summary:   g.pick(summaries),
				Timestamp: g.recent(),
				LoggedBy:  g.pick(g.staff),
			})
		}
		student.CountCommunications = comms

		for n := g.rng.IntN(3); n > 0; n-- {
			created := g.recent()
			ds.Notes = append(ds.Notes, models.Note{
				ID:         uuid.NewString(),
				StudentID:  student.ID,
				Content:    g.pick(noteTexts),
				Visibility: []models.NoteVisibility{models.NotePublic, models.NotePrivate}[g.rng.IntN(2)],
				CreatedBy:  g.pick(g.staff),
				CreatedAt:  created,
				UpdatedAt:  created,
			})
		}

		assignee := g.pick(g.staff)
		for n := 1 + g.rng.IntN(2); n > 0; n-- {
			created := g.recent()
			task := models.Task{
				ID:          uuid.NewString(),
				StudentID:   student.ID,
				Description: g.pick(taskTexts),
				DueDate:     g.soon(),
				AssignedTo:  assignee,
				Status:      seedTaskStatuses[g.rng.IntN(len(seedTaskStatuses))],
				CreatedBy:   g.pick(g.staff),
				CreatedAt:   created,
				UpdatedAt:   created,
			}
			if task.Status != models.TaskCompleted {
				student.CountPendingTasks++
			}
			ds.Tasks = append(ds.Tasks, task)
		}

		ds.Students = append(ds.Students, student)
	}
	return ds
}

func defaultGlobalConfig(now time.Time) *models.GlobalConfig {
	order := make([]string, 0, len(models.ApplicationStatuses))
	for _, s := range models.ApplicationStatuses {
		order = append(order, string(s))
	}
	return &models.GlobalConfig{
		ID:                     models.GlobalConfigID,
		Tags:                   append([]string{"Needs Follow-up", "Cold"}, seedTags...),
		CommunicationTypes:     []string{"email", "call", "sms"},
		TaskStatuses:           []string{"pending", "in_progress", "completed", "overdue"},
		DefaultReminderDays:    3,
		StudentStatusSortOrder: order,
		UpdatedAt:              now.UTC(),
	}
}

func defaultUsers(now time.Time) []models.User {
	return []models.User{
		{ID: "admin-user-id", Email: "admin@example.com", Name: "Admin User", Role: models.RoleAdmin, CreatedAt: now.UTC()},
		{ID: "counselor-user-id", Email: "counselor@example.com", Name: "Counselor User", Role: models.RoleUser, CreatedAt: now.UTC()},
	}
}
