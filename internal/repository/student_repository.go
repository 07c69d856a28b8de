package repository

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/admissions-crm-api/internal/models"
)

// prefixUpperBound is appended to a prefix to form an inclusive upper bound that sorts after
// every string starting with the prefix.
const prefixUpperBound = "\uf8ff"

// StudentRepository reads the student directory.
type StudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(CollectionStudents)}
}

// FindByID returns mongo.ErrNoDocuments (wrapped) when the id does not exist.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := findByID[models.Student](ctx, r.coll, id)
	if err != nil {
		return nil, fmt.Errorf("find student %s: %w", id, err)
	}
	return student, nil
}

// FindByCode looks a student up by the human-facing studentId code.
func (r *StudentRepository) FindByCode(ctx context.Context, code string) (*models.Student, error) {
	var student models.Student
	if err := r.coll.FindOne(ctx, bson.D{{Key: "studentId", Value: code}}).Decode(&student); err != nil {
		return nil, fmt.Errorf("find student by code %s: %w", code, err)
	}
	return &student, nil
}

// Search returns up to q.Limit students ordered by (q.Sort, _id) ascending.
func (r *StudentRepository) Search(ctx context.Context, q models.StudentQuery) ([]models.Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: string(q.Sort), Value: 1}, {Key: "_id", Value: 1}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := r.coll.Find(ctx, BuildSearchFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("search students: %w", err)
	}
	students := make([]models.Student, 0, q.Limit)
	if err := cur.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	return students, nil
}

// Facets returns the distinct countries and statuses among students matching the country and
// tag filters. The status filter is ignored so every status stays selectable. Countries come
// back sorted; statuses are left for the caller to rank.
func (r *StudentRepository) Facets(ctx context.Context, filter models.StudentFilter) (models.StudentFacets, error) {
	facetFilter := BuildFilter(models.StudentFilter{Country: filter.Country, Tags: filter.Tags})

	countries, err := r.distinctStrings(ctx, "country", facetFilter)
	if err != nil {
		return models.StudentFacets{}, err
	}
	statuses, err := r.distinctStrings(ctx, "applicationStatus", facetFilter)
	if err != nil {
		return models.StudentFacets{}, err
	}
	sort.Strings(countries)

	return models.StudentFacets{Countries: countries, Statuses: statuses}, nil
}

// CountByStatus groups every student by applicationStatus.
func (r *StudentRepository) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$applicationStatus"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate student statuses: %w", err)
	}
	var counts []models.StatusCount
	if err := cur.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode status counts: %w", err)
	}
	return counts, nil
}

// InsertMany stores students as given. Used by the seeder.
func (r *StudentRepository) InsertMany(ctx context.Context, students []models.Student) error {
	if len(students) == 0 {
		return nil
	}
	docs := make([]interface{}, len(students))
	for i := range students {
		docs[i] = students[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert students: %w", err)
	}
	return nil
}

func (r *StudentRepository) distinctStrings(ctx context.Context, field string, filter bson.D) ([]string, error) {
	raw, err := r.coll.Distinct(ctx, field, filter)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	return values, nil
}

// BuildFilter translates directory filters into a query document. A student matches the
// tag filter when any of its tags is in the set.
func BuildFilter(f models.StudentFilter) bson.D {
	filter := bson.D{}
	if f.Country != "" {
		filter = append(filter, bson.E{Key: "country", Value: f.Country})
	}
	if f.Status != "" {
		filter = append(filter, bson.E{Key: "applicationStatus", Value: f.Status})
	}
	if len(f.Tags) > 0 {
		filter = append(filter, bson.E{Key: "tags", Value: bson.D{{Key: "$in", Value: f.Tags}}})
	}
	return filter
}

// BuildSearchFilter adds the name prefix range and the keyset continuation to BuildFilter.
// Continuation resumes strictly after the (sort value, _id) pair of q.After.
func BuildSearchFilter(q models.StudentQuery) bson.D {
	filter := BuildFilter(q.Filter)

	if q.Sort == models.SortByName && q.Prefix != "" {
		filter = append(filter, bson.E{Key: "name", Value: bson.D{
			{Key: "$gte", Value: q.Prefix},
			{Key: "$lte", Value: q.Prefix + prefixUpperBound},
		}})
	}

	if q.After != nil {
		field := string(q.Sort)
		value := q.After.SortValue(q.Sort)
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: field, Value: bson.D{{Key: "$gt", Value: value}}}},
			bson.D{{Key: field, Value: value}, {Key: "_id", Value: bson.D{{Key: "$gt", Value: q.After.ID}}}},
		}})
	}

	return filter
}
