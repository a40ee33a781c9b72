package repositories

import (
	"encoding/json"
	"errors"
	"gin-wardrobe/models"
	"reflect"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

// IDocumentRepository is the minimal document database surface the services
// rely on: id-addressed documents grouped into collections, with
// equality-filter queries. Each call is a single store operation; nothing
// wraps a read-then-write sequence in a transaction.
type IDocumentRepository interface {
	Set(collection string, id string, doc models.Document) error
	Get(collection string, id string) (models.Document, error)
	Query(collection string) *DocumentQuery
	Update(collection string, id string, fields models.Document) error
	Delete(collection string, id string) error
}

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) IDocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Set(collection string, id string, doc models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	stored := models.StoredDocument{
		Collection: collection,
		DocID:      id,
		Data:       data,
	}
	return r.db.Create(&stored).Error
}

func (r *DocumentRepository) Get(collection string, id string) (models.Document, error) {
	var stored models.StoredDocument
	result := r.db.First(&stored, "collection = ? AND doc_id = ?", collection, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, result.Error
	}
	return decodeDocument(stored.Data)
}

// Update merges the given fields into the stored document. Fields absent from
// the update keep their stored values.
func (r *DocumentRepository) Update(collection string, id string, fields models.Document) error {
	var stored models.StoredDocument
	result := r.db.First(&stored, "collection = ? AND doc_id = ?", collection, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return result.Error
	}

	doc, err := decodeDocument(stored.Data)
	if err != nil {
		return err
	}
	for field, value := range fields {
		doc[field] = value
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return r.db.Model(&stored).Update("data", data).Error
}

func (r *DocumentRepository) Delete(collection string, id string) error {
	result := r.db.Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&models.StoredDocument{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *DocumentRepository) Query(collection string) *DocumentQuery {
	return &DocumentQuery{db: r.db, collection: collection}
}

type filter struct {
	field string
	value any
}

// DocumentQuery selects all documents of a collection whose fields equal the
// given values. Nothing is read until First or All runs, and each run takes a
// fresh snapshot, so a query value can be executed more than once.
type DocumentQuery struct {
	db         *gorm.DB
	collection string
	filters    []filter
}

func (q *DocumentQuery) Where(field string, value any) *DocumentQuery {
	q.filters = append(q.filters, filter{field: field, value: value})
	return q
}

func (q *DocumentQuery) All() ([]models.Document, error) {
	var rows []models.StoredDocument
	if err := q.db.Where("collection = ?", q.collection).Find(&rows).Error; err != nil {
		return nil, err
	}

	docs := make([]models.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeDocument(row.Data)
		if err != nil {
			return nil, err
		}
		if q.matches(doc) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// First returns the first matching document, or ErrDocumentNotFound.
func (q *DocumentQuery) First() (models.Document, error) {
	docs, err := q.All()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrDocumentNotFound
	}
	return docs[0], nil
}

func (q *DocumentQuery) matches(doc models.Document) bool {
	for _, f := range q.filters {
		value, ok := doc[f.field]
		if !ok || !equalValues(value, f.value) {
			return false
		}
	}
	return true
}

// equalValues compares a stored field against a filter value. Stored numbers
// come back from JSON as float64, so numeric comparisons normalize first.
func equalValues(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func decodeDocument(data []byte) (models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
