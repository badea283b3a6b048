package catalog

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicRepository interface {
	List(kind TopicKind) ([]*Topic, error)
	GetBySlug(slug string) (*Topic, error)
	Create(t *Topic) error
}

type topicRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) List(kind TopicKind) ([]*Topic, error) {
	var topics []*Topic
	query := r.db.Order("slug")
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if err := query.Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepository) GetBySlug(slug string) (*Topic, error) {
	var topic Topic
	if err := r.db.First(&topic, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) Create(t *Topic) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return r.db.Create(t).Error
}
