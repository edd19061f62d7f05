package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tasknest/tasknest/internal/errs"
	"github.com/tasknest/tasknest/internal/models"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// TagWithCount is a tag together with the number of todos using it.
type TagWithCount struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// List returns the user's tags with usage counts. filter is one of
// "", "used", "unused".
func (s *TagService) List(userID uint, filter string) ([]TagWithCount, error) {
	var tags []models.Tag
	if err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}

	result := make([]TagWithCount, 0, len(tags))
	for _, tag := range tags {
		var count int64
		err := s.db.Table("todo_tags").Where("tag_id = ?", tag.ID).Count(&count).Error
		if err != nil {
			return nil, err
		}

		switch filter {
		case "used":
			if count == 0 {
				continue
			}
		case "unused":
			if count > 0 {
				continue
			}
		}

		result = append(result, TagWithCount{ID: tag.ID, Name: tag.Name, Count: count})
	}

	return result, nil
}

func (s *TagService) Create(userID uint, name string) (*TagWithCount, error) {
	var existing models.Tag
	err := s.db.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error
	if err == nil {
		return nil, errs.Validation(fmt.Sprintf("tag %q already exists", name))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := models.Tag{UserID: userID, Name: name}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, err
	}

	return &TagWithCount{ID: tag.ID, Name: tag.Name, Count: 0}, nil
}

// Delete removes a tag. Tags still attached to todos cannot be deleted.
func (s *TagService) Delete(userID, id uint) error {
	var tag models.Tag
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound("tag", id)
	}
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Table("todo_tags").Where("tag_id = ?", tag.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.Validation(fmt.Sprintf("tag %q is used by %d todos", tag.Name, count))
	}

	return s.db.Delete(&tag).Error
}

func (s *TagService) DeleteByName(userID uint, name string) error {
	var tag models.Tag
	err := s.db.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound("tag", name)
	}
	if err != nil {
		return err
	}

	return s.Delete(userID, tag.ID)
}
