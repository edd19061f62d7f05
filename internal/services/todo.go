package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tasknest/tasknest/internal/errs"
	"github.com/tasknest/tasknest/internal/models"
)

type TodoService struct {
	db *gorm.DB
}

func NewTodoService(db *gorm.DB) *TodoService {
	return &TodoService{db: db}
}

type TodoListRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Completed *bool  `form:"completed"`
	Tag       string `form:"tag"`
	Priority  int    `form:"priority" binding:"omitempty,min=1,max=5"`
}

type TodoListResponse struct {
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Items    []models.Todo `json:"items"`
}

type CreateTodoRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	DueDate     *time.Time `json:"due_date"`
	Priority    int        `json:"priority" binding:"omitempty,min=1,max=5"`
	ImageURLs   []string   `json:"image_urls"`
	Tags        []string   `json:"tags"`
}

type UpdateTodoRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *int       `json:"priority" binding:"omitempty,min=1,max=5"`
	ImageURLs   []string   `json:"image_urls"`
	Tags        []string   `json:"tags"`
}

// List returns the user's todos, paginated and optionally filtered by
// completion state, tag name and priority.
func (s *TodoService) List(userID uint, req *TodoListRequest) (*TodoListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.Todo{}).Where("todos.user_id = ?", userID)

	if req.Completed != nil {
		query = query.Where("todos.completed = ?", *req.Completed)
	}
	if req.Priority != 0 {
		query = query.Where("todos.priority = ?", req.Priority)
	}
	if req.Tag != "" {
		query = query.
			Joins("JOIN todo_tags ON todo_tags.todo_id = todos.id").
			Joins("JOIN tags ON tags.id = todo_tags.tag_id").
			Where("tags.name = ? AND tags.user_id = ?", req.Tag, userID)
	}

	var total int64
	query.Count(&total)

	var todos []models.Todo
	offset := (req.Page - 1) * req.PageSize
	err := query.Preload("Tags").
		Offset(offset).Limit(req.PageSize).
		Order("todos.created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}

	return &TodoListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    todos,
	}, nil
}

// Get returns one todo. A todo owned by another user reports not-found.
func (s *TodoService) Get(userID, id uint) (*models.Todo, error) {
	var todo models.Todo
	err := s.db.Preload("Tags").
		Where("id = ? AND user_id = ?", id, userID).
		First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("todo", id)
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *TodoService) Create(userID uint, req *CreateTodoRequest) (*models.Todo, error) {
	priority := req.Priority
	if priority == 0 {
		priority = 3
	}

	todo := models.Todo{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    priority,
		ImageURLs:   req.ImageURLs,
	}
	if todo.ImageURLs == nil {
		todo.ImageURLs = []string{}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		tags, err := findOrCreateTags(tx, userID, req.Tags)
		if err != nil {
			return err
		}
		todo.Tags = tags
		return tx.Create(&todo).Error
	})
	if err != nil {
		return nil, err
	}

	return &todo, nil
}

// Update applies a partial update; absent fields are left unchanged. A
// non-nil Tags slice replaces the todo's tag set entirely.
func (s *TodoService) Update(userID, id uint, req *UpdateTodoRequest) (*models.Todo, error) {
	todo, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Completed != nil {
		updates["completed"] = *req.Completed
		if *req.Completed {
			updates["completed_at"] = time.Now()
		} else {
			updates["completed_at"] = nil
		}
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.ImageURLs != nil {
			todo.ImageURLs = req.ImageURLs
			if err := tx.Model(todo).Update("image_urls", todo.ImageURLs).Error; err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(todo).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Tags != nil {
			tags, err := findOrCreateTags(tx, userID, req.Tags)
			if err != nil {
				return err
			}
			if err := tx.Model(todo).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(userID, id)
}

func (s *TodoService) Delete(userID, id uint) error {
	todo, err := s.Get(userID, id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(todo).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(todo).Error
	})
}

func (s *TodoService) Complete(userID, id uint) (*models.Todo, error) {
	todo, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.db.Model(todo).Updates(map[string]interface{}{
		"completed":    true,
		"completed_at": now,
	}).Error
	if err != nil {
		return nil, err
	}

	todo.Completed = true
	todo.CompletedAt = &now
	return todo, nil
}

func findOrCreateTags(tx *gorm.DB, userID uint, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		var tag models.Tag
		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{UserID: userID, Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
