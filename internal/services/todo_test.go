package services

import (
	"testing"
	"time"
)

func TestTodoListRequest_Defaults(t *testing.T) {
	req := &TodoListRequest{}

	if req.Page != 0 {
		t.Errorf("default Page should be 0, got %d", req.Page)
	}
	if req.PageSize != 0 {
		t.Errorf("default PageSize should be 0, got %d", req.PageSize)
	}
	if req.Completed != nil {
		t.Error("default Completed should be nil (no filter)")
	}
	if req.Priority != 0 {
		t.Errorf("default Priority should be 0 (no filter), got %d", req.Priority)
	}
}

func TestTodoListRequest_WithFilters(t *testing.T) {
	done := true
	req := &TodoListRequest{
		Page:      2,
		PageSize:  25,
		Completed: &done,
		Tag:       "work",
		Priority:  4,
	}

	if req.Page != 2 {
		t.Errorf("Page = %d, expected 2", req.Page)
	}
	if req.PageSize != 25 {
		t.Errorf("PageSize = %d, expected 25", req.PageSize)
	}
	if req.Completed == nil || !*req.Completed {
		t.Error("Completed filter should be set to true")
	}
	if req.Tag != "work" {
		t.Errorf("Tag = %q, expected %q", req.Tag, "work")
	}
	if req.Priority != 4 {
		t.Errorf("Priority = %d, expected 4", req.Priority)
	}
}

func TestCreateTodoRequest_AllFields(t *testing.T) {
	due := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	req := &CreateTodoRequest{
		Title:       "Ship the release",
		Description: "Tag, build, publish",
		DueDate:     &due,
		Priority:    1,
		ImageURLs:   []string{"https://cdn.example.com/a.png"},
		Tags:        []string{"work", "release"},
	}

	if req.Title == "" {
		t.Error("Title is required")
	}
	if req.DueDate == nil || !req.DueDate.Equal(due) {
		t.Error("DueDate should round-trip")
	}
	if len(req.ImageURLs) != 1 {
		t.Errorf("ImageURLs length = %d, expected 1", len(req.ImageURLs))
	}
	if len(req.Tags) != 2 {
		t.Errorf("Tags length = %d, expected 2", len(req.Tags))
	}
}

func TestUpdateTodoRequest_PartialUpdate(t *testing.T) {
	// Only the fields a client sends should be non-nil; nil means
	// "leave unchanged", which is why every scalar is a pointer.
	title := "New title"
	req := &UpdateTodoRequest{Title: &title}

	if req.Title == nil || *req.Title != "New title" {
		t.Error("Title should be set")
	}
	if req.Description != nil {
		t.Error("Description should stay nil when not sent")
	}
	if req.Completed != nil {
		t.Error("Completed should stay nil when not sent")
	}
	if req.Priority != nil {
		t.Error("Priority should stay nil when not sent")
	}
	if req.Tags != nil {
		t.Error("Tags should stay nil when not sent")
	}
}

func TestTodoListResponse_Structure(t *testing.T) {
	resp := &TodoListResponse{
		Total:    42,
		Page:     3,
		PageSize: 10,
		Items:    nil,
	}

	if resp.Total != 42 {
		t.Errorf("Total = %d, expected 42", resp.Total)
	}
	if resp.Page != 3 {
		t.Errorf("Page = %d, expected 3", resp.Page)
	}
	if resp.PageSize != 10 {
		t.Errorf("PageSize = %d, expected 10", resp.PageSize)
	}
}
