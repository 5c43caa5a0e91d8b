package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	// StatusPending is the initial state of every task.
	StatusPending TaskStatus = "pending"
	// StatusCompleted marks a finished task. Moving back to pending is allowed.
	StatusCompleted TaskStatus = "completed"
)

// Valid reports whether s is one of the two known statuses.
func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task is a shared to-do item. There is no owner column: any authenticated
// user may read or modify any task.
type Task struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	Status      TaskStatus `json:"status" gorm:"size:20;not null;default:'pending';index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID and default status before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	return nil
}
