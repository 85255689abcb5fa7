package models

import "time"

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "inProgress"
	TaskStatusCompleted  = "completed"
)

const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

type Task struct {
	Base
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Priority    string     `gorm:"default:'medium'" json:"priority"`
	Status      string     `gorm:"default:'todo'" json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  string     `gorm:"default:''" json:"assignedTo"`
}
