package storage

import "time"

// DispatchModel is the GORM model for the dispatches table
type DispatchModel struct {
	CreatedAt   time.Time
	Failures    int                 `gorm:"not null;default:0"`
	FinishedAt  time.Time           `gorm:"not null"`
	ID          string              `gorm:"primaryKey"`
	Source      string              `gorm:"not null;check:source IN ('config','fallback')"`
	StartedAt   time.Time           `gorm:"not null;index:idx_started_at"`
	Steps       []DispatchStepModel `gorm:"foreignKey:DispatchID;constraint:OnDelete:CASCADE"`
	TriggerID   string              `gorm:"not null;index:idx_trigger_id"`
	TriggerKind string              `gorm:"not null"`
	WithUndo    bool                `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (DispatchModel) TableName() string { return "dispatches" }

// DispatchStepModel is the GORM model for one backend call of a dispatch
type DispatchStepModel struct {
	DispatchID string `gorm:"not null;index:idx_dispatch_id"`
	Error      string `gorm:"not null;default:''"`
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Kind       string `gorm:"not null;default:''"`
	Output     string `gorm:"not null;default:''"`
	Position   int    `gorm:"not null"`
	StepIndex  int    `gorm:"not null"`
	Undo       bool   `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (DispatchStepModel) TableName() string { return "dispatch_steps" }
