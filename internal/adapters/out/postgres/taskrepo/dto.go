// Package taskrepo provides data transfer objects and mapping functions for delivery task persistence.
// Food item lines are stored as a JSON text column so the read side can scan
// them without joins.
package taskrepo

import (
	"encoding/json"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting delivery task aggregates.
// Indexed by status and driver so the shared pool and per-driver views stay cheap.
type TaskDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	MerchantName     string     `gorm:"type:varchar(255);not null"`
	MerchantAddress  string     `gorm:"type:varchar(512);not null"`
	MerchantPhone    string     `gorm:"type:varchar(64)"`
	RecipientName    string     `gorm:"type:varchar(255);not null"`
	RecipientAddress string     `gorm:"type:varchar(512);not null"`
	RecipientPhone   string     `gorm:"type:varchar(64)"`
	RecipientKind    int        `gorm:"type:int;not null"`
	FoodItems        string     `gorm:"type:text"`
	Priority         int        `gorm:"type:int;not null"`
	PickupTime       string     `gorm:"type:varchar(64)"`
	ExpiryTime       string     `gorm:"type:varchar(64)"`
	Status           int        `gorm:"type:int;not null;index"`
	DriverID         *uuid.UUID `gorm:"type:uuid;index"`
	PickupProof      string     `gorm:"type:text"`
}

// TableName specifies the database table name for delivery task entities.
func (TaskDTO) TableName() string {
	return "tasks"
}

// fromDomain converts a task domain aggregate to its database representation.
func fromDomain(task *task.Task) (TaskDTO, error) {
	foodItems, err := json.Marshal(task.FoodItems())
	if err != nil {
		return TaskDTO{}, err
	}

	var driverID *uuid.UUID
	if id := task.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return TaskDTO{
		ID:               task.ID().Bytes(),
		OrderID:          task.OrderID().Bytes(),
		MerchantName:     task.MerchantName(),
		MerchantAddress:  task.MerchantAddress(),
		MerchantPhone:    task.MerchantPhone(),
		RecipientName:    task.Recipient().Name(),
		RecipientAddress: task.Recipient().Address(),
		RecipientPhone:   task.Recipient().Phone(),
		RecipientKind:    int(task.Recipient().Kind()),
		FoodItems:        string(foodItems),
		Priority:         int(task.Priority()),
		PickupTime:       task.PickupTime(),
		ExpiryTime:       task.ExpiryTime(),
		Status:           int(task.Status()),
		DriverID:         driverID,
		PickupProof:      task.PickupProof(),
	}, nil
}

// toDomain converts a database DTO to a task domain aggregate.
// Reconstructs the aggregate including driver ownership and pickup proof using RestoreTask.
func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	recipient, err := task.NewRecipient(
		dto.RecipientName,
		dto.RecipientAddress,
		dto.RecipientPhone,
		task.RecipientKind(dto.RecipientKind),
	)
	if err != nil {
		return nil, err
	}

	var foodItems []string
	if dto.FoodItems != "" {
		if err = json.Unmarshal([]byte(dto.FoodItems), &foodItems); err != nil {
			return nil, err
		}
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	return task.RestoreTask(
		id,
		orderID,
		dto.MerchantName,
		dto.MerchantAddress,
		dto.MerchantPhone,
		recipient,
		foodItems,
		task.Priority(dto.Priority),
		dto.PickupTime,
		dto.ExpiryTime,
		task.Status(dto.Status),
		driverID,
		dto.PickupProof,
	)
}
