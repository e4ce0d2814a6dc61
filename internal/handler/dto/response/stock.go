package response

import (
	"time"

	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type MovementResultResponse struct {
	MovementID uuid.UUID `json:"movementId"`
	NewStock   int       `json:"newStock"`
	Alert      string    `json:"alert"`
}

func FromMovementResult(r *commands.RecordMovementResult) *MovementResultResponse {
	return &MovementResultResponse{
		MovementID: r.MovementID,
		NewStock:   r.NewStock,
		Alert:      string(r.Alert),
	}
}

type ProductResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	CurrentStock int       `json:"currentStock"`
	MinStock     int       `json:"minStock"`
	MaxStock     int       `json:"maxStock"`
	UnitPrice    string    `json:"unitPrice"`
	AlertLevel   string    `json:"alertLevel"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromProductView(rm *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:           rm.ID,
		Code:         rm.Code,
		Name:         rm.Name,
		CategoryID:   rm.CategoryID,
		CategoryName: rm.CategoryName,
		CurrentStock: rm.CurrentStock,
		MinStock:     rm.MinStock,
		MaxStock:     rm.MaxStock,
		UnitPrice:    rm.UnitPrice,
		AlertLevel:   rm.AlertLevel,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromProductViews(rms []*queries.ProductView) []*ProductResponse {
	result := make([]*ProductResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromProductView(rm)
	}
	return result
}

type MovementResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   uuid.UUID  `json:"productId"`
	ProductCode string     `json:"productCode"`
	Type        string     `json:"type"`
	Quantity    int        `json:"quantity"`
	Reason      *string    `json:"reason,omitempty"`
	PerformedBy *uuid.UUID `json:"performedBy,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

func FromMovementViews(rms []*queries.MovementView) []*MovementResponse {
	result := make([]*MovementResponse, len(rms))
	for i, rm := range rms {
		result[i] = &MovementResponse{
			ID:          rm.ID,
			ProductID:   rm.ProductID,
			ProductCode: rm.ProductCode,
			Type:        rm.Type,
			Quantity:    rm.Quantity,
			Reason:      rm.Reason,
			PerformedBy: rm.PerformedBy,
			OccurredAt:  rm.OccurredAt,
		}
	}
	return result
}

type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID *uuid.UUID `json:"recipientId,omitempty"`
	Kind        string     `json:"kind"`
	Message     string     `json:"message"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromNotificationViews(rms []*queries.NotificationView) []*NotificationResponse {
	result := make([]*NotificationResponse, len(rms))
	for i, rm := range rms {
		result[i] = &NotificationResponse{
			ID:          rm.ID,
			RecipientID: rm.RecipientID,
			Kind:        rm.Kind,
			Message:     rm.Message,
			ReadAt:      rm.ReadAt,
			CreatedAt:   rm.CreatedAt,
		}
	}
	return result
}
