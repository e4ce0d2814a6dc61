package request

type SetHousekeepingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
