package rooms

type CreateRoomRequest struct {
	Number     string   `json:"number" binding:"required"`
	Type       string   `json:"type" binding:"required"`
	Price      int64    `json:"price" binding:"required,gt=0"`
	Status     string   `json:"status" binding:"omitempty,oneof=AVAILABLE OCCUPIED CLEANING MAINTENANCE"`
	Equipments []string `json:"equipments"`
}

type UpdateRoomRequest struct {
	Number     *string   `json:"number"`
	Type       *string   `json:"type"`
	Price      *int64    `json:"price" binding:"omitempty,gt=0"`
	Status     *string   `json:"status" binding:"omitempty,oneof=AVAILABLE OCCUPIED CLEANING MAINTENANCE"`
	Equipments *[]string `json:"equipments"`
}
