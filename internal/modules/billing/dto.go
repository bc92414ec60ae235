package billing

type RecordPaymentRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Type      string `json:"type" binding:"required,oneof=CASH CARD TRANSFER OTHER"`
}
