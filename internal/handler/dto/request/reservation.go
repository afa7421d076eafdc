package request

type CreateReservationRequest struct {
	PackageID int64 `json:"packageId" binding:"required"`
}
