package dto

type CreateSubmissionInput struct {
	ItemID  string `json:"item_id" binding:"required"`
	Comment string `json:"comment" binding:"required"`
	City    string `json:"city" binding:"required"`
	Country string `json:"country" binding:"required"`
	// Rating is nominally 0-100 but not validated.
	Rating int `json:"rating"`
}
