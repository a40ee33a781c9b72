package dto

type CreateItemInput struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}
