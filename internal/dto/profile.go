package dto

// Profile Request DTOs

// UpdateSpendingGoalRequest sets the user's monthly spending goal
type UpdateSpendingGoalRequest struct {
	SpendingGoal string `json:"spendingGoal" validate:"required"`
}

// Profile Response DTOs

// SpendingGoalResponse represents the user's monthly spending goal
type SpendingGoalResponse struct {
	SpendingGoal string `json:"spendingGoal"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
