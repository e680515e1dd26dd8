package dto

// TopUpRequest: payload for a balance top-up. Bounds are re-checked by the
// wallet itself; the binding tags catch the obvious cases before that.
type TopUpRequest struct {
	Amount *int64 `json:"amount" binding:"required"`
}

// WalletResponse: the current balance.
type WalletResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

// EmailRequest: payload for the staff broadcast email form.
type EmailRequest struct {
	Recipients []string `json:"recipients" binding:"required,min=1"`
	Subject    string   `json:"subject" binding:"omitempty,max=50"`
	Message    string   `json:"message" binding:"omitempty,max=1000"`
}
