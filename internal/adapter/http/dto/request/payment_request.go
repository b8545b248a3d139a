package request

// PaymentInitiateRequest is the payload for the "initiate payment" route.
type PaymentInitiateRequest struct {
	Provider    string  `json:"provider" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"required,len=3"`
	Description string  `json:"description"`
	PayerPhone  string  `json:"payer_phone"`
}
