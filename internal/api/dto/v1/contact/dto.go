package contact

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100"`
	Email       string `json:"email" binding:"required,strict_email,max=255"`
	Company     string `json:"company" binding:"omitempty,max=100"`
	ProjectType string `json:"projectType" binding:"omitempty,max=100"`
	Budget      string `json:"budget" binding:"omitempty,max=50"`
	Message     string `json:"message" binding:"required,min=10,max=2000"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// CSRFResponse carries a freshly issued CSRF token for the client to echo back
type CSRFResponse struct {
	Token string `json:"token"`
}
