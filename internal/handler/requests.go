package handler

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/models"
)

type participantRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
	Unit  string `json:"unit"`
	// Active defaults to true when omitted.
	Active *bool `json:"active"`
}

func (r participantRequest) model() models.Participant {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return models.Participant{
		ID:     r.ID,
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Unit:   r.Unit,
		Active: active,
	}
}

type expenseRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"required"`
	Category    string          `json:"category"`
	Receipt     string          `json:"receipt"`
	PaidBy      string          `json:"paidBy" binding:"required"`
	SplitAmong  []string        `json:"splitAmong" binding:"required,min=1"`
	CreatedBy   string          `json:"createdBy"`
}

func (r expenseRequest) model() models.Expense {
	return models.Expense{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		Category:    r.Category,
		Receipt:     r.Receipt,
		PaidBy:      r.PaidBy,
		SplitAmong:  r.SplitAmong,
		CreatedBy:   r.CreatedBy,
	}
}

type paymentRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"required"`
	DebtorID    string          `json:"debtorId" binding:"required"`
	CreditorID  string          `json:"creditorId" binding:"required"`
	Receipt     string          `json:"receipt"`
	CreatedBy   string          `json:"createdBy"`
}

func (r paymentRequest) model() models.Payment {
	return models.Payment{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		DebtorID:    r.DebtorID,
		CreditorID:  r.CreditorID,
		Receipt:     r.Receipt,
		CreatedBy:   r.CreatedBy,
	}
}

type currentUserRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Unit  string `json:"unit"`
}

func (r currentUserRequest) model() models.CurrentUser {
	return models.CurrentUser{ID: r.ID, Name: r.Name, Email: r.Email, Unit: r.Unit}
}

type registerRequest struct {
	ParticipantID string `json:"participantId" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// messageResponse acknowledges operations that return no record.
type messageResponse struct {
	Message string `json:"message"`
}

type accountStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}
