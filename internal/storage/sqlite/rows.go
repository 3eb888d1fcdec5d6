package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/models"
)

func loadParticipants(ctx context.Context, tx *sql.Tx) ([]models.Participant, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, name, email, phone, unit, active FROM participants ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Unit, &p.Active); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}

func loadExpenses(ctx context.Context, tx *sql.Tx) ([]models.Expense, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, description, amount, date, category, receipt, paid_by, created_by
		 FROM expenses ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		var amount string
		var receipt sql.NullString
		if err := rows.Scan(&e.ID, &e.Description, &amount, &e.Date, &e.Category, &receipt, &e.PaidBy, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse amount of expense %s: %w", e.ID, err)
		}
		if receipt.Valid {
			e.Receipt = receipt.String
		}
		e.SplitAmong = []string{}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	// Get split members for all expenses in one pass
	splitRows, err := tx.QueryContext(ctx,
		"SELECT expense_id, participant_id FROM expense_splits ORDER BY expense_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer splitRows.Close()

	byID := make(map[string]*models.Expense, len(expenses))
	for i := range expenses {
		byID[expenses[i].ID] = &expenses[i]
	}
	for splitRows.Next() {
		var expenseID, participantID string
		if err := splitRows.Scan(&expenseID, &participantID); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		if e, ok := byID[expenseID]; ok {
			e.SplitAmong = append(e.SplitAmong, participantID)
		}
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}
	return expenses, nil
}

func loadPayments(ctx context.Context, tx *sql.Tx) ([]models.Payment, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, description, amount, date, debtor_id, creditor_id, receipt, created_by
		 FROM payments ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		var amount string
		if err := rows.Scan(&p.ID, &p.Description, &amount, &p.Date, &p.DebtorID, &p.CreditorID, &p.Receipt, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse amount of payment %s: %w", p.ID, err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}

func loadAccounts(ctx context.Context, tx *sql.Tx) ([]models.Account, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, participant_id, email, password_hash, active, created_at
		 FROM accounts ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.ParticipantID, &a.Email, &a.PasswordHash, &a.Active, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

func loadCurrentUser(ctx context.Context, tx *sql.Tx) (*models.CurrentUser, error) {
	cu := &models.CurrentUser{}
	err := tx.QueryRowContext(ctx,
		"SELECT id, name, email, unit FROM acting_user WHERE singleton = 1",
	).Scan(&cu.ID, &cu.Name, &cu.Email, &cu.Unit)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return cu, nil
}

func saveParticipants(ctx context.Context, tx *sql.Tx, participants []models.Participant) error {
	for i, p := range participants {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO participants (id, position, name, email, phone, unit, active) VALUES (?, ?, ?, ?, ?, ?, ?)",
			p.ID, i, p.Name, p.Email, p.Phone, p.Unit, p.Active,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant %s: %w", p.ID, err)
		}
	}
	return nil
}

func saveExpenses(ctx context.Context, tx *sql.Tx, expenses []models.Expense) error {
	for i, e := range expenses {
		var receipt interface{} = nil
		if e.Receipt != "" {
			receipt = e.Receipt
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (id, position, description, amount, date, category, receipt, paid_by, created_by)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, i, e.Description, e.Amount.String(), e.Date, e.Category, receipt, e.PaidBy, e.CreatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense %s: %w", e.ID, err)
		}

		for j, participantID := range e.SplitAmong {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO expense_splits (expense_id, position, participant_id) VALUES (?, ?, ?)",
				e.ID, j, participantID,
			)
			if err != nil {
				return fmt.Errorf("failed to insert expense split: %w", err)
			}
		}
	}
	return nil
}

func savePayments(ctx context.Context, tx *sql.Tx, payments []models.Payment) error {
	for i, p := range payments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO payments (id, position, description, amount, date, debtor_id, creditor_id, receipt, created_by)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Description, p.Amount.String(), p.Date, p.DebtorID, p.CreditorID, p.Receipt, p.CreatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment %s: %w", p.ID, err)
		}
	}
	return nil
}

func saveAccounts(ctx context.Context, tx *sql.Tx, accounts []models.Account) error {
	for i, a := range accounts {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (id, position, participant_id, email, password_hash, active, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, i, a.ParticipantID, a.Email, a.PasswordHash, a.Active, a.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert account %s: %w", a.ID, err)
		}
	}
	return nil
}

func saveCurrentUser(ctx context.Context, tx *sql.Tx, cu *models.CurrentUser) error {
	if cu == nil {
		return nil
	}
	_, err := tx.ExecContext(ctx,
		"INSERT INTO acting_user (singleton, id, name, email, unit) VALUES (1, ?, ?, ?, ?)",
		cu.ID, cu.Name, cu.Email, cu.Unit,
	)
	if err != nil {
		return fmt.Errorf("failed to insert current user: %w", err)
	}
	return nil
}
