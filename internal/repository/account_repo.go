package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tpfx-journal/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountSettingsRowID is the single settings row. The journal tracks one
// account; edits replace the stored document wholesale.
const accountSettingsRowID = 1

// AccountRepository persists the account record as a verbatim JSON document
// and restores it as-is on startup.
type AccountRepository interface {
	Load(ctx context.Context) (model.Account, error)
	Save(ctx context.Context, account model.Account) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Load returns the stored account, creating the default one on first run.
func (r *accountRepository) Load(ctx context.Context) (model.Account, error) {
	var settings model.AccountSettings
	err := r.db.WithContext(ctx).First(&settings, accountSettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account := model.DefaultAccount()
		if err := r.Save(ctx, account); err != nil {
			return model.Account{}, fmt.Errorf("failed to create default account: %w", err)
		}
		return account, nil
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to load account settings: %w", err)
	}

	var account model.Account
	if err := json.Unmarshal(settings.Document, &account); err != nil {
		return model.Account{}, fmt.Errorf("failed to decode account settings document: %w", err)
	}
	return account, nil
}

// Save replaces the stored account document wholesale.
func (r *accountRepository) Save(ctx context.Context, account model.Account) error {
	document, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode account settings document: %w", err)
	}

	settings := model.AccountSettings{
		ID:       accountSettingsRowID,
		Document: datatypes.JSON(document),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&settings).Error
}
