package models

import (
	"time"

	"github.com/devisio-app/devisio-backend/pkg/enums"
)

// User represents the canonical artisan identity entity.
type User struct {
	ID             int64               `gorm:"column:id;primaryKey;autoIncrement"`
	Email          string              `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash   string              `gorm:"column:password_hash;not null"`
	FirstName      *string             `gorm:"column:first_name"`
	LastName       *string             `gorm:"column:last_name"`
	CompanyName    *string             `gorm:"column:company_name"`
	CompanyAddress *string             `gorm:"column:company_address"`
	Siret          *string             `gorm:"column:siret"`
	APECode        *string             `gorm:"column:ape_code"`
	RCSCode        *string             `gorm:"column:rcs_code"`
	TVANumber      *string             `gorm:"column:tva_number"`
	CompanyType    enums.CompanyType   `gorm:"column:company_type;not null"`
	AccountStatus  enums.AccountStatus `gorm:"column:account_status;not null;default:'valid'"`
	QuoteInfos     *string             `gorm:"column:quote_infos"`
	ExpiresAt      *time.Time          `gorm:"column:expires_at"`
	CreatedAt      time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
