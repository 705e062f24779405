package users

import (
	"time"

	"github.com/devisio-app/devisio-backend/pkg/db/models"
	"github.com/devisio-app/devisio-backend/pkg/enums"
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=30"`
	Password    string `json:"password" validate:"required"`
	CompanyType string `json:"company_type" validate:"required"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the minted token together with the profile.
type AuthResponse struct {
	Token string           `json:"token"`
	User  *ProfileResponse `json:"user"`
}

// ProfileResponse is the user profile as returned to clients. The password
// hash never leaves the service layer.
type ProfileResponse struct {
	ID             int64               `json:"id"`
	Email          string              `json:"email"`
	FirstName      *string             `json:"first_name"`
	LastName       *string             `json:"last_name"`
	CompanyName    *string             `json:"company_name"`
	CompanyAddress *string             `json:"company_address"`
	Siret          *string             `json:"siret"`
	APECode        *string             `json:"ape_code"`
	RCSCode        *string             `json:"rcs_code"`
	TVANumber      *string             `json:"tva_number"`
	CompanyType    enums.CompanyType   `json:"company_type"`
	AccountStatus  enums.AccountStatus `json:"account_status"`
	QuoteInfos     *string             `json:"quote_infos"`
	ExpiresAt      *time.Time          `json:"expires_at"`
	CreatedAt      time.Time           `json:"created_at"`
}

func toProfile(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		CompanyName:    user.CompanyName,
		CompanyAddress: user.CompanyAddress,
		Siret:          user.Siret,
		APECode:        user.APECode,
		RCSCode:        user.RCSCode,
		TVANumber:      user.TVANumber,
		CompanyType:    user.CompanyType,
		AccountStatus:  user.AccountStatus,
		QuoteInfos:     user.QuoteInfos,
		ExpiresAt:      user.ExpiresAt,
		CreatedAt:      user.CreatedAt,
	}
}
