// Package accountrepo provides data transfer objects and mapping functions
// for user and company persistence.
package accountrepo

import (
	"tracking/internal/core/domain/model/tenant"
)

// UserDTO represents the database structure for persisting users. Both the
// username and the opaque access token carry uniqueness constraints.
type UserDTO struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:150"`
	Name         string
	Email        string
	PasswordHash string
	Token        string  `gorm:"uniqueIndex;size:64"`
	CompanyID    *uint64 `gorm:"index"`
	Blocked      bool
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// CompanyDTO represents the database structure for persisting companies.
type CompanyDTO struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"size:255"`
	TransportCompany bool
}

// TableName specifies the database table name for company entities.
func (CompanyDTO) TableName() string {
	return "companies"
}

// userFromDomain converts a user aggregate to its database representation.
func userFromDomain(aggregate *tenant.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID(),
		Username:     aggregate.Username(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Token:        aggregate.Token(),
		CompanyID:    aggregate.CompanyID(),
		Blocked:      aggregate.IsBlocked(),
	}
}

// userToDomain converts a database row back to a user aggregate.
func userToDomain(dto UserDTO) (*tenant.User, error) {
	return tenant.RestoreUser(
		dto.ID,
		dto.Username,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		dto.Token,
		dto.CompanyID,
		dto.Blocked,
	)
}

// companyFromDomain converts a company aggregate to its database representation.
func companyFromDomain(aggregate *tenant.Company) CompanyDTO {
	return CompanyDTO{
		ID:               aggregate.ID(),
		Name:             aggregate.Name(),
		TransportCompany: aggregate.IsTransportCompany(),
	}
}

// companyToDomain converts a database row back to a company aggregate.
func companyToDomain(dto CompanyDTO) (*tenant.Company, error) {
	return tenant.RestoreCompany(dto.ID, dto.Name, dto.TransportCompany)
}
