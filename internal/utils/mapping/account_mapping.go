package mapping

import (
	"github.com/example/corebank/internal/core/domain"
	"github.com/example/corebank/internal/models"
)

// ToModelAccount converts a domain.Account to its database representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountNumber: d.AccountNumber,
		HolderName:    d.HolderName,
		Phone:         d.Phone,
		Email:         d.Email,
		Address:       d.Address,
		Kind:          string(d.Kind),
		Balance:       d.Balance,
		Status:        string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAccount converts a database account row to the domain model.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountNumber: m.AccountNumber,
		HolderName:    m.HolderName,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		Kind:          domain.AccountKind(m.Kind),
		Balance:       m.Balance,
		Status:        domain.AccountStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
