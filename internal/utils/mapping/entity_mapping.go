package mapping

import (
	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/SscSPs/trt_portal/internal/models"
)

// ToModelEntity converts a domain Entity to a model Entity
func ToModelEntity(d domain.Entity) models.Entity {
	return models.Entity{
		EntityID:    d.EntityID,
		Name:        d.Name,
		Description: d.Description,
		Code:        d.Code,
		ParentID:    d.ParentID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntity converts a model Entity to a domain Entity
func ToDomainEntity(m models.Entity) domain.Entity {
	return domain.Entity{
		EntityID:    m.EntityID,
		Name:        m.Name,
		Description: m.Description,
		Code:        m.Code,
		ParentID:    m.ParentID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntitySlice converts a slice of model Entities to domain Entities
func ToDomainEntitySlice(ms []models.Entity) []domain.Entity {
	ds := make([]domain.Entity, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntity(m)
	}
	return ds
}
