package usecase

import (
	"time"

	"github.com/google/uuid"

	"practice-catalog/internal/catalog"
	"practice-catalog/internal/model"
)

// strategy captures everything that varies per item type: validation rules,
// linked-item policy and type-specific property enrichment. The set of
// strategies is closed (see New); there is no open class hierarchy.
type strategy interface {
	itemType() model.ItemType

	// validate runs item-type-specific rules against the inbound command.
	validate(input catalog.CreateItemInput) error

	// Linked-item policy.
	maxLinkedItems() int
	acceptsLinkedType(t model.ItemType) bool

	// enrichProperties builds the type-specific sub-record during the
	// concurrent enrichment fan-out. Only service items produce one.
	enrichProperties(input catalog.CreateItemInput, user model.User, ts time.Time) (*model.Vaccine, error)
}

// --- service ---

type serviceStrategy struct{}

func (serviceStrategy) itemType() model.ItemType { return model.ItemTypeService }

func (serviceStrategy) validate(input catalog.CreateItemInput) error {
	v := input.Vaccine
	if v == nil {
		return nil
	}
	if v.Name == "" {
		return catalog.NewValidationError(catalog.RuleVaccinePayload, "validation.vaccine_payload", "name is required")
	}
	if v.Manufacturer == "" {
		return catalog.NewValidationError(catalog.RuleVaccinePayload, "validation.vaccine_payload", "manufacturer is required")
	}
	return nil
}

func (serviceStrategy) maxLinkedItems() int { return 1 }

func (serviceStrategy) acceptsLinkedType(t model.ItemType) bool {
	return t == model.ItemTypeService || t == model.ItemTypeLab
}

// enrichProperties stamps the vaccine sub-record with its own key and the
// audit fields mirrored from the owning item.
func (serviceStrategy) enrichProperties(input catalog.CreateItemInput, user model.User, ts time.Time) (*model.Vaccine, error) {
	if input.Vaccine == nil {
		return nil, nil
	}
	return &model.Vaccine{
		Key:           uuid.NewString(),
		Name:          input.Vaccine.Name,
		Manufacturer:  input.Vaccine.Manufacturer,
		BatchTracking: input.Vaccine.BatchTracking,
		CreatedAt:     ts,
		CreatedBy:     user.ID,
		ModifiedAt:    ts,
		ModifiedBy:    user.ID,
	}, nil
}

// --- lab ---

type labStrategy struct{}

func (labStrategy) itemType() model.ItemType { return model.ItemTypeLab }

func (labStrategy) validate(input catalog.CreateItemInput) error {
	if input.Vaccine != nil {
		return catalog.NewValidationError(catalog.RuleVaccinePayload, "validation.vaccine_payload", "lab items cannot carry a vaccine")
	}
	return nil
}

func (labStrategy) maxLinkedItems() int { return 1 }

func (labStrategy) acceptsLinkedType(t model.ItemType) bool {
	return t == model.ItemTypeLab
}

func (labStrategy) enrichProperties(catalog.CreateItemInput, model.User, time.Time) (*model.Vaccine, error) {
	return nil, nil
}

// --- product ---

type productStrategy struct{}

func (productStrategy) itemType() model.ItemType { return model.ItemTypeProduct }

func (productStrategy) validate(input catalog.CreateItemInput) error {
	if input.Vaccine != nil {
		return catalog.NewValidationError(catalog.RuleVaccinePayload, "validation.vaccine_payload", "product items cannot carry a vaccine")
	}
	return nil
}

func (productStrategy) maxLinkedItems() int { return 0 }

func (productStrategy) acceptsLinkedType(model.ItemType) bool { return false }

func (productStrategy) enrichProperties(catalog.CreateItemInput, model.User, time.Time) (*model.Vaccine, error) {
	return nil, nil
}
