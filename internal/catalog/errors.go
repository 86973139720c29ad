package catalog

import (
	"errors"
	"fmt"

	"practice-catalog/internal/model"
)

var (
	// ErrItemNotFound is returned by reads for a missing catalog item.
	ErrItemNotFound = errors.New("catalog item not found")
)

// Validation rule identifiers. Delivery layers use these to pick the
// localized rejection message.
const (
	RuleIncorrectCategoryType = "IncorrectCategoryType"
	RuleMaximumLinkedItems    = "MaximumLinkedItemsError"
	RuleCategoryNotFound      = "CategoryNotFound"
	RuleTaxLevelNotFound      = "TaxLevelNotFound"
	RuleTemplateNotFound      = "DocumentTemplateNotFound"
	RuleLinkedItemNotFound    = "LinkedItemNotFound"
	RuleLinkedItemType        = "LinkedItemTypeNotAllowed"
	RuleVaccinePayload        = "InvalidVaccinePayload"
	RuleInvalidItemType       = "InvalidItemType"
	RuleRequiredField         = "MissingRequiredField"
)

// ConflictError signals that a code or explicit key already identifies an
// existing item. Field is "code" or "key"; ItemType carries the type of the
// conflicting entity.
type ConflictError struct {
	Field    string
	Value    string
	ItemType model.ItemType
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("catalog item %s %q already in use by a %s item", e.Field, e.Value, e.ItemType)
}

// ValidationError is a structured rejection of the inbound command.
// MessageKey/Args feed the locale catalog; Rule identifies the violated rule.
type ValidationError struct {
	Rule       string
	MessageKey string
	Args       []any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Rule)
}

// NewValidationError builds a ValidationError with its localization key.
func NewValidationError(rule, messageKey string, args ...any) *ValidationError {
	return &ValidationError{Rule: rule, MessageKey: messageKey, Args: args}
}
