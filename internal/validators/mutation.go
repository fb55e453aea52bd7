package validators

import (
	"context"
	"fmt"

	"github.com/lumenplay/levelkeeper/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldMutationID targets the client-generated deduplication id.
	FieldMutationID = "id"

	// FieldKind targets the mutation kind discriminator.
	FieldKind = "kind"

	// FieldEntityID targets the content entity the mutation applies to.
	FieldEntityID = "entity_id"

	// FieldSubKey targets the sub-key of a sub-key-result mutation.
	FieldSubKey = "sub_key"

	// FieldHighScore targets the recorded score of a sub-key-result mutation.
	FieldHighScore = "high_score"
)

// allowedKinds is the exhaustive set of mutation kinds accepted by the
// validator. Any kind not present here is rejected before apply.
var allowedKinds = []string{
	models.MutationSubKeyResult,
	models.MutationEntityComplete,
}

// MutationValidator implements [Validator] for [models.MutationPayload]
// values replayed by clients against the player-state endpoint.
type MutationValidator struct{}

// NewMutationValidator constructs a ready-to-use [MutationValidator].
func NewMutationValidator() *MutationValidator {
	return &MutationValidator{}
}

// Validate implements [Validator]. With no field names it validates the whole
// payload; otherwise only the named fields are checked.
func (v *MutationValidator) Validate(_ context.Context, value any, fields ...string) error {
	payload, ok := value.(models.MutationPayload)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	if len(fields) == 0 {
		fields = v.fieldsFor(payload)
	}

	for _, field := range fields {
		if err := v.validateField(payload, field); err != nil {
			return err
		}
	}

	return nil
}

// fieldsFor selects the field set for the payload's kind: sub-key fields are
// only meaningful on sub-key-result mutations.
func (v *MutationValidator) fieldsFor(payload models.MutationPayload) []string {
	fields := []string{FieldMutationID, FieldKind, FieldEntityID}
	if payload.Kind == models.MutationSubKeyResult {
		fields = append(fields, FieldSubKey, FieldHighScore)
	}
	return fields
}

func (v *MutationValidator) validateField(payload models.MutationPayload, field string) error {
	switch field {
	case FieldMutationID:
		if payload.ID == "" {
			return ErrInvalidMutationID
		}
	case FieldKind:
		for _, kind := range allowedKinds {
			if payload.Kind == kind {
				return nil
			}
		}
		return fmt.Errorf("%w: %q", ErrInvalidKind, payload.Kind)
	case FieldEntityID:
		if payload.EntityID == "" {
			return ErrInvalidEntityID
		}
	case FieldSubKey:
		if payload.SubKey == "" {
			return ErrInvalidSubKey
		}
	case FieldHighScore:
		if payload.HighScore < 0 {
			return ErrInvalidHighScore
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}
