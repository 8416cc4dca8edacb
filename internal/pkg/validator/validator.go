package validator

import (
	"fmt"
	"strings"

	"github.com/futig/drive-consult/internal/entity"
)

// Validator validates incoming requests
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateConsult checks that both folderId and question are present
func (v *Validator) ValidateConsult(req *entity.ConsultRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request body", entity.ErrMissingField)
	}

	var missing []string
	if strings.TrimSpace(req.FolderID) == "" {
		missing = append(missing, "folderId")
	}
	if strings.TrimSpace(req.Question) == "" {
		missing = append(missing, "question")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", entity.ErrMissingField, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateFolderID checks a folder id taken from a path or flag
func (v *Validator) ValidateFolderID(folderID string) error {
	if strings.TrimSpace(folderID) == "" {
		return fmt.Errorf("%w: folderId", entity.ErrMissingField)
	}
	return nil
}
