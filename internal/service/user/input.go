package user

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

const maxNameLength = 100

// CreateUserInput holds parameters for registering a learner.
type CreateUserInput struct {
	Name string
}

// Validate trims the name and checks it.
func (i *CreateUserInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)

	switch {
	case i.Name == "":
		return domain.NewValidationError("name", "required")
	case utf8.RuneCountInString(i.Name) > maxNameLength:
		return domain.NewValidationError("name", fmt.Sprintf("max %d characters", maxNameLength))
	}
	return nil
}
