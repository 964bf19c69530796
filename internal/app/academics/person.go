package academics

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// personIDLength is the number of characters kept from the generated UUID.
const personIDLength = 8

// Member is the capability contract every concrete role satisfies. Role and
// Responsibilities are pure functions of entity state and may be called freely.
type Member interface {
	Role() string
	Responsibilities() []string
	BasicInfo() BasicInfo
}

// BasicInfo is a read-only snapshot of a person's identity.
type BasicInfo struct {
	ID        string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// Person is the identity record shared by every role in the system. The ID is
// generated once at construction and never changes; name and email are
// re-validated on every mutation.
type Person struct {
	id          string
	name        string
	email       string
	phone       string
	dateOfBirth *time.Time
	address     string
	createdAt   time.Time
}

// newPerson builds the shared identity record. Concrete roles wrap this in
// their own constructors.
func newPerson(name, email, phone string) (Person, error) {
	p := Person{
		id:        uuid.NewString()[:personIDLength],
		phone:     phone,
		createdAt: time.Now(),
	}

	validName, err := validateName(name)
	if err != nil {
		return Person{}, err
	}
	p.name = validName

	validEmail, err := validateEmail(email)
	if err != nil {
		return Person{}, err
	}
	p.email = validEmail

	return p, nil
}

// ID returns the immutable person identifier.
func (p *Person) ID() string {
	return p.id
}

// Name returns the person's name.
func (p *Person) Name() string {
	return p.name
}

// SetName replaces the name after re-running construction validation.
func (p *Person) SetName(name string) error {
	validName, err := validateName(name)
	if err != nil {
		return err
	}
	p.name = validName
	return nil
}

// Email returns the person's email address.
func (p *Person) Email() string {
	return p.email
}

// SetEmail replaces the email after re-running construction validation.
func (p *Person) SetEmail(email string) error {
	validEmail, err := validateEmail(email)
	if err != nil {
		return err
	}
	p.email = validEmail
	return nil
}

// Phone returns the person's phone number.
func (p *Person) Phone() string {
	return p.phone
}

// SetPhone replaces the phone number. Phone numbers carry no validation rule.
func (p *Person) SetPhone(phone string) {
	p.phone = phone
}

// Address returns the person's address.
func (p *Person) Address() string {
	return p.address
}

// SetAddress replaces the address.
func (p *Person) SetAddress(address string) {
	p.address = address
}

// DateOfBirth returns the person's date of birth, nil when unknown.
func (p *Person) DateOfBirth() *time.Time {
	return p.dateOfBirth
}

// SetDateOfBirth records the person's date of birth.
func (p *Person) SetDateOfBirth(dob time.Time) {
	p.dateOfBirth = &dob
}

// CreatedAt returns the creation timestamp.
func (p *Person) CreatedAt() time.Time {
	return p.createdAt
}

// basicInfo builds the identity snapshot for the given role string. Concrete
// roles expose it through their BasicInfo method.
func (p *Person) basicInfo(role string) BasicInfo {
	return BasicInfo{
		ID:        p.id,
		Name:      p.name,
		Email:     p.email,
		Role:      role,
		CreatedAt: p.createdAt,
	}
}

// validateName trims, checks length, and title-cases a name.
func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)

	ok := validation.NewStringValidation(trimmed).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidName, name)
	}

	return helpers.TitleCase(trimmed), nil
}

// validateEmail lower-cases an email and checks the minimal shape: it must
// contain both "@" and ".".
func validateEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))

	if trimmed == "" || !strings.Contains(trimmed, "@") || !strings.Contains(trimmed, ".") {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidEmail, email)
	}

	return trimmed, nil
}

// validateDepartment applies the same rule as names to department and major
// fields: non-empty after trimming, stored title-cased.
func validateDepartment(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: value cannot be empty", apperrors.ErrValidationFailed)
	}
	return helpers.TitleCase(trimmed), nil
}

// validateSalary checks that a salary is not negative.
func validateSalary(salary float64) error {
	if salary < 0 {
		return fmt.Errorf("%w: %.2f", apperrors.ErrInvalidSalary, salary)
	}
	return nil
}
