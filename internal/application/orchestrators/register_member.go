package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"gymdash/internal/domain/account"
	"gymdash/internal/domain/member"

	"github.com/google/uuid"
)

// MemberStoreForRegister defines the store interface needed by member writes.
type MemberStoreForRegister interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
	Save(ctx context.Context, m member.Member) error
	NextCode(ctx context.Context) (string, error)
}

// AccountStoreForRegister resolves the optional account link on the member
// form.
type AccountStoreForRegister interface {
	GetByEmailAndRole(ctx context.Context, email string, role account.Role) (account.Account, error)
}

// RegisterMemberInput carries input for the register/update orchestrators.
type RegisterMemberInput struct {
	ID          string // empty for a new member
	GymID       string
	Name        string
	Phone       string
	Age         string // form value, parsed here
	Gender      string
	Address     string
	BloodGroup  string
	HealthNotes string
	Package     string
	StartDate   string // YYYY-MM-DD
	FeeStatus   string // defaults to Pending for new members

	// AccountEmail links the record to the member account that signed up
	// with that address. Empty leaves any existing link untouched.
	AccountEmail string
}

// RegisterMemberDeps holds dependencies for RegisterMember.
type RegisterMemberDeps struct {
	MemberStore  MemberStoreForRegister
	AccountStore AccountStoreForRegister // optional; needed only for AccountEmail
}

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrNoSuchAccount  = errors.New("no member account with that email")
)

// ExecuteRegisterMember creates a new member record: assigns the next floor
// code, derives fee and expiry from the chosen package.
// PRE: Name, phone and a known package provided
// POST: Member persisted; returns the new member
func ExecuteRegisterMember(ctx context.Context, input RegisterMemberInput, deps RegisterMemberDeps) (member.Member, error) {
	code, err := deps.MemberStore.NextCode(ctx)
	if err != nil {
		return member.Member{}, err
	}

	m := member.Member{
		ID:        uuid.New().String(),
		GymID:     input.GymID,
		Code:      code,
		FeeStatus: member.FeePending,
	}
	if err := applyMemberInput(&m, input); err != nil {
		return member.Member{}, err
	}
	if err := linkAccount(ctx, &m, input, deps); err != nil {
		return member.Member{}, err
	}

	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	slog.Info("member_event", "event", "member_registered", "code", m.Code, "name", m.Name)
	return m, nil
}

// ExecuteUpdateMember edits an existing member record, re-deriving fee and
// expiry when the package or start date changed.
// PRE: input.ID names an existing member
// POST: Member persisted with the new field values
func ExecuteUpdateMember(ctx context.Context, input RegisterMemberInput, deps RegisterMemberDeps) (member.Member, error) {
	m, err := deps.MemberStore.GetByID(ctx, input.ID)
	if err != nil {
		return member.Member{}, ErrMemberNotFound
	}

	if err := applyMemberInput(&m, input); err != nil {
		return member.Member{}, err
	}
	if err := linkAccount(ctx, &m, input, deps); err != nil {
		return member.Member{}, err
	}

	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	slog.Info("member_event", "event", "member_updated", "code", m.Code, "name", m.Name)
	return m, nil
}

// linkAccount resolves AccountEmail to the member account that signed up
// with it and records the link. The dashboard joins attendance through it.
func linkAccount(ctx context.Context, m *member.Member, input RegisterMemberInput, deps RegisterMemberDeps) error {
	if input.AccountEmail == "" || deps.AccountStore == nil {
		return nil
	}
	acct, err := deps.AccountStore.GetByEmailAndRole(ctx, input.AccountEmail, account.RoleMember)
	if err != nil {
		return ErrNoSuchAccount
	}
	m.AccountID = acct.ID
	return nil
}

// applyMemberInput copies form fields onto the member and validates.
func applyMemberInput(m *member.Member, input RegisterMemberInput) error {
	m.Name = input.Name
	m.Phone = input.Phone
	m.Gender = input.Gender
	m.Address = input.Address
	m.BloodGroup = input.BloodGroup
	m.HealthNotes = input.HealthNotes
	m.Package = input.Package

	if input.Age != "" {
		age, err := strconv.Atoi(input.Age)
		if err != nil || age < 0 {
			return errors.New("age must be a non-negative number")
		}
		m.Age = age
	}

	if input.StartDate != "" {
		start, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return errors.New("start date must be YYYY-MM-DD")
		}
		m.StartDate = start
	}
	if m.StartDate.IsZero() {
		m.StartDate = time.Now().Truncate(24 * time.Hour)
	}

	if input.FeeStatus != "" {
		m.FeeStatus = input.FeeStatus
	}

	if err := m.ApplyPackage(); err != nil {
		return err
	}
	return m.Validate()
}
