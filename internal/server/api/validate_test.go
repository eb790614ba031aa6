package api

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/utils"
)

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	require.ErrorIs(t, err, serr.ErrInvalidInput)
	de, ok := serr.As(err)
	require.True(t, ok)
	require.Equal(t, "Validation", de.Code)
	require.Equal(t, "Validation errors occurred", de.Message)
	return de.Fields
}

func validPassport() sm.PassportRequest {
	return sm.PassportRequest{
		Series:               "AB",
		Number:               "1234567",
		IdentificationNumber: "1234567a123PB1",
		Firstname:            "Ivan",
		Lastname:             "Ivanov",
		BirthDate:            "2000-01-01",
		IssueDate:            "2024-01-01",
		ExpiryDate:           "2029-01-01",
		UserID:               "7f1d2c3e-0000-4000-8000-000000000001",
	}
}

func TestParsePassport(t *testing.T) {
	h := NewHandler(nil, nil)

	p, err := h.parsePassport(validPassport())
	require.NoError(t, err)
	require.Equal(t, "2000-01-01", p.BirthDate.String())
	require.Equal(t, "7f1d2c3e-0000-4000-8000-000000000001", p.UserID.String())

	req := validPassport()
	req.Series = "ABC"
	req.Number = ""
	req.IdentificationNumber = "123"
	req.Lastname = strings.Repeat("x", 101)
	req.Patronymic = utils.Ptr(strings.Repeat("x", 101))
	req.BirthDate = "01.01.2000"
	req.IssueDate = "2024-13-01"
	req.UserID = "nope"

	_, err = h.parsePassport(req)
	fields := fieldsOf(t, err)
	require.Equal(t, map[string][]string{
		"Series":               {"Length of passport series was expected to be 2"},
		"Number":               {"Passport number was expected"},
		"IdentificationNumber": {"Length of passport Identification Number was expected to be 14"},
		"Lastname":             {"Length of lastname mustn't exceed 100"},
		"Patronymic":           {"Length of patronymic mustn't exceed 100"},
		"BirthDate":            {msgDateFormat},
		"IssueDate":            {msgDateFormat},
		"UserId":               {msgUserIDFmt},
	}, fields)
}

// Разметка в именах и номерах отклоняется
func TestParsePassport_Markup(t *testing.T) {
	h := NewHandler(nil, nil)

	req := validPassport()
	req.Firstname = "<b>Ivan</b>"
	_, err := h.parsePassport(req)
	require.Equal(t, []string{"Firstname must not contain markup"}, fieldsOf(t, err)["Firstname"])

	// обычный текст с апострофом проходит
	req = validPassport()
	req.Lastname = "O'Neil"
	_, err = h.parsePassport(req)
	require.NoError(t, err)
}

func TestParseUser_Password(t *testing.T) {
	h := NewHandler(nil, nil)

	_, err := h.parseUser(sm.UserRequest{Email: "a@example.com", Role: "Driver"})
	require.NoError(t, err, "password may be omitted")

	_, err = h.parseUser(sm.UserRequest{Email: "a@example.com", Role: "Driver", Password: utils.Ptr("Pass123$")})
	require.NoError(t, err)

	_, err = h.parseUser(sm.UserRequest{Email: "a@example.com", Role: "Driver", Password: utils.Ptr("abc")})
	require.Equal(t, []string{
		"Password must contain at least 6 character",
		"Password must contain uppercase character",
		"Password must contain digit",
		"Password must contain non-alphanumeric character",
	}, fieldsOf(t, err)["Password"])
}

func TestParseUser_EmailAndRole(t *testing.T) {
	h := NewHandler(nil, nil)

	cases := []struct {
		email string
		want  string
	}{
		{"", "Email was expected"},
		{"   ", "Email was expected"},
		{"not-an-email", "Incorrect email format"},
		{"Admin <admin@example.com>", "Incorrect email format"},
		{strings.Repeat("a", 250) + "@example.com", "Length of email mustn't exceed 256"},
	}
	for _, tc := range cases {
		_, err := h.parseUser(sm.UserRequest{Email: tc.email, Role: "Driver"})
		require.Equal(t, []string{tc.want}, fieldsOf(t, err)["Email"], tc.email)
	}

	_, err := h.parseUser(sm.UserRequest{Email: "a@example.com"})
	require.Equal(t, []string{"Role was expected"}, fieldsOf(t, err)["Role"])
}

func TestParsePage(t *testing.T) {
	h := NewHandler(nil, nil)

	p, err := h.parsePage(url.Values{"page_number": {"2"}, "page_size": {"25"}})
	require.NoError(t, err)
	require.Equal(t, 2, p.Page)
	require.Equal(t, 25, p.PageSize)

	_, err = h.parsePage(url.Values{"page_number": {"0"}})
	require.Equal(t, map[string][]string{
		"PageNumber": {"The page number must be more than 0"},
		"PageSize":   {"The page size was expected"},
	}, fieldsOf(t, err))
}

func TestParseContractFilter(t *testing.T) {
	h := NewHandler(nil, nil)

	f, err := h.parseContractFilter(url.Values{
		"page_number": {"1"},
		"page_size":   {"10"},
		"number":      {"12"},
		"start_date":  {"2024-01-01"},
		"is_valid":    {"false"},
		"user_id":     {"7f1d2c3e-0000-4000-8000-000000000001"},
	})
	require.NoError(t, err)
	require.Equal(t, "12", *f.Number)
	require.Equal(t, "2024-01-01", f.StartDate.String())
	require.Nil(t, f.EndDate)
	require.False(t, *f.IsValid)
	require.Equal(t, "7f1d2c3e-0000-4000-8000-000000000001", f.UserID.String())

	_, err = h.parseContractFilter(url.Values{
		"page_number": {"1"},
		"page_size":   {"10"},
		"end_date":    {"2024/01/01"},
		"is_valid":    {"maybe"},
	})
	fields := fieldsOf(t, err)
	require.Equal(t, []string{msgDateFormat}, fields["EndDate"])
	require.Equal(t, []string{"IsValid must be true or false"}, fields["IsValid"])
}

func TestParseUserFilter(t *testing.T) {
	h := NewHandler(nil, nil)

	f, err := h.parseUserFilter(url.Values{
		"page_number":    {"1"},
		"page_size":      {"10"},
		"role":           {"driver"},
		"birthdate_from": {"1990-01-01"},
	})
	require.NoError(t, err)
	require.Equal(t, "driver", *f.Role)
	require.Equal(t, "1990-01-01", f.BirthdateFrom.String())
	require.Nil(t, f.BirthdateTo)

	_, err = h.parseUserFilter(url.Values{"page_number": {"1"}, "page_size": {"10"}, "birthdate_to": {"x"}})
	require.Equal(t, []string{msgDateFormat}, fieldsOf(t, err)["BirthdateTo"])
}
