package api

import (
	"html"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/utils"
)

const (
	msgDateFormat = "Invalid date format. Expected format is 'yyyy-MM-dd'."
	msgUserID     = "User ID was expected"
	msgUserIDFmt  = "User ID has invalid format"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	upper       = regexp.MustCompile(`[A-Z]`)
	lower       = regexp.MustCompile(`[a-z]`)
	digit       = regexp.MustCompile(`[0-9]`)
	special     = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Sanitizer отклоняет разметку в свободных текстовых полях (strict policy bluemonday).
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// HasMarkup — true, если strict policy что-то вырезала из s.
func (s *Sanitizer) HasMarkup(v string) bool {
	return html.UnescapeString(s.policy.Sanitize(v)) != v
}

// fieldErrors — ошибки валидации по полям, ключи в том виде, в каком их видит клиент.
type fieldErrors map[string][]string

func (f fieldErrors) add(field, msg string) {
	f[field] = append(f[field], msg)
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return serr.Validation("Validation", "Validation errors occurred", f)
}

// validator — правила одного запроса. При первой ошибке поля остальные правила этого поля не проверяются.
type validator struct {
	errs fieldErrors
	san  *Sanitizer
}

func (h *Handler) validator() *validator {
	return &validator{errs: fieldErrors{}, san: h.Sanitizer}
}

// text: обязательное (если required), длина в рунах, без разметки.
func (v *validator) text(field, value string, required bool, expected string, check func(n int) bool, lengthMsg string) {
	if strings.TrimSpace(value) == "" {
		if required {
			v.errs.add(field, expected)
		}
		return
	}
	if !check(utf8.RuneCountInString(value)) {
		v.errs.add(field, lengthMsg)
		return
	}
	if v.san.HasMarkup(value) {
		v.errs.add(field, field+" must not contain markup")
	}
}

func exactly(n int) func(int) bool { return func(got int) bool { return got == n } }
func atMost(n int) func(int) bool  { return func(got int) bool { return got <= n } }

func (v *validator) date(field, value, expected string) sm.Date {
	if strings.TrimSpace(value) == "" {
		v.errs.add(field, expected)
		return sm.Date{}
	}
	return v.optionalDate(field, value)
}

func (v *validator) optionalDate(field, value string) sm.Date {
	if !datePattern.MatchString(value) {
		v.errs.add(field, msgDateFormat)
		return sm.Date{}
	}
	d, err := sm.ParseDate(value)
	if err != nil {
		v.errs.add(field, msgDateFormat)
	}
	return d
}

func (v *validator) userID(value string) uuid.UUID {
	if strings.TrimSpace(value) == "" {
		v.errs.add("UserId", msgUserID)
		return uuid.Nil
	}
	id, err := uuid.Parse(value)
	if err != nil || id == uuid.Nil {
		v.errs.add("UserId", msgUserIDFmt)
		return uuid.Nil
	}
	return id
}

func (v *validator) email(value string) {
	if strings.TrimSpace(value) == "" {
		v.errs.add("Email", "Email was expected")
		return
	}
	if addr, err := mail.ParseAddress(value); err != nil || addr.Address != value {
		v.errs.add("Email", "Incorrect email format")
		return
	}
	if utf8.RuneCountInString(value) > 256 {
		v.errs.add("Email", "Length of email mustn't exceed 256")
	}
}

// password проверяется, только если передан; о классах символов сообщается обо всех сразу.
func (v *validator) password(p *string) {
	if p == nil {
		return
	}
	if *p == "" {
		v.errs.add("Password", "Password was expected")
		return
	}
	if utf8.RuneCountInString(*p) < 6 {
		v.errs.add("Password", "Password must contain at least 6 character")
	}
	if !upper.MatchString(*p) {
		v.errs.add("Password", "Password must contain uppercase character")
	}
	if !lower.MatchString(*p) {
		v.errs.add("Password", "Password must contain lowercase character")
	}
	if !digit.MatchString(*p) {
		v.errs.add("Password", "Password must contain digit")
	}
	if !special.MatchString(*p) {
		v.errs.add("Password", "Password must contain non-alphanumeric character")
	}
}

func (v *validator) page(q url.Values) models.PageRequest {
	return models.PageRequest{
		Page:     v.positive(q, "page_number", "PageNumber", "The page number"),
		PageSize: v.positive(q, "page_size", "PageSize", "The page size"),
	}
}

func (v *validator) positive(q url.Values, key, field, subject string) int {
	raw := q.Get(key)
	if raw == "" {
		v.errs.add(field, subject+" was expected")
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		v.errs.add(field, subject+" must be more than 0")
		return 0
	}
	return n
}

func (h *Handler) parseUser(req sm.UserRequest) (models.UserInput, error) {
	v := h.validator()
	v.email(req.Email)
	v.text("Role", req.Role, true, "Role was expected", atMost(256), "Length of role mustn't exceed 256")
	v.password(req.Password)
	if err := v.errs.err(); err != nil {
		return models.UserInput{}, err
	}
	return models.UserInput{Email: req.Email, Password: req.Password, Role: req.Role}, nil
}

func (h *Handler) parsePassport(req sm.PassportRequest) (models.Passport, error) {
	v := h.validator()
	v.text("Series", req.Series, true, "Passport series was expected", exactly(2), "Length of passport series was expected to be 2")
	v.text("Number", req.Number, true, "Passport number was expected", exactly(7), "Length of passport number was expected to be 7")
	v.text("IdentificationNumber", req.IdentificationNumber, true, "Passport Identification Number was expected",
		exactly(14), "Length of passport Identification Number was expected to be 14")
	v.text("Firstname", req.Firstname, true, "Firstname was expected", atMost(100), "Length of firstname mustn't exceed 100")
	v.text("Lastname", req.Lastname, true, "Lastname was expected", atMost(100), "Length of lastname mustn't exceed 100")
	if req.Patronymic != nil {
		v.text("Patronymic", *req.Patronymic, false, "", atMost(100), "Length of patronymic mustn't exceed 100")
	}
	birth := v.date("BirthDate", req.BirthDate, "Birth date was expected")
	issue := v.date("IssueDate", req.IssueDate, "Passport issue date was expected")
	expiry := v.date("ExpiryDate", req.ExpiryDate, "Passport expiry date was expected")
	userID := v.userID(req.UserID)
	if err := v.errs.err(); err != nil {
		return models.Passport{}, err
	}

	return models.Passport{
		Series:               req.Series,
		Number:               req.Number,
		IdentificationNumber: req.IdentificationNumber,
		Firstname:            req.Firstname,
		Lastname:             req.Lastname,
		Patronymic:           req.Patronymic,
		BirthDate:            birth,
		IssueDate:            issue,
		ExpiryDate:           expiry,
		UserID:               userID,
	}, nil
}

func (h *Handler) parseWorkBook(req sm.WorkBookRequest) (models.WorkBook, error) {
	v := h.validator()
	v.text("Number", req.Number, true, "Work book number was expected", atMost(20), "Length of work book number mustn't exceed 20")
	issue := v.date("IssueDate", req.IssueDate, "Work book issue date was expected")
	userID := v.userID(req.UserID)
	if err := v.errs.err(); err != nil {
		return models.WorkBook{}, err
	}
	return models.WorkBook{Number: req.Number, IssueDate: issue, UserID: userID}, nil
}

func (h *Handler) parseContract(req sm.ContractRequest) (models.Contract, error) {
	v := h.validator()
	v.text("Number", req.Number, true, "Contract number was expected", atMost(20), "Length of contract number mustn't exceed 20")
	start := v.date("StartDate", req.StartDate, "Contract start date was expected")
	end := v.date("EndDate", req.EndDate, "Contract end date was expected")
	userID := v.userID(req.UserID)
	if err := v.errs.err(); err != nil {
		return models.Contract{}, err
	}
	return models.Contract{Number: req.Number, StartDate: start, EndDate: end, UserID: userID}, nil
}

func (h *Handler) parsePage(q url.Values) (models.PageRequest, error) {
	v := h.validator()
	page := v.page(q)
	return page, v.errs.err()
}

func (h *Handler) parseUserFilter(q url.Values) (models.UserFilter, error) {
	v := h.validator()
	f := models.UserFilter{PageRequest: v.page(q)}

	if q.Has("role") {
		role := q.Get("role")
		v.text("Role", role, false, "", atMost(256), "Length of role mustn't exceed 256")
		f.Role = utils.Ptr(role)
	}
	if q.Has("birthdate_from") {
		f.BirthdateFrom = utils.Ptr(v.optionalDate("BirthdateFrom", q.Get("birthdate_from")))
	}
	if q.Has("birthdate_to") {
		f.BirthdateTo = utils.Ptr(v.optionalDate("BirthdateTo", q.Get("birthdate_to")))
	}
	return f, v.errs.err()
}

func (h *Handler) parseContractFilter(q url.Values) (models.ContractFilter, error) {
	v := h.validator()
	f := models.ContractFilter{PageRequest: v.page(q)}

	if q.Has("number") {
		number := q.Get("number")
		v.text("Number", number, false, "", atMost(20), "Length of contract number mustn't exceed 20")
		f.Number = utils.Ptr(number)
	}
	if q.Has("start_date") {
		f.StartDate = utils.Ptr(v.optionalDate("StartDate", q.Get("start_date")))
	}
	if q.Has("end_date") {
		f.EndDate = utils.Ptr(v.optionalDate("EndDate", q.Get("end_date")))
	}
	if q.Has("is_valid") {
		b, err := strconv.ParseBool(q.Get("is_valid"))
		if err != nil {
			v.errs.add("IsValid", "IsValid must be true or false")
		}
		f.IsValid = utils.Ptr(b)
	}
	if q.Has("user_id") {
		id := v.userID(q.Get("user_id"))
		f.UserID = utils.Ptr(id)
	}
	return f, v.errs.err()
}
