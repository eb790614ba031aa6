package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/claims"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/pagination"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/utils"
)

// memStore — хранилище в памяти с теми же гарантиями, что даёт Postgres:
// уникальные индексы и внешние ключи проверяются при записи.
type memStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]models.User
	passports map[uuid.UUID]models.Passport
	workBooks map[uuid.UUID]models.WorkBook
	claims    map[uuid.UUID][]models.Claim

	// вызывается внутри WorkBooks.ExistsForUser до ответа
	onWorkBookCheck func()
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[uuid.UUID]models.User{},
		passports: map[uuid.UUID]models.Passport{},
		workBooks: map[uuid.UUID]models.WorkBook{},
		claims:    map[uuid.UUID][]models.Claim{},
	}
}

type memUsers struct{ *memStore }

func (m memUsers) GetByID(_ context.Context, id uuid.UUID) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, serr.ErrNotFound
	}
	return u, nil
}

func (m memUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, serr.ErrNotFound
}

func (m memUsers) List(_ context.Context, f models.UserFilter) (pagination.Page[models.User], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, u)
	}
	return pagination.Slice(all, f.Page, f.PageSize)
}

func (m memUsers) Create(_ context.Context, u models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.users {
		if strings.EqualFold(other.Email, u.Email) {
			return models.User{}, &serr.ConstraintError{Kind: serr.ErrAlreadyExists, Constraint: "users_email_lower_key"}
		}
	}
	u.ID = uuid.New()
	m.users[u.ID] = u
	return u, nil
}

func (m memUsers) Update(_ context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.users[u.ID]
	cur.Email = u.Email
	m.users[u.ID] = cur
	return nil
}

func (m memUsers) ChangePassword(_ context.Context, id uuid.UUID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.users[id]
	cur.PasswordHash = hash
	m.users[id] = cur
	return nil
}

func (m memUsers) AssignRole(_ context.Context, id uuid.UUID, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.users[id]
	cur.Role = role
	m.users[id] = cur
	return nil
}

func (m memUsers) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

type memRoles struct{}

func (memRoles) Exists(_ context.Context, name string) (bool, error) {
	for _, r := range models.Roles {
		if r == name {
			return true, nil
		}
	}
	return false, nil
}

func (memRoles) List(context.Context) ([]models.Role, error) {
	out := make([]models.Role, 0, len(models.Roles))
	for _, r := range models.Roles {
		out = append(out, models.Role{Name: r})
	}
	return out, nil
}

type memPassports struct{ *memStore }

func (m memPassports) find(match func(models.Passport) bool) (models.Passport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.passports {
		if match(p) {
			return p, nil
		}
	}
	return models.Passport{}, serr.ErrNotFound
}

func (m memPassports) GetByID(_ context.Context, id uuid.UUID) (models.Passport, error) {
	return m.find(func(p models.Passport) bool { return p.ID == id })
}

func (m memPassports) GetByIdentificationNumber(_ context.Context, idn string) (models.Passport, error) {
	return m.find(func(p models.Passport) bool { return p.IdentificationNumber == idn })
}

func (m memPassports) GetBySeriesNumber(_ context.Context, series, number string) (models.Passport, error) {
	return m.find(func(p models.Passport) bool { return p.Series == series && p.Number == number })
}

func (m memPassports) ExistsForUser(_ context.Context, userID uuid.UUID) (bool, error) {
	_, err := m.find(func(p models.Passport) bool { return p.UserID == userID })
	return err == nil, nil
}

func (m memPassports) List(_ context.Context, page models.PageRequest) (pagination.Page[models.Passport], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]models.Passport, 0, len(m.passports))
	for _, p := range m.passports {
		all = append(all, p)
	}
	return pagination.Slice(all, page.Page, page.PageSize)
}

func (m memPassports) Create(_ context.Context, p models.Passport) (models.Passport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[p.UserID]; !ok {
		return models.Passport{}, &serr.ConstraintError{Kind: serr.ErrNotFound, Constraint: "passports_user_id_fkey"}
	}
	for _, other := range m.passports {
		if other.UserID == p.UserID {
			return models.Passport{}, &serr.ConstraintError{Kind: serr.ErrAlreadyExists, Constraint: "passports_user_id_key"}
		}
	}
	p.ID = uuid.New()
	m.passports[p.ID] = p
	return p, nil
}

func (m memPassports) Update(_ context.Context, p models.Passport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passports[p.ID] = p
	return nil
}

func (m memPassports) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.passports, id)
	return nil
}

type memWorkBooks struct{ *memStore }

func (m memWorkBooks) GetByID(_ context.Context, id uuid.UUID) (models.WorkBook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wb, ok := m.workBooks[id]
	if !ok {
		return models.WorkBook{}, serr.ErrNotFound
	}
	return wb, nil
}

func (m memWorkBooks) ExistsForUser(_ context.Context, userID uuid.UUID) (bool, error) {
	m.mu.Lock()
	exists := false
	for _, wb := range m.workBooks {
		if wb.UserID == userID {
			exists = true
		}
	}
	hook := m.onWorkBookCheck
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	return exists, nil
}

func (m memWorkBooks) List(_ context.Context, page models.PageRequest) (pagination.Page[models.WorkBook], error) {
	return pagination.Page[models.WorkBook]{Page: page.Page, PageSize: page.PageSize}, nil
}

func (m memWorkBooks) Create(_ context.Context, wb models.WorkBook) (models.WorkBook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.workBooks {
		if other.UserID == wb.UserID {
			return models.WorkBook{}, &serr.ConstraintError{Kind: serr.ErrAlreadyExists, Constraint: "work_books_user_id_key"}
		}
	}
	wb.ID = uuid.New()
	m.workBooks[wb.ID] = wb
	return wb, nil
}

func (m memWorkBooks) Update(_ context.Context, wb models.WorkBook) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workBooks[wb.ID] = wb
	return nil
}

func (m memWorkBooks) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.workBooks, id)
	return nil
}

type memClaims struct{ *memStore }

func (m memClaims) GetClaims(_ context.Context, userID uuid.UUID) ([]models.Claim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Claim(nil), m.claims[userID]...), nil
}

func (m memClaims) AddClaims(_ context.Context, userID uuid.UUID, cs []models.Claim) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.claims[userID] = append(m.claims[userID], cs...)
	return nil
}

func (m memClaims) ReplaceClaim(_ context.Context, userID uuid.UUID, old, updated models.Claim) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.claims[userID] {
		if c == old {
			m.claims[userID][i] = updated
			return nil
		}
	}
	return serr.ErrNotFound
}

type scenario struct {
	store     *memStore
	users     *service.UserService
	passports *service.PassportService
	workBooks *service.WorkBookService
}

func newScenario() *scenario {
	st := newMemStore()
	verifier := service.NewVerifier(memUsers{st}, memRoles{}, memPassports{st}, memWorkBooks{st})
	return &scenario{
		store:     st,
		users:     service.NewUserService(memUsers{st}, memClaims{st}, verifier, testHasher()),
		passports: service.NewPassportService(memPassports{st}, memClaims{st}, verifier),
		workBooks: service.NewWorkBookService(memWorkBooks{st}, verifier),
	}
}

func claimValue(cs []models.Claim, typ string) []string {
	var out []string
	for _, c := range cs {
		if c.Type == typ {
			out = append(out, c.Value)
		}
	}
	return out
}

// Пользователь, паспорт, обновление даты рождения: claim заменяется, а не дублируется
func TestScenario_ClaimsFollowPassport(t *testing.T) {
	ctx := context.Background()
	sc := newScenario()

	user, err := sc.users.Create(ctx, models.UserInput{
		Email:    "a@b.com",
		Password: utils.StrPtr("secret"),
		Role:     models.RoleDriver,
	})
	require.NoError(t, err)

	p := samplePassport(user.ID)
	created, err := sc.passports.Create(ctx, p)
	require.NoError(t, err)

	cs, _ := memClaims{sc.store}.GetClaims(ctx, user.ID)
	require.ElementsMatch(t, []models.Claim{
		{Type: claims.TypeEmail, Value: "a@b.com"},
		{Type: claims.TypeGivenName, Value: "Ivan"},
		{Type: claims.TypeFamilyName, Value: "Ivanov"},
		{Type: claims.TypeBirthdate, Value: "2000-01-01"},
	}, cs)

	upd := p
	upd.BirthDate = sm.NewDate(1999, 12, 31)
	_, err = sc.passports.Update(ctx, created.ID, upd)
	require.NoError(t, err)

	cs, _ = memClaims{sc.store}.GetClaims(ctx, user.ID)
	require.Equal(t, []string{"1999-12-31"}, claimValue(cs, claims.TypeBirthdate))
	require.Len(t, cs, 4)

	// второй паспорт тому же пользователю
	second := samplePassport(user.ID)
	second.Series = "CD"
	second.IdentificationNumber = "7654321a123PB1"
	_, err = sc.passports.Create(ctx, second)
	requireCode(t, err, serr.ErrConflict, "Passport.Duplication")

	// удаление паспорта не трогает claims
	require.NoError(t, sc.passports.Delete(ctx, created.ID))
	cs, _ = memClaims{sc.store}.GetClaims(ctx, user.ID)
	require.Len(t, cs, 4)
}

// Паспорт удалён и создан новый: в хранилище два birthdate, обновление
// меняет первый, и токен берёт тот же первый
func TestScenario_TokenAfterPassportReplaced(t *testing.T) {
	ctx := context.Background()
	sc := newScenario()
	auth := service.NewAuthService(memUsers{sc.store}, memClaims{sc.store}, testHasher(), testJWT)

	user, err := sc.users.Create(ctx, models.UserInput{
		Email:    "a@b.com",
		Password: utils.StrPtr("secret"),
		Role:     models.RoleDriver,
	})
	require.NoError(t, err)

	first, err := sc.passports.Create(ctx, samplePassport(user.ID))
	require.NoError(t, err)
	require.NoError(t, sc.passports.Delete(ctx, first.ID))

	p := samplePassport(user.ID)
	p.Series = "CD"
	p.Number = "7654321"
	p.IdentificationNumber = "7654321a123PB1"
	p.BirthDate = sm.NewDate(1990, 5, 5)
	second, err := sc.passports.Create(ctx, p)
	require.NoError(t, err)

	upd := p
	upd.BirthDate = sm.NewDate(1985, 3, 3)
	_, err = sc.passports.Update(ctx, second.ID, upd)
	require.NoError(t, err)

	cs, _ := memClaims{sc.store}.GetClaims(ctx, user.ID)
	require.Equal(t, []string{"1985-03-03", "1990-05-05"}, claimValue(cs, claims.TypeBirthdate))

	tok, err := auth.Token(ctx, "a@b.com", "secret")
	require.NoError(t, err)
	parsed, err := crypto.ParseAccessToken(tok.AccessToken, testJWT.SigningKey, testJWT.Issuer, testJWT.Audience)
	require.NoError(t, err)
	require.Equal(t, "1985-03-03", parsed.Birthdate)
}

// Смена email пользователя меняет claim email
func TestScenario_EmailClaimReplaced(t *testing.T) {
	ctx := context.Background()
	sc := newScenario()

	user, err := sc.users.Create(ctx, models.UserInput{
		Email:    "a@b.com",
		Password: utils.StrPtr("secret"),
		Role:     models.RoleDriver,
	})
	require.NoError(t, err)

	_, err = sc.users.Create(ctx, models.UserInput{
		Email:    "A@B.com",
		Password: utils.StrPtr("secret"),
		Role:     models.RoleDriver,
	})
	requireCode(t, err, serr.ErrConflict, "User.Duplication")

	_, err = sc.users.Update(ctx, user.ID, models.UserInput{Email: "c@d.com", Role: models.RoleDriver})
	require.NoError(t, err)

	cs, _ := memClaims{sc.store}.GetClaims(ctx, user.ID)
	require.Equal(t, []models.Claim{{Type: claims.TypeEmail, Value: "c@d.com"}}, cs)
}

// Два одновременных Create книжки одному владельцу: оба проходят проверку,
// запись второго отвергает уникальный индекс, и он получает Conflict
func TestScenario_WorkBookCreateRace(t *testing.T) {
	ctx := context.Background()
	sc := newScenario()

	user, err := sc.users.Create(ctx, models.UserInput{
		Email:    "a@b.com",
		Password: utils.StrPtr("secret"),
		Role:     models.RoleDriver,
	})
	require.NoError(t, err)

	// барьер: ни один запрос не пишет, пока оба не прошли проверку
	var arrived sync.WaitGroup
	arrived.Add(2)
	sc.store.onWorkBookCheck = func() {
		arrived.Done()
		arrived.Wait()
	}

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = sc.workBooks.Create(ctx, models.WorkBook{
				Number:    "WB-1",
				IssueDate: sm.NewDate(2024, 1, 1),
				UserID:    user.ID,
			})
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			requireCode(t, err, serr.ErrConflict, "WorkBook.Duplication")
			conflicts++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, conflicts)
	require.Len(t, sc.store.workBooks, 1)
}
