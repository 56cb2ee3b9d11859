package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiokosk/CustomerProjectManagement/internal/apperr"
	customerdomain "github.com/kiokosk/CustomerProjectManagement/internal/customers/domain"
	customerrepo "github.com/kiokosk/CustomerProjectManagement/internal/customers/repository"
	"github.com/kiokosk/CustomerProjectManagement/internal/projects/domain"
	"github.com/kiokosk/CustomerProjectManagement/internal/projects/repository"
	"github.com/kiokosk/CustomerProjectManagement/internal/storage/storagetest"
)

type fixture struct {
	svc  *ProjectService
	acme int64
	beta int64
}

func setup(t *testing.T) fixture {
	t.Helper()

	db := storagetest.NewSQLite(t)
	customers := customerrepo.NewCustomerRepository(db)
	ctx := context.Background()

	acme, err := customers.Create(ctx, customerdomain.CustomerInput{Name: "Acme", Email: "a@acme.com", Address: "1 Main St"})
	require.NoError(t, err)
	beta, err := customers.Create(ctx, customerdomain.CustomerInput{Name: "Beta", Email: "b@beta.com", Address: "2 Side St"})
	require.NoError(t, err)

	return fixture{
		svc:  NewProjectService(repository.NewProjectRepository(db)),
		acme: acme.ID,
		beta: beta.ID,
	}
}

func kindOf(t *testing.T, err error) *apperr.Error {
	t.Helper()

	var e *apperr.Error
	require.True(t, errors.As(err, &e), "expected *apperr.Error, got %v", err)
	return e
}

func TestProjectService_Create(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, domain.ProjectInput{Name: " Apollo ", Description: "moon", CustomerID: f.acme})
	require.NoError(t, err)
	assert.Equal(t, "Apollo", p.Name)
	assert.Equal(t, "Acme", p.Customer.Name)

	t.Run("same name under another customer is rejected", func(t *testing.T) {
		_, err := f.svc.Create(ctx, domain.ProjectInput{Name: "Apollo", Description: "again", CustomerID: f.beta})
		e := kindOf(t, err)
		assert.Equal(t, apperr.KindConflict, e.Kind)
		assert.Equal(t, MsgNameExists, e.Message)
	})

	t.Run("unknown customer is rejected", func(t *testing.T) {
		_, err := f.svc.Create(ctx, domain.ProjectInput{Name: "Gemini", Description: "orbit", CustomerID: 999})
		e := kindOf(t, err)
		assert.Equal(t, apperr.KindValidation, e.Kind)
		assert.Equal(t, MsgInvalidCustomer, e.Message)
	})

	t.Run("empty fields are listed", func(t *testing.T) {
		_, err := f.svc.Create(ctx, domain.ProjectInput{Name: "Gemini"})
		e := kindOf(t, err)
		assert.Equal(t, apperr.KindValidation, e.Kind)
		assert.Equal(t, []string{"description", "customerId"}, e.EmptyFields)
	})
}

func TestProjectService_Update(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	apollo, err := f.svc.Create(ctx, domain.ProjectInput{Name: "Apollo", Description: "moon", CustomerID: f.acme})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, domain.ProjectInput{Name: "Gemini", Description: "orbit", CustomerID: f.beta})
	require.NoError(t, err)

	t.Run("keeping its own name is allowed", func(t *testing.T) {
		p, err := f.svc.Update(ctx, apollo.ID, domain.ProjectInput{Name: "Apollo", Description: "moon landing", CustomerID: f.beta})
		require.NoError(t, err)
		assert.Equal(t, "moon landing", p.Description)
		assert.Equal(t, "Beta", p.Customer.Name)
	})

	t.Run("another project's name is rejected", func(t *testing.T) {
		_, err := f.svc.Update(ctx, apollo.ID, domain.ProjectInput{Name: "Gemini", Description: "moon", CustomerID: f.acme})
		assert.Equal(t, apperr.KindConflict, kindOf(t, err).Kind)
	})

	t.Run("unknown customer is rejected", func(t *testing.T) {
		_, err := f.svc.Update(ctx, apollo.ID, domain.ProjectInput{Name: "Apollo", Description: "moon", CustomerID: 999})
		e := kindOf(t, err)
		assert.Equal(t, apperr.KindValidation, e.Kind)
		assert.Equal(t, MsgInvalidCustomer, e.Message)
	})

	t.Run("unknown project wins over empty fields", func(t *testing.T) {
		_, err := f.svc.Update(ctx, 999, domain.ProjectInput{})
		assert.Equal(t, apperr.KindNotFound, kindOf(t, err).Kind)
	})

	t.Run("empty fields on a known project", func(t *testing.T) {
		_, err := f.svc.Update(ctx, apollo.ID, domain.ProjectInput{Name: "Apollo"})
		e := kindOf(t, err)
		assert.Equal(t, apperr.KindValidation, e.Kind)
		assert.Equal(t, []string{"description", "customerId"}, e.EmptyFields)
	})

	t.Run("unknown project is not found", func(t *testing.T) {
		_, err := f.svc.Update(ctx, 999, domain.ProjectInput{Name: "Mercury", Description: "first", CustomerID: f.acme})
		e := kindOf(t, err)
		assert.Equal(t, apperr.KindNotFound, e.Kind)
		assert.Equal(t, MsgNotFound, e.Message)
	})
}

func TestProjectService_GetListDelete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	items, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	p, err := f.svc.Create(ctx, domain.ProjectInput{Name: "Apollo", Description: "moon", CustomerID: f.acme})
	require.NoError(t, err)

	got, err := f.svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	require.NoError(t, f.svc.Delete(ctx, p.ID))

	_, err = f.svc.Get(ctx, p.ID)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err).Kind)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, f.svc.Delete(ctx, p.ID)).Kind)
}

// racingRepo passes every pre-check and then loses the insert to a
// concurrent writer.
type racingRepo struct {
	Repository
}

func (racingRepo) CustomerExists(context.Context, int64) (bool, error) { return true, nil }

func (racingRepo) NameTaken(context.Context, string, int64) (bool, error) { return false, nil }

func (racingRepo) Create(context.Context, domain.ProjectInput) (*domain.Project, error) {
	return nil, domain.ErrNameTaken
}

func TestProjectService_ConstraintRace(t *testing.T) {
	svc := NewProjectService(racingRepo{})

	_, err := svc.Create(context.Background(), domain.ProjectInput{Name: "Apollo", Description: "moon", CustomerID: 1})
	e := kindOf(t, err)
	assert.Equal(t, apperr.KindConflict, e.Kind)
	assert.Equal(t, MsgNameExists, e.Message)
}
