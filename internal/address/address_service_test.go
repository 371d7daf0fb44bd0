package address_test

import (
	"context"
	"errors"
	"testing"

	"go-jewel-storefront/internal/address"
	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo behaves like the backend: one default per customer.
type fakeRepo struct {
	rows      []address.Address
	updates   []address.Request
	createErr error
}

func (f *fakeRepo) List(context.Context, string) ([]address.Address, error) {
	out := make([]address.Address, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeRepo) Create(_ context.Context, custID string, req address.Request) (*address.Address, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a := address.Address{ID: "new", CustID: custID, Address: req.Address, City: req.City, PinCode: req.PinCode}
	f.rows = append(f.rows, a)
	return &a, nil
}

func (f *fakeRepo) Update(_ context.Context, _ string, id string, req address.Request) (*address.Address, error) {
	f.updates = append(f.updates, req)
	for i := range f.rows {
		if req.IsDefault {
			f.rows[i].IsDefault = f.rows[i].ID == id
		}
		if f.rows[i].ID == id {
			f.rows[i].Address = req.Address
		}
	}
	return nil, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func loggedIn(t *testing.T) *session.Local {
	t.Helper()
	local := session.NewLocal(session.NewMemoryStore(), "b1")
	require.NoError(t, local.SaveSession(context.Background(), "tok", session.User{CustID: "C1", Role: "customer"}))
	return local
}

func validRequest() address.Request {
	return address.Request{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 MG Road",
		City:    "Pune",
		State:   "MH",
		PinCode: "411001",
	}
}

func TestAddressService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success_relists", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := address.NewService(repo, nil)

		res, err := svc.Create(ctx, loggedIn(t), validRequest())
		require.NoError(t, err)
		require.Len(t, res.Addresses, 1)
		assert.Equal(t, notify.CategoryAdded, res.Notices[0].Category)
	})

	t.Run("bad_pin_never_calls_backend", func(t *testing.T) {
		repo := &fakeRepo{createErr: errors.New("must not be called")}
		svc := address.NewService(repo, nil)

		req := validRequest()
		req.PinCode = "4110"
		res, err := svc.Create(ctx, loggedIn(t), req)
		assert.ErrorIs(t, err, address.ErrInvalidAddress)
		assert.Equal(t, "PIN code must be exactly 6 digits", res.Notices[0].Message)
	})

	t.Run("requires_session", func(t *testing.T) {
		svc := address.NewService(&fakeRepo{}, nil)
		_, err := svc.Create(ctx, session.NewLocal(session.NewMemoryStore(), "g"), validRequest())
		assert.ErrorIs(t, err, apperror.ErrSessionRequired)
	})
}

func TestAddressService_SetDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("moves_default", func(t *testing.T) {
		repo := &fakeRepo{rows: []address.Address{
			{ID: "a1", Address: "Home", IsDefault: true},
			{ID: "a2", Address: "Office"},
		}}
		svc := address.NewService(repo, nil)

		res, err := svc.SetDefault(ctx, loggedIn(t), "a2")
		require.NoError(t, err)
		require.NotNil(t, res.Default)
		assert.Equal(t, "a2", res.Default.ID)
		assert.False(t, res.Addresses[0].IsDefault)

		require.Len(t, repo.updates, 1)
		assert.True(t, repo.updates[0].IsDefault)
		assert.Equal(t, "Office", repo.updates[0].Address)
	})

	t.Run("already_default_is_noop", func(t *testing.T) {
		repo := &fakeRepo{rows: []address.Address{{ID: "a1", IsDefault: true}}}
		svc := address.NewService(repo, nil)

		_, err := svc.SetDefault(ctx, loggedIn(t), "a1")
		require.NoError(t, err)
		assert.Empty(t, repo.updates)
	})

	t.Run("unknown_id", func(t *testing.T) {
		svc := address.NewService(&fakeRepo{}, nil)
		_, err := svc.SetDefault(ctx, loggedIn(t), "zz")
		assert.ErrorIs(t, err, address.ErrAddressNotFound)
	})
}

func TestAddressService_Delete(t *testing.T) {
	repo := &fakeRepo{rows: []address.Address{{ID: "a1"}, {ID: "a2"}}}
	svc := address.NewService(repo, nil)

	res, err := svc.Delete(context.Background(), loggedIn(t), "a1")
	require.NoError(t, err)
	require.Len(t, res.Addresses, 1)
	assert.Equal(t, "a2", res.Addresses[0].ID)
	assert.Equal(t, notify.SeverityInfo, res.Notices[0].Severity)
}
