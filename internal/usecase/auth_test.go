//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/pkg/errs"
	"storefront/internal/usecase"
	"storefront/internal/usecase/shared"
)

type stubAuthGateway struct {
	user      *shared.User
	err       error
	logoutErr error
}

func (g *stubAuthGateway) Login(context.Context, string, string) (*shared.User, error) {
	return g.user, g.err
}

func (g *stubAuthGateway) Register(context.Context, usecase.RegisterInput) (*shared.User, error) {
	return g.user, g.err
}

func (g *stubAuthGateway) Me(context.Context) (*shared.User, error) {
	return g.user, g.err
}

func (g *stubAuthGateway) Logout(context.Context) error {
	return g.logoutErr
}

func TestAuthFetchMe(t *testing.T) {
	t.Run("a valid session caches the profile", func(t *testing.T) {
		gw := &stubAuthGateway{user: &shared.User{ID: "u1", Username: "mona"}}
		svc := usecase.NewAuthService(gw, testLogger())

		user := svc.FetchMe(context.Background())

		require.NotNil(t, user)
		assert.Equal(t, "mona", svc.CurrentUser().Username)
	})

	t.Run("a failed lookup means anonymous, not an error", func(t *testing.T) {
		gw := &stubAuthGateway{err: errs.ErrUnauthorized}
		svc := usecase.NewAuthService(gw, testLogger())

		user := svc.FetchMe(context.Background())

		assert.Nil(t, user)
		assert.Nil(t, svc.CurrentUser())
	})
}

func TestAuthLogin(t *testing.T) {
	t.Run("success caches the profile", func(t *testing.T) {
		gw := &stubAuthGateway{user: &shared.User{ID: "u1", Username: "mona"}}
		svc := usecase.NewAuthService(gw, testLogger())

		user, err := svc.Login(context.Background(), "mona", "secret")

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "u1", svc.CurrentUser().ID)
	})

	t.Run("failure leaves the current user untouched", func(t *testing.T) {
		gw := &stubAuthGateway{user: &shared.User{ID: "u1"}}
		svc := usecase.NewAuthService(gw, testLogger())
		svc.FetchMe(context.Background())

		gw.user = nil
		gw.err = errs.ErrUnauthorized
		_, err := svc.Login(context.Background(), "mona", "wrong")

		require.Error(t, err)
		require.NotNil(t, svc.CurrentUser())
		assert.Equal(t, "u1", svc.CurrentUser().ID)
	})
}

func TestAuthLogout(t *testing.T) {
	t.Run("the local profile clears even when the server call fails", func(t *testing.T) {
		gw := &stubAuthGateway{user: &shared.User{ID: "u1"}, logoutErr: errs.ErrAPIFailure}
		svc := usecase.NewAuthService(gw, testLogger())
		svc.FetchMe(context.Background())
		require.NotNil(t, svc.CurrentUser())

		svc.Logout(context.Background())

		assert.Nil(t, svc.CurrentUser())
	})
}
