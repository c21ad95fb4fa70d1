package service_test

import (
	"testing"

	"barclube/internal/apierror"
	"barclube/internal/dto"
	"barclube/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginComCredenciaisValidas(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewAuthService(st)

	resp, err := svc.Login(ctx(), dto.LoginRequest{Email: "admin@bar.local", Senha: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Len(t, resp.Token, 43) // 32 bytes, base64url, no padding
	assert.Equal(t, "Admin", resp.User.Nome)
	assert.Equal(t, "admin@bar.local", resp.User.Email)
	assert.Equal(t, "ADMIN", resp.User.Papel)
}

func TestLoginNormalizaEmail(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewAuthService(st)

	resp, err := svc.Login(ctx(), dto.LoginRequest{Email: "  ADMIN@Bar.Local ", Senha: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginFalhasColapsamEmUmErro(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewAuthService(st)

	// Wrong password
	_, err := svc.Login(ctx(), dto.LoginRequest{Email: "admin@bar.local", Senha: "wrong"})
	assert.ErrorIs(t, err, apierror.ErrInvalidCredentials)

	// Unknown email
	_, err = svc.Login(ctx(), dto.LoginRequest{Email: "ghost@bar.local", Senha: "admin123"})
	assert.ErrorIs(t, err, apierror.ErrInvalidCredentials)

	// Inactive user
	st.Lock()
	st.UsuariosPorEmail["admin@bar.local"].Ativo = false
	st.Unlock()
	_, err = svc.Login(ctx(), dto.LoginRequest{Email: "admin@bar.local", Senha: "admin123"})
	assert.ErrorIs(t, err, apierror.ErrInvalidCredentials)
}

func TestAuthenticateResolveToken(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewAuthService(st)

	resp, err := svc.Login(ctx(), dto.LoginRequest{Email: "admin@bar.local", Senha: "admin123"})
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, u.ID)

	_, err = svc.Authenticate(ctx(), "not-a-token")
	assert.ErrorIs(t, err, apierror.ErrUnauthorized)
}

func TestLoginsRepetidosMantemTokensAnteriores(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewAuthService(st)

	first, err := svc.Login(ctx(), dto.LoginRequest{Email: "admin@bar.local", Senha: "admin123"})
	require.NoError(t, err)
	second, err := svc.Login(ctx(), dto.LoginRequest{Email: "admin@bar.local", Senha: "admin123"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	// No single-session constraint: both remain valid.
	_, err = svc.Authenticate(ctx(), first.Token)
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx(), second.Token)
	assert.NoError(t, err)
}
