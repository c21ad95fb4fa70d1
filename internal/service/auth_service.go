package service

import (
	"context"
	"strings"

	"barclube/internal/apierror"
	"barclube/internal/auth"
	"barclube/internal/dto"
	"barclube/internal/model"
	"barclube/internal/store"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Authenticate resolves an opaque bearer token to its user.
	Authenticate(ctx context.Context, token string) (*model.Usuario, error)
}

type authService struct {
	st *store.Store
}

func NewAuthService(st *store.Store) AuthService {
	return &authService{st: st}
}

// Login verifies credentials and mints a fresh token. Unknown email,
// inactive user and wrong password collapse into one error — no account
// enumeration. The PBKDF2 derivation (120k iterations) runs with the store
// lock released; only the map reads and the token insert hold it.
func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.st.Lock()
	u := s.st.UsuariosPorEmail[email]
	var (
		salt, hash []byte
		view       dto.UsuarioResponse
		userID     string
		ativo      bool
	)
	if u != nil {
		salt, hash, ativo = u.Salt, u.SenhaHash, u.Ativo
		userID = u.ID
		view = usuarioView(u)
	}
	s.st.Unlock()

	if u == nil || !ativo {
		return nil, apierror.ErrInvalidCredentials
	}
	if !auth.VerificarSenha(req.Senha, salt, hash) {
		return nil, apierror.ErrInvalidCredentials
	}

	token, err := auth.NewToken()
	if err != nil {
		return nil, err
	}

	s.st.Lock()
	s.st.Tokens[token] = userID
	s.st.Unlock()

	return &dto.LoginResponse{Token: token, User: view}, nil
}

func (s *authService) Authenticate(_ context.Context, token string) (*model.Usuario, error) {
	s.st.Lock()
	defer s.st.Unlock()

	u := s.st.UsuarioPorToken(token)
	if u == nil {
		return nil, apierror.ErrUnauthorized
	}
	return u, nil
}
