package service

import (
	"context"
	"sort"
	"strings"

	"barclube/internal/apierror"
	"barclube/internal/dto"
	"barclube/internal/model"
	"barclube/internal/store"

	"github.com/google/uuid"
)

type MesaService interface {
	Listar(ctx context.Context) ([]dto.MesaResponse, error)
	Criar(ctx context.Context, nomeOuNumero string) (*dto.MesaResponse, error)
}

type mesaService struct {
	st *store.Store
}

func NewMesaService(st *store.Store) MesaService {
	return &mesaService{st: st}
}

// Listar returns every mesa sorted by label, case-sensitively.
func (s *mesaService) Listar(_ context.Context) ([]dto.MesaResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	resp := make([]dto.MesaResponse, 0, len(s.st.Mesas))
	for _, m := range s.st.Mesas {
		resp = append(resp, mesaView(m))
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].NomeOuNumero < resp[j].NomeOuNumero })
	return resp, nil
}

// Criar adds a mesa. Labels are unique case-insensitively; new mesas start
// LIVRE.
func (s *mesaService) Criar(_ context.Context, nomeOuNumero string) (*dto.MesaResponse, error) {
	nomeOuNumero = strings.TrimSpace(nomeOuNumero)
	if nomeOuNumero == "" {
		return nil, apierror.ErrValidation
	}

	s.st.Lock()
	defer s.st.Unlock()

	for _, m := range s.st.Mesas {
		if strings.EqualFold(m.NomeOuNumero, nomeOuNumero) {
			return nil, apierror.ErrMesaJaExiste
		}
	}

	m := &model.Mesa{
		ID:           uuid.NewString(),
		NomeOuNumero: nomeOuNumero,
		Status:       model.MesaLivre,
	}
	s.st.Mesas[m.ID] = m

	view := mesaView(m)
	return &view, nil
}
