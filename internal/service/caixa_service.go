package service

import (
	"context"
	"time"

	"barclube/internal/apierror"
	"barclube/internal/dto"
	"barclube/internal/model"
	"barclube/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CaixaService interface {
	// Aberto returns the current open register, or nil when none is open.
	Aberto(ctx context.Context) (*dto.CaixaResponse, error)
	Abrir(ctx context.Context, usuarioID string, valorInicial int) (*dto.CaixaResponse, error)
	RegistrarMovimento(ctx context.Context, usuarioID string, tipo model.TipoMovimento, valor int, motivo string) error
	Fechar(ctx context.Context, usuarioID string, valorFinal int) (*dto.FechamentoCaixaResponse, error)
}

type caixaService struct {
	st *store.Store
}

func NewCaixaService(st *store.Store) CaixaService {
	return &caixaService{st: st}
}

func (s *caixaService) Aberto(_ context.Context) (*dto.CaixaResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if s.st.CaixaAberto == nil {
		return nil, nil
	}
	view := caixaView(s.st.CaixaAberto)
	return &view, nil
}

func (s *caixaService) Abrir(_ context.Context, usuarioID string, valorInicial int) (*dto.CaixaResponse, error) {
	if valorInicial < 0 {
		return nil, apierror.ErrValidation
	}

	s.st.Lock()
	defer s.st.Unlock()

	if s.st.CaixaAberto != nil {
		return nil, apierror.ErrCaixaJaAberto
	}

	c := &model.Caixa{
		ID:           uuid.NewString(),
		Status:       model.CaixaAberto,
		AbertoPorID:  usuarioID,
		AbertoEm:     time.Now().UTC(),
		ValorInicial: valorInicial,
		Movimentos:   []model.MovimentoCaixa{},
	}
	s.st.CaixaAberto = c

	log.Info().Str("caixa_id", c.ID).Int("valor_inicial", valorInicial).Msg("caixa aberto")

	view := caixaView(c)
	return &view, nil
}

// RegistrarMovimento appends a REFORCO or SANGRIA entry to the open
// register's ledger. Entries are immutable once appended.
func (s *caixaService) RegistrarMovimento(_ context.Context, usuarioID string, tipo model.TipoMovimento, valor int, motivo string) error {
	if (tipo != model.MovimentoReforco && tipo != model.MovimentoSangria) || valor <= 0 {
		return apierror.ErrValidation
	}

	s.st.Lock()
	defer s.st.Unlock()

	if s.st.CaixaAberto == nil {
		return apierror.ErrCaixaNaoAberto
	}

	s.st.CaixaAberto.Movimentos = append(s.st.CaixaAberto.Movimentos, model.MovimentoCaixa{
		ID:        uuid.NewString(),
		UsuarioID: usuarioID,
		Tipo:      tipo,
		Valor:     valor,
		Motivo:    motivo,
		CriadoEm:  time.Now().UTC(),
	})
	return nil
}

// Fechar reconciles and retires the open register.
//
// Payments are attributed to the session by order close time: every payment
// on a comanda whose fechadoEm is not earlier than the session's abertoEm
// counts, payments on still-open comandas do not. Money enters the drawer
// when the comanda settles, not when individual payments are keyed in.
//
//	expected = valorInicial + pagamentos na sessão + saldo dos movimentos
//	diff     = valorFinal − expected (informational, never blocks the close)
func (s *caixaService) Fechar(_ context.Context, usuarioID string, valorFinal int) (*dto.FechamentoCaixaResponse, error) {
	if valorFinal < 0 {
		return nil, apierror.ErrValidation
	}

	s.st.Lock()
	defer s.st.Unlock()

	caixa := s.st.CaixaAberto
	if caixa == nil {
		return nil, apierror.ErrCaixaNaoAberto
	}

	pagamentos := 0
	for _, c := range s.st.Comandas {
		if c.FechadoEm == nil || c.FechadoEm.Before(caixa.AbertoEm) {
			continue
		}
		for _, p := range c.Pagamentos {
			pagamentos += p.Valor
		}
	}

	movimentos := 0
	for _, m := range caixa.Movimentos {
		if m.Tipo == model.MovimentoReforco {
			movimentos += m.Valor
		} else {
			movimentos -= m.Valor
		}
	}

	expected := caixa.ValorInicial + pagamentos + movimentos
	diff := valorFinal - expected

	now := time.Now().UTC()
	caixa.Status = model.CaixaFechado
	caixa.FechadoEm = &now
	caixa.ValorFinal = &valorFinal
	s.st.CaixaAberto = nil

	log.Info().
		Str("caixa_id", caixa.ID).
		Int("expected", expected).
		Int("diff", diff).
		Msg("caixa fechado")

	return &dto.FechamentoCaixaResponse{
		Cash:     caixaView(caixa),
		Expected: expected,
		Diff:     diff,
	}, nil
}
