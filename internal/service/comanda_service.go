package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"barclube/internal/apierror"
	"barclube/internal/dto"
	"barclube/internal/model"
	"barclube/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ComandaService interface {
	Abrir(ctx context.Context, usuarioID string, req dto.AbrirComandaRequest) (*dto.ComandaResponse, error)
	Listar(ctx context.Context, filtro dto.ComandaFiltro) ([]dto.ComandaResumoResponse, error)
	Obter(ctx context.Context, comandaID string) (*dto.ComandaResponse, error)
	AdicionarItem(ctx context.Context, usuarioID, comandaID string, req dto.AdicionarItemRequest) (*dto.ItemComandaResponse, error)
	RegistrarPagamento(ctx context.Context, usuarioID, comandaID string, req dto.RegistrarPagamentoRequest) (*dto.PagamentoResponse, error)
	Fechar(ctx context.Context, usuarioID, comandaID string) (*dto.ComandaResponse, error)
}

type comandaService struct {
	st *store.Store
}

func NewComandaService(st *store.Store) ComandaService {
	return &comandaService{st: st}
}

// Abrir creates a comanda anchored to a free mesa or to a named customer.
// Preconditions, in order: open caixa, valid identification type, then the
// type-specific checks. A MESA comanda occupies its table atomically with
// the creation.
func (s *comandaService) Abrir(_ context.Context, usuarioID string, req dto.AbrirComandaRequest) (*dto.ComandaResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if s.st.CaixaAberto == nil {
		return nil, apierror.ErrCaixaDeveEstarAberto
	}

	tipo := model.TipoIdentificacao(strings.TrimSpace(req.TipoIdentificacao))
	if tipo != model.IdentificacaoMesa && tipo != model.IdentificacaoCliente {
		return nil, apierror.ErrIdentificacaoObrigatoria
	}

	c := &model.Comanda{
		ID:          uuid.NewString(),
		Tipo:        tipo,
		Status:      model.ComandaAberta,
		AbertoPorID: usuarioID,
		AbertoEm:    time.Now().UTC(),
		Itens:       []model.ItemComanda{},
		Pagamentos:  []model.Pagamento{},
	}

	switch tipo {
	case model.IdentificacaoMesa:
		mesaID := strings.TrimSpace(req.MesaID)
		if mesaID == "" {
			return nil, apierror.ErrIdentificacaoObrigatoria
		}
		mesa, ok := s.st.Mesas[mesaID]
		if !ok {
			return nil, apierror.ErrMesaNotFound
		}
		if mesa.Status != model.MesaLivre {
			return nil, apierror.ErrMesaIndisponivel
		}
		mesa.Status = model.MesaOcupada
		c.MesaID = &mesa.ID

	case model.IdentificacaoCliente:
		nome := strings.TrimSpace(req.NomeCliente)
		if nome == "" {
			return nil, apierror.ErrIdentificacaoObrigatoria
		}
		c.NomeCliente = &nome
	}

	s.st.Comandas[c.ID] = c
	return comandaView(s.st, c), nil
}

// Listar returns summaries sorted by opening time, newest first. Filters
// are conjunctive; cliente is a case-insensitive substring match, and
// comandas without a customer name never match a non-empty substring.
func (s *comandaService) Listar(_ context.Context, filtro dto.ComandaFiltro) ([]dto.ComandaResumoResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	comandas := make([]*model.Comanda, 0, len(s.st.Comandas))
	for _, c := range s.st.Comandas {
		comandas = append(comandas, c)
	}
	sort.Slice(comandas, func(i, j int) bool { return comandas[i].AbertoEm.After(comandas[j].AbertoEm) })

	resp := make([]dto.ComandaResumoResponse, 0, len(comandas))
	for _, c := range comandas {
		if filtro.Status != "" && filtro.Status != string(c.Status) {
			continue
		}
		if filtro.MesaID != "" && (c.MesaID == nil || *c.MesaID != filtro.MesaID) {
			continue
		}
		if filtro.Cliente != "" {
			nome := ""
			if c.NomeCliente != nil {
				nome = *c.NomeCliente
			}
			if !strings.Contains(strings.ToLower(nome), strings.ToLower(filtro.Cliente)) {
				continue
			}
		}
		resp = append(resp, comandaResumoView(s.st, c))
	}
	return resp, nil
}

func (s *comandaService) Obter(_ context.Context, comandaID string) (*dto.ComandaResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	c, ok := s.st.Comandas[comandaID]
	if !ok {
		return nil, apierror.ErrComandaNotFound
	}
	return comandaView(s.st, c), nil
}

// AdicionarItem appends a line item, deducting stock for stock-controlled
// products. The unit price is snapshotted from the catalog at this moment
// and never revisited. First item moves the comanda to EM_ANDAMENTO.
func (s *comandaService) AdicionarItem(_ context.Context, _ string, comandaID string, req dto.AdicionarItemRequest) (*dto.ItemComandaResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	c, ok := s.st.Comandas[comandaID]
	if !ok {
		return nil, apierror.ErrComandaNotFound
	}
	if c.Status == model.ComandaFechada {
		return nil, apierror.ErrComandaJaFechada
	}

	quantidade := 0
	if req.Quantidade != nil {
		quantidade = *req.Quantidade
	}
	if quantidade <= 0 {
		return nil, apierror.ErrQuantidadeInvalida
	}

	p, ok := s.st.Produtos[strings.TrimSpace(req.ProdutoID)]
	if !ok || !p.Ativo {
		return nil, apierror.ErrProdutoNotFound
	}

	if p.ControlaEstoque {
		if p.EstoqueAtual < quantidade {
			return nil, apierror.ErrEstoqueInsuficiente
		}
		p.EstoqueAtual -= quantidade
	}

	var observacao *string
	if obs := strings.TrimSpace(req.Observacao); obs != "" {
		observacao = &obs
	}

	item := model.ItemComanda{
		ID:            uuid.NewString(),
		ProdutoID:     p.ID,
		Quantidade:    quantidade,
		Observacao:    observacao,
		PrecoUnitario: p.Preco,
		PrecoTotal:    p.Preco * quantidade,
		CriadoEm:      time.Now().UTC(),
	}
	c.Itens = append(c.Itens, item)
	c.ValorTotal += item.PrecoTotal
	if c.Status != model.ComandaEmAndamento {
		c.Status = model.ComandaEmAndamento
	}

	view := itemView(s.st, item)
	return &view, nil
}

// RegistrarPagamento appends a payment. Overpayment is allowed — the excess
// is informational, there is no change given. No status change.
func (s *comandaService) RegistrarPagamento(_ context.Context, _ string, comandaID string, req dto.RegistrarPagamentoRequest) (*dto.PagamentoResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	c, ok := s.st.Comandas[comandaID]
	if !ok {
		return nil, apierror.ErrComandaNotFound
	}
	if c.Status == model.ComandaFechada {
		return nil, apierror.ErrComandaJaFechada
	}

	metodo := model.MetodoPagamento(strings.TrimSpace(req.Metodo))
	switch metodo {
	case model.PagamentoCredito, model.PagamentoDebito, model.PagamentoPix, model.PagamentoDinheiro:
	default:
		return nil, apierror.ErrValidation
	}

	valor := 0
	if req.Valor != nil {
		valor = *req.Valor
	}
	if valor <= 0 {
		return nil, apierror.ErrValorInvalido
	}

	pagamento := model.Pagamento{
		ID:     uuid.NewString(),
		Metodo: metodo,
		Valor:  valor,
		PagoEm: time.Now().UTC(),
	}
	c.Pagamentos = append(c.Pagamentos, pagamento)

	view := pagamentoView(pagamento)
	return &view, nil
}

// Fechar settles a comanda: it needs an open caixa, at least one item and
// payments covering the running total. A MESA comanda releases its table;
// an already-free table is tolerated.
func (s *comandaService) Fechar(_ context.Context, _ string, comandaID string) (*dto.ComandaResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if s.st.CaixaAberto == nil {
		return nil, apierror.ErrCaixaDeveEstarAberto
	}

	c, ok := s.st.Comandas[comandaID]
	if !ok {
		return nil, apierror.ErrComandaNotFound
	}
	if c.Status == model.ComandaFechada {
		return nil, apierror.ErrComandaJaFechada
	}
	if len(c.Itens) == 0 {
		return nil, apierror.ErrComandaSemItens
	}

	pago := 0
	for _, p := range c.Pagamentos {
		pago += p.Valor
	}
	if pago < c.ValorTotal {
		return nil, apierror.ErrPagamentoInsuficiente
	}

	now := time.Now().UTC()
	c.Status = model.ComandaFechada
	c.FechadoEm = &now
	if c.MesaID != nil {
		if mesa, ok := s.st.Mesas[*c.MesaID]; ok {
			mesa.Status = model.MesaLivre
		}
	}

	log.Info().
		Str("comanda_id", c.ID).
		Int("valor_total", c.ValorTotal).
		Int("pago", pago).
		Msg("comanda fechada")

	return comandaView(s.st, c), nil
}
