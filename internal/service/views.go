package service

import (
	"time"

	"barclube/internal/dto"
	"barclube/internal/model"
	"barclube/internal/store"
)

// View builders translate domain aggregates into the wire shapes. All of
// them expect the store lock to be held by the calling operation, because
// comanda views dereference mesas and produtos.

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func fmtTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fmtTime(*t)
	return &s
}

func usuarioView(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{ID: u.ID, Nome: u.Nome, Email: u.Email, Papel: u.Papel}
}

func mesaView(m *model.Mesa) dto.MesaResponse {
	return dto.MesaResponse{ID: m.ID, NomeOuNumero: m.NomeOuNumero, Status: string(m.Status)}
}

func mesaRef(st *store.Store, mesaID *string) *dto.MesaRefResponse {
	if mesaID == nil {
		return nil
	}
	m, ok := st.Mesas[*mesaID]
	if !ok {
		return nil
	}
	return &dto.MesaRefResponse{ID: m.ID, NomeOuNumero: m.NomeOuNumero}
}

func produtoView(p *model.Produto) dto.ProdutoResponse {
	resp := dto.ProdutoResponse{
		ID:              p.ID,
		Nome:            p.Nome,
		Categoria:       p.Categoria,
		Preco:           p.Preco,
		ControlaEstoque: p.ControlaEstoque,
		Ativo:           p.Ativo,
	}
	if p.ControlaEstoque {
		resp.Estoque = &dto.EstoqueResponse{
			QuantidadeAtual:  p.EstoqueAtual,
			QuantidadeMinima: p.EstoqueMinimo,
		}
	}
	return resp
}

func caixaView(c *model.Caixa) dto.CaixaResponse {
	return dto.CaixaResponse{
		ID:           c.ID,
		Status:       string(c.Status),
		AbertoEm:     fmtTime(c.AbertoEm),
		FechadoEm:    fmtTimePtr(c.FechadoEm),
		ValorInicial: c.ValorInicial,
		ValorFinal:   c.ValorFinal,
	}
}

func itemView(st *store.Store, it model.ItemComanda) dto.ItemComandaResponse {
	ref := dto.ProdutoRefResponse{ID: it.ProdutoID, Nome: "?", Categoria: "?"}
	if p, ok := st.Produtos[it.ProdutoID]; ok {
		ref = dto.ProdutoRefResponse{ID: p.ID, Nome: p.Nome, Categoria: p.Categoria}
	}
	return dto.ItemComandaResponse{
		ID:            it.ID,
		Quantidade:    it.Quantidade,
		Observacao:    it.Observacao,
		PrecoUnitario: it.PrecoUnitario,
		PrecoTotal:    it.PrecoTotal,
		CriadoEm:      fmtTime(it.CriadoEm),
		Product:       ref,
	}
}

func pagamentoView(p model.Pagamento) dto.PagamentoResponse {
	return dto.PagamentoResponse{
		ID:     p.ID,
		Metodo: string(p.Metodo),
		Valor:  p.Valor,
		PagoEm: fmtTime(p.PagoEm),
	}
}

func comandaView(st *store.Store, c *model.Comanda) *dto.ComandaResponse {
	itens := make([]dto.ItemComandaResponse, 0, len(c.Itens))
	for _, it := range c.Itens {
		itens = append(itens, itemView(st, it))
	}
	pagamentos := make([]dto.PagamentoResponse, 0, len(c.Pagamentos))
	for _, p := range c.Pagamentos {
		pagamentos = append(pagamentos, pagamentoView(p))
	}
	return &dto.ComandaResponse{
		ID:                c.ID,
		Status:            string(c.Status),
		TipoIdentificacao: string(c.Tipo),
		NomeCliente:       c.NomeCliente,
		Mesa:              mesaRef(st, c.MesaID),
		ValorTotal:        c.ValorTotal,
		Itens:             itens,
		Pagamentos:        pagamentos,
	}
}

func comandaResumoView(st *store.Store, c *model.Comanda) dto.ComandaResumoResponse {
	return dto.ComandaResumoResponse{
		ID:                c.ID,
		Status:            string(c.Status),
		TipoIdentificacao: string(c.Tipo),
		MesaID:            c.MesaID,
		NomeCliente:       c.NomeCliente,
		AbertoEm:          fmtTime(c.AbertoEm),
		FechadoEm:         fmtTimePtr(c.FechadoEm),
		ValorTotal:        c.ValorTotal,
		Mesa:              mesaRef(st, c.MesaID),
	}
}
