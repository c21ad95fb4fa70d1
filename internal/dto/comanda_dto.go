package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AbrirComandaRequest has no validator tags on purpose: the engine owns the
// identification checks and their error codes (spec-ordered preconditions).
type AbrirComandaRequest struct {
	TipoIdentificacao string `form:"tipoIdentificacao"`
	MesaID            string `form:"tableId"`
	NomeCliente       string `form:"nomeCliente"`
}

type AdicionarItemRequest struct {
	ProdutoID  string `form:"productId"`
	Quantidade *int   `form:"quantidade"`
	Observacao string `form:"observacao"`
}

type RegistrarPagamentoRequest struct {
	Metodo string `form:"metodo"`
	Valor  *int   `form:"valor"`
}

// ComandaFiltro holds the conjunctive list filters; unknown values simply
// match nothing.
type ComandaFiltro struct {
	Status  string `form:"status"`
	MesaID  string `form:"tableId"`
	Cliente string `form:"cliente"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemComandaResponse struct {
	ID            string             `json:"id"`
	Quantidade    int                `json:"quantidade"`
	Observacao    *string            `json:"observacao"`
	PrecoUnitario int                `json:"precoUnitario"`
	PrecoTotal    int                `json:"precoTotal"`
	CriadoEm      string             `json:"criadoEm"`
	CanceladoEm   *string            `json:"canceladoEm"` // always null, no cancellation in scope
	Product       ProdutoRefResponse `json:"product"`
}

type PagamentoResponse struct {
	ID     string `json:"id"`
	Metodo string `json:"metodo"`
	Valor  int    `json:"valor"`
	PagoEm string `json:"pagoEm"`
}

type ComandaResumoResponse struct {
	ID                string           `json:"id"`
	Status            string           `json:"status"`
	TipoIdentificacao string           `json:"tipoIdentificacao"`
	MesaID            *string          `json:"tableId"`
	NomeCliente       *string          `json:"nomeCliente"`
	AbertoEm          string           `json:"abertoEm"`
	FechadoEm         *string          `json:"fechadoEm"`
	ValorTotal        int              `json:"valorTotal"`
	Mesa              *MesaRefResponse `json:"table"`
}

type ComandaResponse struct {
	ID                string                `json:"id"`
	Status            string                `json:"status"`
	TipoIdentificacao string                `json:"tipoIdentificacao"`
	NomeCliente       *string               `json:"nomeCliente"`
	Mesa              *MesaRefResponse      `json:"table"`
	ValorTotal        int                   `json:"valorTotal"`
	Itens             []ItemComandaResponse `json:"itens"`
	Pagamentos        []PagamentoResponse   `json:"pagamentos"`
}
