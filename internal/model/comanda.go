package model

import "time"

// ComandaStatus lifecycle: ABERTO → EM_ANDAMENTO (first item) → FECHADO.
type ComandaStatus string

const (
	ComandaAberta      ComandaStatus = "ABERTO"
	ComandaEmAndamento ComandaStatus = "EM_ANDAMENTO"
	ComandaFechada     ComandaStatus = "FECHADO"
)

// TipoIdentificacao anchors a comanda either to a physical table or to a
// named walk-in customer.
type TipoIdentificacao string

const (
	IdentificacaoMesa    TipoIdentificacao = "MESA"
	IdentificacaoCliente TipoIdentificacao = "CLIENTE"
)

// MetodoPagamento of a payment entry.
type MetodoPagamento string

const (
	PagamentoCredito  MetodoPagamento = "CREDITO"
	PagamentoDebito   MetodoPagamento = "DEBITO"
	PagamentoPix      MetodoPagamento = "PIX"
	PagamentoDinheiro MetodoPagamento = "DINHEIRO"
)

// Comanda is a customer order. Invariant: ValorTotal == Σ item PrecoTotal.
// Exactly one of MesaID / NomeCliente is set, matching Tipo.
type Comanda struct {
	ID          string
	Tipo        TipoIdentificacao
	Status      ComandaStatus
	MesaID      *string
	NomeCliente *string
	AbertoPorID string
	AbertoEm    time.Time
	FechadoEm   *time.Time
	ValorTotal  int // cents
	Itens       []ItemComanda
	Pagamentos  []Pagamento
}

// ItemComanda snapshots the product price at insertion time; later catalog
// mutations never touch it. Append-only, no cancellation.
type ItemComanda struct {
	ID            string
	ProdutoID     string
	Quantidade    int
	Observacao    *string
	PrecoUnitario int // cents, snapshot
	PrecoTotal    int // PrecoUnitario * Quantidade
	CriadoEm      time.Time
}

// Pagamento is an append-only payment entry. Overpayment is allowed; the
// excess is informational.
type Pagamento struct {
	ID     string
	Metodo MetodoPagamento
	Valor  int // cents, strictly positive
	PagoEm time.Time
}
