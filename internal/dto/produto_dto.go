package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome      string `form:"nome"      validate:"required"`
	Categoria string `form:"categoria" validate:"required"`
	Preco     *int   `form:"preco"     validate:"required,gte=0"`
	// ControleDeEstoque arrives as a loose HTML-form bool (true/1/on/yes).
	ControleDeEstoque string `form:"controleDeEstoque"`
	QuantidadeAtual   int    `form:"quantidadeAtual"  validate:"gte=0"`
	QuantidadeMinima  int    `form:"quantidadeMinima" validate:"gte=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EstoqueResponse struct {
	QuantidadeAtual  int `json:"quantidadeAtual"`
	QuantidadeMinima int `json:"quantidadeMinima"`
}

// ProdutoResponse carries Estoque only for stock-controlled products;
// it renders as null otherwise.
type ProdutoResponse struct {
	ID              string           `json:"id"`
	Nome            string           `json:"nome"`
	Categoria       string           `json:"categoria"`
	Preco           int              `json:"preco"`
	ControlaEstoque bool             `json:"controlaEstoque"`
	Ativo           bool             `json:"ativo"`
	Estoque         *EstoqueResponse `json:"estoque"`
}

// ProdutoRefResponse is the embedded product reference inside item views.
type ProdutoRefResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
}
