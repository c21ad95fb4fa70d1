package model

// Produto is a catalog entry. Preco is in integer cents. When
// ControlaEstoque is false both stock fields are forced to zero on
// creation. EstoqueAtual is the only field that ever mutates, and only by
// the comanda engine when an item is appended.
type Produto struct {
	ID              string
	Nome            string
	Categoria       string
	Preco           int // cents
	ControlaEstoque bool
	EstoqueAtual    int
	EstoqueMinimo   int
	Ativo           bool
}
