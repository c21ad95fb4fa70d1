package model

import "time"

// CaixaStatus of a cash register session.
type CaixaStatus string

const (
	CaixaAberto  CaixaStatus = "ABERTO"
	CaixaFechado CaixaStatus = "FECHADO"
)

// TipoMovimento classifies manual drawer adjustments.
type TipoMovimento string

const (
	MovimentoReforco TipoMovimento = "REFORCO"
	MovimentoSangria TipoMovimento = "SANGRIA"
)

// Caixa is a per-shift cash register session. At most one Caixa is ABERTO
// at any instant in the whole system.
type Caixa struct {
	ID           string
	Status       CaixaStatus
	AbertoPorID  string
	AbertoEm     time.Time
	FechadoEm    *time.Time
	ValorInicial int // cents
	ValorFinal   *int
	Movimentos   []MovimentoCaixa
}

// MovimentoCaixa is an immutable entry in the drawer ledger. Movements are
// never modified or deleted once appended.
type MovimentoCaixa struct {
	ID        string
	UsuarioID string
	Tipo      TipoMovimento
	Valor     int // cents, strictly positive
	Motivo    string
	CriadoEm  time.Time
}
