package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCaixaRequest struct {
	ValorInicial *int `form:"valorInicial" validate:"required,gte=0"`
}

type MovimentoCaixaRequest struct {
	Tipo   string `form:"type"   validate:"required,oneof=SANGRIA REFORCO"`
	Valor  *int   `form:"valor"  validate:"required,gt=0"`
	Motivo string `form:"motivo"`
}

type FecharCaixaRequest struct {
	ValorFinal *int `form:"valorFinal" validate:"required,gte=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CaixaResponse struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	AbertoEm     string  `json:"abertoEm"`
	FechadoEm    *string `json:"fechadoEm"`
	ValorInicial int     `json:"valorInicial"`
	ValorFinal   *int    `json:"valorFinal"`
}

// FechamentoCaixaResponse is the reconciliation result returned on close.
// Diff is informational; it never gates the close.
type FechamentoCaixaResponse struct {
	Cash     CaixaResponse `json:"cash"`
	Expected int           `json:"expected"`
	Diff     int           `json:"diff"`
}
