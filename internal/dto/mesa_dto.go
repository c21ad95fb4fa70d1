package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarMesaRequest struct {
	NomeOuNumero string `form:"nomeOuNumero" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MesaResponse struct {
	ID           string `json:"id"`
	NomeOuNumero string `json:"nomeOuNumero"`
	Status       string `json:"status"`
}

// MesaRefResponse is the embedded table reference inside comanda views.
type MesaRefResponse struct {
	ID           string `json:"id"`
	NomeOuNumero string `json:"nomeOuNumero"`
}
