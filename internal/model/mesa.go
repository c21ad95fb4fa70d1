package model

// MesaStatus is the two-state availability flag of a table.
type MesaStatus string

const (
	MesaLivre   MesaStatus = "LIVRE"
	MesaOcupada MesaStatus = "OCUPADO"
)

// Mesa is a physical table. Status transitions are driven exclusively by
// the comanda engine: LIVRE→OCUPADO on open (tipo MESA), OCUPADO→LIVRE on
// close. Tables are never deleted.
type Mesa struct {
	ID           string
	NomeOuNumero string // unique case-insensitively among mesas
	Status       MesaStatus
}
