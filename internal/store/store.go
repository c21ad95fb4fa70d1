// Package store is the in-memory state of the whole system. One
// process-wide mutex guards every aggregate: operations span several of
// them (opening a comanda mutates mesas, adding an item mutates produtos,
// closing the caixa reads every comanda), so a per-aggregate lock could
// not protect the cross-aggregate invariants.
//
// The store itself does not lock; callers (services, auth middleware) hold
// the mutex from their first precondition check to the completion of their
// response payload.
package store

import (
	"sync"

	"barclube/internal/model"
)

// Store holds every aggregate map plus the single open-caixa slot and the
// bearer token registry. All fields are guarded by the embedded mutex.
type Store struct {
	sync.Mutex

	UsuariosPorID    map[string]*model.Usuario
	UsuariosPorEmail map[string]*model.Usuario

	// Tokens maps opaque bearer token -> usuario id. Append-only.
	Tokens map[string]string

	Mesas    map[string]*model.Mesa
	Produtos map[string]*model.Produto
	Comandas map[string]*model.Comanda

	// CaixaAberto is the at-most-one OPEN register slot; nil when closed.
	CaixaAberto *model.Caixa
}

func New() *Store {
	return &Store{
		UsuariosPorID:    make(map[string]*model.Usuario),
		UsuariosPorEmail: make(map[string]*model.Usuario),
		Tokens:           make(map[string]string),
		Mesas:            make(map[string]*model.Mesa),
		Produtos:         make(map[string]*model.Produto),
		Comandas:         make(map[string]*model.Comanda),
	}
}

// UsuarioPorToken resolves a bearer token. Caller must hold the lock.
func (s *Store) UsuarioPorToken(token string) *model.Usuario {
	id, ok := s.Tokens[token]
	if !ok {
		return nil
	}
	return s.UsuariosPorID[id]
}
