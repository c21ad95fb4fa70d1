package store

import (
	"strconv"
	"time"

	"barclube/internal/auth"
	"barclube/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Seed creates the default operator, twelve mesas and a minimal catalog on
// first boot. Idempotent: a second call is a no-op once the admin exists.
func (s *Store) Seed() error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.UsuariosPorEmail["admin@bar.local"]; ok {
		return nil
	}

	salt, err := auth.NewSalt()
	if err != nil {
		return err
	}
	admin := &model.Usuario{
		ID:        uuid.NewString(),
		Nome:      "Admin",
		Email:     "admin@bar.local",
		Papel:     "ADMIN",
		Ativo:     true,
		Salt:      salt,
		SenhaHash: auth.HashSenha("admin123", salt),
		CriadoEm:  time.Now().UTC(),
	}
	s.UsuariosPorID[admin.ID] = admin
	s.UsuariosPorEmail[admin.Email] = admin

	for i := 1; i <= 12; i++ {
		m := &model.Mesa{
			ID:           uuid.NewString(),
			NomeOuNumero: strconv.Itoa(i),
			Status:       model.MesaLivre,
		}
		s.Mesas[m.ID] = m
	}

	seedProdutos := []*model.Produto{
		{ID: uuid.NewString(), Nome: "Cerveja Lata", Categoria: "Bebidas", Preco: 800, ControlaEstoque: true, EstoqueAtual: 100, EstoqueMinimo: 10, Ativo: true},
		{ID: uuid.NewString(), Nome: "Refrigerante", Categoria: "Bebidas", Preco: 600, ControlaEstoque: true, EstoqueAtual: 80, EstoqueMinimo: 10, Ativo: true},
		{ID: uuid.NewString(), Nome: "Porção Batata", Categoria: "Cozinha", Preco: 2500, ControlaEstoque: false, Ativo: true},
	}
	for _, p := range seedProdutos {
		s.Produtos[p.ID] = p
	}

	log.Info().
		Int("mesas", 12).
		Int("produtos", len(seedProdutos)).
		Str("admin", admin.Email).
		Msg("seeded initial data")
	return nil
}
