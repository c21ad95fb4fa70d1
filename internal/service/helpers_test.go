package service_test

import (
	"context"
	"testing"

	"barclube/internal/model"
	"barclube/internal/store"

	"github.com/stretchr/testify/require"
)

// newTestStore returns a seeded store: admin@bar.local/admin123, mesas
// "1".."12" and the three default produtos.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	require.NoError(t, st.Seed())
	return st
}

func adminID(t *testing.T, st *store.Store) string {
	t.Helper()
	st.Lock()
	defer st.Unlock()
	u, ok := st.UsuariosPorEmail["admin@bar.local"]
	require.True(t, ok, "seeded admin missing")
	return u.ID
}

func mesaPorNome(t *testing.T, st *store.Store, nome string) *model.Mesa {
	t.Helper()
	st.Lock()
	defer st.Unlock()
	for _, m := range st.Mesas {
		if m.NomeOuNumero == nome {
			return m
		}
	}
	t.Fatalf("mesa %q not found", nome)
	return nil
}

func produtoPorNome(t *testing.T, st *store.Store, nome string) *model.Produto {
	t.Helper()
	st.Lock()
	defer st.Unlock()
	for _, p := range st.Produtos {
		if p.Nome == nome {
			return p
		}
	}
	t.Fatalf("produto %q not found", nome)
	return nil
}

func ctx() context.Context { return context.Background() }
