package service

import (
	"context"
	"sort"
	"strings"

	"barclube/internal/apierror"
	"barclube/internal/dto"
	"barclube/internal/model"
	"barclube/internal/store"

	"github.com/google/uuid"
)

type ProdutoService interface {
	Listar(ctx context.Context) ([]dto.ProdutoResponse, error)
	Criar(ctx context.Context, nome, categoria string, preco int, controlaEstoque bool, qtdAtual, qtdMinima int) (*dto.ProdutoResponse, error)
}

type produtoService struct {
	st *store.Store
}

func NewProdutoService(st *store.Store) ProdutoService {
	return &produtoService{st: st}
}

// Listar returns the catalog sorted by (categoria, nome), case-sensitively.
func (s *produtoService) Listar(_ context.Context) ([]dto.ProdutoResponse, error) {
	s.st.Lock()
	defer s.st.Unlock()

	resp := make([]dto.ProdutoResponse, 0, len(s.st.Produtos))
	for _, p := range s.st.Produtos {
		resp = append(resp, produtoView(p))
	}
	sort.Slice(resp, func(i, j int) bool {
		if resp[i].Categoria != resp[j].Categoria {
			return resp[i].Categoria < resp[j].Categoria
		}
		return resp[i].Nome < resp[j].Nome
	})
	return resp, nil
}

// Criar adds a product. When stock control is off, both stock fields are
// clamped to zero regardless of the submitted values.
func (s *produtoService) Criar(_ context.Context, nome, categoria string, preco int, controlaEstoque bool, qtdAtual, qtdMinima int) (*dto.ProdutoResponse, error) {
	nome = strings.TrimSpace(nome)
	categoria = strings.TrimSpace(categoria)
	if nome == "" || categoria == "" || preco < 0 {
		return nil, apierror.ErrValidation
	}
	if !controlaEstoque {
		qtdAtual, qtdMinima = 0, 0
	}

	s.st.Lock()
	defer s.st.Unlock()

	p := &model.Produto{
		ID:              uuid.NewString(),
		Nome:            nome,
		Categoria:       categoria,
		Preco:           preco,
		ControlaEstoque: controlaEstoque,
		EstoqueAtual:    qtdAtual,
		EstoqueMinimo:   qtdMinima,
		Ativo:           true,
	}
	s.st.Produtos[p.ID] = p

	view := produtoView(p)
	return &view, nil
}
