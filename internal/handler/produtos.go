package handler

import (
	"net/http"

	"barclube/internal/dto"
	"barclube/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

func (h *ProdutosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindForm(c, &req) {
		return
	}

	resp, err := h.svc.Criar(
		c.Request.Context(),
		req.Nome,
		req.Categoria,
		*req.Preco,
		parseFormBool(req.ControleDeEstoque),
		req.QuantidadeAtual,
		req.QuantidadeMinima,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
