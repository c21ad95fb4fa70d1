package handler

import (
	"net/http"

	"barclube/internal/dto"
	"barclube/internal/middleware"
	"barclube/internal/service"

	"github.com/gin-gonic/gin"
)

type ComandasHandler struct{ svc service.ComandaService }

func NewComandasHandler(svc service.ComandaService) *ComandasHandler {
	return &ComandasHandler{svc: svc}
}

func (h *ComandasHandler) Listar(c *gin.Context) {
	var filtro dto.ComandaFiltro
	_ = c.ShouldBindQuery(&filtro)

	resp, err := h.svc.Listar(c.Request.Context(), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComandasHandler) Abrir(c *gin.Context) {
	var req dto.AbrirComandaRequest
	if !bindForm(c, &req) {
		return
	}
	usuario := middleware.GetUsuario(c)

	resp, err := h.svc.Abrir(c.Request.Context(), usuario.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComandasHandler) Obter(c *gin.Context) {
	resp, err := h.svc.Obter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComandasHandler) AdicionarItem(c *gin.Context) {
	var req dto.AdicionarItemRequest
	if !bindForm(c, &req) {
		return
	}
	usuario := middleware.GetUsuario(c)

	resp, err := h.svc.AdicionarItem(c.Request.Context(), usuario.ID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComandasHandler) RegistrarPagamento(c *gin.Context) {
	var req dto.RegistrarPagamentoRequest
	if !bindForm(c, &req) {
		return
	}
	usuario := middleware.GetUsuario(c)

	resp, err := h.svc.RegistrarPagamento(c.Request.Context(), usuario.ID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComandasHandler) Fechar(c *gin.Context) {
	usuario := middleware.GetUsuario(c)

	resp, err := h.svc.Fechar(c.Request.Context(), usuario.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
