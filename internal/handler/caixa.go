package handler

import (
	"net/http"

	"barclube/internal/dto"
	"barclube/internal/middleware"
	"barclube/internal/model"
	"barclube/internal/service"

	"github.com/gin-gonic/gin"
)

type CaixaHandler struct{ svc service.CaixaService }

func NewCaixaHandler(svc service.CaixaService) *CaixaHandler { return &CaixaHandler{svc: svc} }

// Aberto returns the open register, or a literal null when none is open.
func (h *CaixaHandler) Aberto(c *gin.Context) {
	resp, err := h.svc.Aberto(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CaixaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCaixaRequest
	if !bindForm(c, &req) {
		return
	}
	usuario := middleware.GetUsuario(c)

	resp, err := h.svc.Abrir(c.Request.Context(), usuario.ID, *req.ValorInicial)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CaixaHandler) RegistrarMovimento(c *gin.Context) {
	var req dto.MovimentoCaixaRequest
	if !bindForm(c, &req) {
		return
	}
	usuario := middleware.GetUsuario(c)

	err := h.svc.RegistrarMovimento(
		c.Request.Context(),
		usuario.ID,
		model.TipoMovimento(req.Tipo),
		*req.Valor,
		req.Motivo,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *CaixaHandler) Fechar(c *gin.Context) {
	var req dto.FecharCaixaRequest
	if !bindForm(c, &req) {
		return
	}
	usuario := middleware.GetUsuario(c)

	resp, err := h.svc.Fechar(c.Request.Context(), usuario.ID, *req.ValorFinal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
