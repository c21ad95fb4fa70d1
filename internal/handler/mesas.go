package handler

import (
	"net/http"

	"barclube/internal/dto"
	"barclube/internal/service"

	"github.com/gin-gonic/gin"
)

type MesasHandler struct{ svc service.MesaService }

func NewMesasHandler(svc service.MesaService) *MesasHandler { return &MesasHandler{svc: svc} }

func (h *MesasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MesasHandler) Criar(c *gin.Context) {
	var req dto.CriarMesaRequest
	if !bindForm(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req.NomeOuNumero)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
