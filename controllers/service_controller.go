package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vjay-git/shivashray/services"
)

type ServiceController struct {
	Catalog *services.ServiceCatalog
}

func NewServiceController(catalog *services.ServiceCatalog) *ServiceController {
	return &ServiceController{Catalog: catalog}
}

func (ctrl *ServiceController) GetServices(c *gin.Context) {
	list, err := ctrl.Catalog.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ServiceController) GetService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	svc, err := ctrl.Catalog.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
