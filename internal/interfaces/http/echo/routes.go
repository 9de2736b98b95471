package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, ingestionHandler *IngestionHandler, personHandler *PersonHandler) {
	server.POST("/api/v1/ingestions/people", ingestionHandler.IngestPeople)
	server.GET("/api/v1/people/:personalCode", personHandler.GetPerson)
}
