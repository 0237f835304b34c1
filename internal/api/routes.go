package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/remote-staffing/match-engine/internal/api/middleware"
	"github.com/remote-staffing/match-engine/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/match").
			To(handler.Match).
			Doc("Rank candidates for a job, or jobs for a candidate").
			Metadata(restfulspec.KeyOpenAPITags, []string{"match"}).
			Param(ws.QueryParameter("job_id", "Job to rank candidates for").DataType("string").Required(false)).
			Param(ws.QueryParameter("candidate_id", "Candidate to rank jobs for").DataType("string").Required(false)).
			Param(ws.QueryParameter("top_n", "Maximum number of matches to return (0 returns an empty list; default: 5)").DataType("integer").Required(false)).
			Writes(models.MatchResponse{}).
			Returns(200, "OK", models.MatchResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
