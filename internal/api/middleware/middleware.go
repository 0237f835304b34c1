package middleware

import (
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the JSON body returned on every non-2xx response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// HandleError writes a structured error entity with the given status code.
func HandleError(resp *restful.Response, err error, status int) {
	_ = resp.WriteHeaderAndEntity(status, ErrorResponse{
		Error:  err.Error(),
		Status: status,
	})
}

// Logger is a container filter that logs one line per request.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)
	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request")
}

// RecoverPanic converts a handler panic into a 500 instead of killing the
// connection.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Msg("recovered from panic")
			_ = resp.WriteHeaderAndEntity(http.StatusInternalServerError, ErrorResponse{
				Error:  "internal server error",
				Status: http.StatusInternalServerError,
			})
		}
	}()
	chain.ProcessFilter(req, resp)
}
