// internal/handlers/web.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// VersionHandler reports the running release as plain text.
func VersionHandler(version string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "promptclash v%s\n", version)
	}
}
