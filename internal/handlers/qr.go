// internal/handlers/qr.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// QRHandler serves a PNG QR code encoding the join URL for a live session,
// so a code on one screen can pull the rest of the room in. Unknown codes
// 404 rather than leaking which codes exist as anything but a guess.
func QRHandler(srv *Server, publicURL string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		code := strings.ToUpper(p.ByName("code"))
		if _, ok := srv.Sessions.Get(code); !ok {
			http.NotFound(w, r)
			return
		}

		base := publicURL
		if base == "" {
			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}
			base = fmt.Sprintf("%s://%s", scheme, r.Host)
		}

		png, err := qrcode.Encode(fmt.Sprintf("%s/?join=%s", base, code), qrcode.Medium, qrSize)
		if err != nil {
			srv.Logger.Errorf("failed to encode QR for session %s: %v", code, err)
			http.Error(w, "failed to encode QR code", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if _, err := w.Write(png); err != nil {
			srv.Logger.Warnf("failed to write QR response for session %s: %v", code, err)
		}
	}
}
