package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

// BusinessIDHeader заголовок, который проставляет внешний провайдер авторизации
const BusinessIDHeader = "X-Business-ID"

const (
	msgMissingBusinessHeader = "kimlik doğrulaması gerekli"
	msgForeignBusiness       = "bu işletmeye erişim izniniz yok"
)

// Auth пропускает запрос, только если X-Business-ID совпадает с businessId из пути
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get(BusinessIDHeader))
		if header == "" {
			handlers.RespondUnauthorized(w, msgMissingBusinessHeader)
			return
		}

		if !strings.EqualFold(header, mux.Vars(r)["businessId"]) {
			handlers.RespondForbidden(w, msgForeignBusiness)
			return
		}

		next.ServeHTTP(w, r)
	})
}
