package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
)

// msgFormFailure ответ формы при панике обработчика
const msgFormFailure = "Произошла ошибка. Попробуйте позже"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recover превращает панику обработчика в 500
func Recover(logger Logger) func(http.Handler) http.Handler {
	return recoverWith(logger, handlers.RespondInternalError)
}

// RecoverForm для публичных форм: паника отдается как {success:false, message} с кодом 200
func RecoverForm(logger Logger) func(http.Handler) http.Handler {
	return recoverWith(logger, func(w http.ResponseWriter) {
		handlers.RespondFormFailure(w, msgFormFailure)
	})
}

func recoverWith(logger Logger, respond func(w http.ResponseWriter)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					requestID, _ := GetRequestID(r.Context())
					logger.Error("%s %s - panic: %v, request_id=%s\n%s", r.Method, r.URL.Path, p, requestID, debug.Stack())
					respond(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
