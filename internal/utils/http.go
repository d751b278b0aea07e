package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON escreve v como JSON com o status informado.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondErro escreve o envelope {"erro": msg} esperado pelo dashboard.
func RespondErro(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, map[string]string{"erro": msg})
}

// BaseURL reconstrói esquema e host da requisição para montar URLs de
// arquivos locais.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
