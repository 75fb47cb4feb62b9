package middlewares

import (
	"api/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

type contextKey string

const UserContextKey = contextKey("panel_user")

type PanelUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PanelAuth valida el token Bearer contra la API de cuentas del panel.
func PanelAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Token no proporcionado", nil, 0)
			return
		}

		accountsURL := os.Getenv(utils.ACCOUNTS_API_URL)
		if accountsURL == "" {
			accountsURL = "http://localhost:8000"
		}
		userURL := fmt.Sprintf("%s/api/user", accountsURL)

		req, err := http.NewRequest("GET", userURL, nil)
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "Error al crear la solicitud de autenticación", nil, 0)
			return
		}
		req.Header.Set("Authorization", token)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			utils.SendResponse(w, http.StatusBadGateway, "Error al conectar con la API de autenticación", nil, 0)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			utils.SendResponse(w, http.StatusUnauthorized, "Token inválido o usuario no autenticado", nil, 0)
			return
		}

		user := PanelUser{}
		err = json.NewDecoder(resp.Body).Decode(&user)
		if err != nil || user.ID == 0 || user.Name == "" || user.Email == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Usuario inválido devuelto por la autenticación", nil, 0)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromRequest devuelve el correo del usuario autenticado, si existe.
func ActorFromRequest(r *http.Request) string {
	if user, ok := r.Context().Value(UserContextKey).(PanelUser); ok {
		return user.Email
	}
	return ""
}
