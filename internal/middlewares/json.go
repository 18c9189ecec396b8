package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// parsedJSONDataFieldType является типом для хранения данных JSON в контексте запроса.
type parsedJSONDataFieldType string

// parsedJSONDataField - ключ для хранения данных JSON в контексте запроса.
const parsedJSONDataField parsedJSONDataFieldType = "parsedJSONDataField"

// ModelParameter определяет интерфейс моделей запроса, поддерживающий как
// одиночные значения, так и срезы значений.
type ModelParameter interface {
	interface{} | []interface{}
}

// JSONMiddleware разбирает JSON-тело запроса в модель и кладёт её в контекст.
func JSONMiddleware[Model ModelParameter](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверка заголовка Content-Type.
		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "Le type de contenu n'est pas application/json", http.StatusUnsupportedMediaType)
			return
		}

		var parsedData Model
		var buf bytes.Buffer

		if _, err := buf.ReadFrom(r.Body); err != nil {
			http.Error(w, fmt.Sprintf("Erreur de lecture du corps de la requête : %s", err.Error()), http.StatusBadRequest)
			return
		}

		if err := json.Unmarshal(buf.Bytes(), &parsedData); err != nil {
			http.Error(w, fmt.Sprintf("Erreur lors de l'analyse des données JSON : %s", err.Error()), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), parsedJSONDataField, parsedData)))
	})
}

// GetParsedJSONData извлекает разобранную модель запроса из контекста.
func GetParsedJSONData[Model ModelParameter](w http.ResponseWriter, r *http.Request) Model {
	data, ok := r.Context().Value(parsedJSONDataField).(Model)

	if !ok {
		http.Error(w, "Impossible d'extraire les données du contexte", http.StatusInternalServerError)
		var empty Model
		return empty
	}

	return data
}

// EncodeJSONResponse кодирует данные в формат JSON и отправляет их в ответе.
func EncodeJSONResponse[Model any](w http.ResponseWriter, data Model) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := json.Marshal(data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors de l'encodage de la réponse JSON : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(resp); err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors de l'envoi de la réponse : %s", err.Error()), http.StatusInternalServerError)
		return
	}
}
