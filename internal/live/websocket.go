// Package live implementa el recálculo en vivo del formulario: el cliente
// envía el request de análisis por WebSocket con cada cambio de parámetro
// y recibe las métricas recalculadas, sin el costo de un POST por tecla.
package live

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/yourorg/liftpro/internal/engine"
	"github.com/yourorg/liftpro/internal/models"
	"github.com/yourorg/liftpro/internal/validation"
)

// HandleAnalysisSocket atiende una conexión del formulario interactivo.
// Cada mensaje entrante es un AnalysisAPIRequest completo; la respuesta
// aplica el mismo gate pro que el endpoint REST.
func HandleAnalysisSocket(conn *websocket.Conn) {
	pro, _ := conn.Locals("pro").(bool)
	log.Printf("🔌 Formulario conectado (pro=%v)", pro)
	defer func() {
		log.Println("🔌 Formulario desconectado")
		conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var req models.AnalysisAPIRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			writeJSON(conn, models.ErrorResponse{Error: "invalid json"})
			continue
		}

		result, err := engine.Analyze(req.AnalysisRequest)
		if err != nil {
			var perr *validation.ParameterError
			if errors.As(err, &perr) {
				writeJSON(conn, models.ErrorResponse{Error: perr.Error()})
				continue
			}
			writeJSON(conn, models.ErrorResponse{Error: "analysis failed"})
			continue
		}

		writeJSON(conn, models.NewAnalysisResponse(result, req.BuildingType, pro))
	}
}

func writeJSON(conn *websocket.Conn, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error serializando respuesta live: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("Error enviando respuesta live: %v", err)
	}
}
