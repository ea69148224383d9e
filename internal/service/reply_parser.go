package service

import "strings"

// StopMarker es el centinela estructurado que el prompt le pide al modelo
// emitir al final de su respuesta cuando quiere terminar la conversacion.
// Un marcador explicito evita falsos positivos con la palabra "stop" usada
// en medio de una frase legitima.
const StopMarker = "[END_CHAT]"

// ReplyParser detecta la señal de terminacion en la salida del modelo.
type ReplyParser struct{}

// ParseReply separa el texto visible de la respuesta del marcador de
// terminacion. La busqueda es case-insensitive; el marcador se elimina
// del texto devuelto.
func (ReplyParser) ParseReply(reply string) (string, bool) {
	// El marcador es ASCII puro: se busca con EqualFold sobre los bytes
	// originales, sin transformar el resto de la respuesta (ToUpper puede
	// cambiar el largo en bytes de runas no ASCII y desplazar los offsets).
	idx := -1
	for i := 0; i+len(StopMarker) <= len(reply); i++ {
		if strings.EqualFold(reply[i:i+len(StopMarker)], StopMarker) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return reply, false
	}
	cleaned := reply[:idx] + reply[idx+len(StopMarker):]
	return strings.TrimSpace(cleaned), true
}

// ContainsStopWord detecta la señal de terminacion en el mensaje del
// usuario: texto humano libre, asi que basta el substring "stop" en
// cualquier combinacion de mayusculas.
func ContainsStopWord(message string) bool {
	return strings.Contains(strings.ToLower(message), "stop")
}
