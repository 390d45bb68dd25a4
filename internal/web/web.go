// Package web contiene el cliente de navegador que sirve el endpoint raiz.
package web

import _ "embed"

// IndexHTML es la pagina del chat: guarda la conversacion en localStorage y llama a POST /api/chat.
//
//go:embed static/index.html
var IndexHTML []byte
