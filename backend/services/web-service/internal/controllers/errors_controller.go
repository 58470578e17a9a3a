package controllers

import (
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/views"
)

// ErrorController serves pages for requests no route handles.
type ErrorController struct {
	pages
}

func NewErrorController(renderer *views.Renderer, sessions SessionStore) *ErrorController {
	return &ErrorController{pages{renderer: renderer, sessions: sessions}}
}
