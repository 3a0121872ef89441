package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bandbook/internal/logger"
	"bandbook/internal/models"
	"bandbook/internal/show"
	"bandbook/internal/utils"
	"bandbook/internal/validate"
	"bandbook/internal/view"
)

type Handler struct {
	ShowService *show.ShowService
	Renderer    *view.Renderer
	Logger      *logger.Logger
}

func NewHandler(service *show.ShowService, renderer *view.Renderer, log *logger.Logger) *Handler {
	return &Handler{ShowService: service, Renderer: renderer, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shows", func(r chi.Router) {
		r.Get("/", h.ListShows)
		r.Get("/create", h.NewShowForm)
		r.Post("/create", h.CreateShow)
	})
}

func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	items, err := h.ShowService.ListUpcoming(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListShows: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	_ = h.Renderer.Render(w, http.StatusOK, "shows.html", view.Page{Data: items})
}

func (h *Handler) NewShowForm(w http.ResponseWriter, r *http.Request) {
	_ = h.Renderer.Render(w, http.StatusOK, "new_show.html", view.Page{})
}

func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req models.ShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: bad payload: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: "An error occurred. Show could not be listed.",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		if !validate.IsValidationError(err) {
			h.Logger.Error("API", fmt.Sprintf("CreateShow: %v", err))
			h.Renderer.RenderServerError(w)
			return
		}
		h.Logger.Warn("API", fmt.Sprintf("CreateShow: validation failed: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: "An error occurred. Show could not be listed.",
		})
		return
	}

	if _, err := utils.ParseStartTime(req.StartTime); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("CreateShow: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: "An error occurred. Show could not be listed.",
		})
		return
	}

	created, err := h.ShowService.Create(r.Context(), req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: %v", err))
		_ = h.Renderer.Render(w, http.StatusInternalServerError, "home.html", view.Page{
			Error: "An error occurred. Show could not be listed.",
		})
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateShow: show %d created for artist %d at venue %d", created.ID, created.ArtistID, created.VenueID))
	_ = h.Renderer.Render(w, http.StatusOK, "home.html", view.Page{
		Notice: "Show was successfully listed!",
	})
}
