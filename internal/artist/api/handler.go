package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bandbook/internal/artist"
	"bandbook/internal/logger"
	"bandbook/internal/models"
	"bandbook/internal/validate"
	"bandbook/internal/view"
)

type Handler struct {
	ArtistService *artist.ArtistService
	Renderer      *view.Renderer
	Logger        *logger.Logger
}

func NewHandler(service *artist.ArtistService, renderer *view.Renderer, log *logger.Logger) *Handler {
	return &Handler{ArtistService: service, Renderer: renderer, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/artists", func(r chi.Router) {
		r.Get("/", h.ListArtists)
		r.Post("/search", h.SearchArtists)
		r.Get("/create", h.NewArtistForm)
		r.Post("/create", h.CreateArtist)
		r.Get("/{artistId}", h.ShowArtist)
		r.Get("/{artistId}/edit", h.EditArtistForm)
		r.Post("/{artistId}/edit", h.UpdateArtist)
	})
}

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.ArtistService.List(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListArtists: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	_ = h.Renderer.Render(w, http.StatusOK, "artists.html", view.Page{Data: artists})
}

func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchArtists: bad form: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	term := r.PostFormValue("search_term")

	results, err := h.ArtistService.Search(r.Context(), term)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchArtists: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	_ = h.Renderer.Render(w, http.StatusOK, "search_artists.html", view.Page{SearchTerm: term, Data: results})
}

func (h *Handler) ShowArtist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "artistId"), 10, 64)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	detail, err := h.ArtistService.GetDetail(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		h.Logger.Warn("API", fmt.Sprintf("ShowArtist: artist %d not found", id))
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ShowArtist: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	_ = h.Renderer.Render(w, http.StatusOK, "show_artist.html", view.Page{Data: detail})
}

func (h *Handler) NewArtistForm(w http.ResponseWriter, r *http.Request) {
	_ = h.Renderer.Render(w, http.StatusOK, "new_artist.html", view.Page{})
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var req models.ArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateArtist: bad payload: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: "An error occurred. Artist could not be listed.",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		if !validate.IsValidationError(err) {
			h.Logger.Error("API", fmt.Sprintf("CreateArtist: %v", err))
			h.Renderer.RenderServerError(w)
			return
		}
		h.Logger.Warn("API", fmt.Sprintf("CreateArtist: validation failed: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name),
		})
		return
	}

	created, err := h.ArtistService.Create(r.Context(), req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateArtist: %v", err))
		_ = h.Renderer.Render(w, http.StatusInternalServerError, "home.html", view.Page{
			Error: fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name),
		})
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateArtist: artist %d created", created.ID))
	_ = h.Renderer.Render(w, http.StatusOK, "home.html", view.Page{
		Notice: fmt.Sprintf("Artist %s was successfully listed!", created.Name),
	})
}

func (h *Handler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "artistId"), 10, 64)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	a, err := h.ArtistService.GetForEdit(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditArtistForm: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	_ = h.Renderer.Render(w, http.StatusOK, "edit_artist.html", view.Page{Data: a})
}

func (h *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "artistId"), 10, 64)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	var req models.ArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateArtist: bad payload: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: "An error occurred. Artist could not be updated.",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		if !validate.IsValidationError(err) {
			h.Logger.Error("API", fmt.Sprintf("UpdateArtist: %v", err))
			h.Renderer.RenderServerError(w)
			return
		}
		h.Logger.Warn("API", fmt.Sprintf("UpdateArtist: validation failed: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: fmt.Sprintf("An error occurred. Artist %s could not be updated.", req.Name),
		})
		return
	}

	err = h.ArtistService.Update(r.Context(), id, req)
	if errors.Is(err, models.ErrNotFound) {
		h.Logger.Warn("API", fmt.Sprintf("UpdateArtist: artist %d not found", id))
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateArtist: %v", err))
		_ = h.Renderer.Render(w, http.StatusInternalServerError, "home.html", view.Page{
			Error: fmt.Sprintf("An error occurred. Artist %s could not be updated.", req.Name),
		})
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}
