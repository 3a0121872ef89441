package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bandbook/internal/logger"
	"bandbook/internal/models"
	"bandbook/internal/validate"
	"bandbook/internal/venue"
	"bandbook/internal/view"
)

type Handler struct {
	VenueService *venue.VenueService
	Renderer     *view.Renderer
	Logger       *logger.Logger
}

func NewHandler(service *venue.VenueService, renderer *view.Renderer, log *logger.Logger) *Handler {
	return &Handler{VenueService: service, Renderer: renderer, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/venues", func(r chi.Router) {
		r.Get("/", h.ListVenues)
		r.Post("/search", h.SearchVenues)
		r.Get("/create", h.NewVenueForm)
		r.Post("/create", h.CreateVenue)
		r.Get("/{venueId}", h.ShowVenue)
		r.Delete("/{venueId}", h.DeleteVenue)
		r.Get("/{venueId}/edit", h.EditVenueForm)
		r.Post("/{venueId}/edit", h.UpdateVenue)
	})
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	groups, err := h.VenueService.ListGroupedByLocation(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListVenues: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	_ = h.Renderer.Render(w, http.StatusOK, "venues.html", view.Page{Data: groups})
}

func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchVenues: bad form: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	term := r.PostFormValue("search_term")

	results, err := h.VenueService.Search(r.Context(), term)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchVenues: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	_ = h.Renderer.Render(w, http.StatusOK, "search_venues.html", view.Page{SearchTerm: term, Data: results})
}

func (h *Handler) ShowVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venueId"), 10, 64)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	detail, err := h.VenueService.GetDetail(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		h.Logger.Warn("API", fmt.Sprintf("ShowVenue: venue %d not found", id))
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ShowVenue: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	_ = h.Renderer.Render(w, http.StatusOK, "show_venue.html", view.Page{Data: detail})
}

func (h *Handler) NewVenueForm(w http.ResponseWriter, r *http.Request) {
	_ = h.Renderer.Render(w, http.StatusOK, "new_venue.html", view.Page{})
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req models.VenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateVenue: bad payload: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: "An error occurred. Venue could not be listed.",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		if !validate.IsValidationError(err) {
			h.Logger.Error("API", fmt.Sprintf("CreateVenue: %v", err))
			h.Renderer.RenderServerError(w)
			return
		}
		h.Logger.Warn("API", fmt.Sprintf("CreateVenue: validation failed: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name),
		})
		return
	}

	created, err := h.VenueService.Create(r.Context(), req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateVenue: %v", err))
		_ = h.Renderer.Render(w, http.StatusInternalServerError, "home.html", view.Page{
			Error: fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name),
		})
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateVenue: venue %d created", created.ID))
	_ = h.Renderer.Render(w, http.StatusOK, "home.html", view.Page{
		Notice: fmt.Sprintf("Venue %s was successfully listed!", created.Name),
	})
}

func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venueId"), 10, 64)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	err = h.VenueService.Delete(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		h.Logger.Warn("API", fmt.Sprintf("DeleteVenue: venue %d not found", id))
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteVenue: %v", err))
		_ = h.Renderer.Render(w, http.StatusInternalServerError, "home.html", view.Page{
			Error: "An error occurred. Venue could not be deleted.",
		})
		return
	}

	h.Logger.Info("API", fmt.Sprintf("DeleteVenue: venue %d deleted", id))
	_ = h.Renderer.Render(w, http.StatusOK, "home.html", view.Page{
		Notice: "Venue was successfully deleted.",
	})
}

func (h *Handler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venueId"), 10, 64)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	v, err := h.VenueService.GetForEdit(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("EditVenueForm: %v", err))
		h.Renderer.RenderServerError(w)
		return
	}
	_ = h.Renderer.Render(w, http.StatusOK, "edit_venue.html", view.Page{Data: v})
}

func (h *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venueId"), 10, 64)
	if err != nil {
		h.Renderer.RenderNotFound(w)
		return
	}

	var req models.VenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateVenue: bad payload: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: "An error occurred. Venue could not be updated.",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		if !validate.IsValidationError(err) {
			h.Logger.Error("API", fmt.Sprintf("UpdateVenue: %v", err))
			h.Renderer.RenderServerError(w)
			return
		}
		h.Logger.Warn("API", fmt.Sprintf("UpdateVenue: validation failed: %v", err))
		_ = h.Renderer.Render(w, http.StatusBadRequest, "home.html", view.Page{
			Error: fmt.Sprintf("An error occurred. Venue %s could not be updated.", req.Name),
		})
		return
	}

	err = h.VenueService.Update(r.Context(), id, req)
	if errors.Is(err, models.ErrNotFound) {
		h.Logger.Warn("API", fmt.Sprintf("UpdateVenue: venue %d not found", id))
		h.Renderer.RenderNotFound(w)
		return
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateVenue: %v", err))
		_ = h.Renderer.Render(w, http.StatusInternalServerError, "home.html", view.Page{
			Error: fmt.Sprintf("An error occurred. Venue %s could not be updated.", req.Name),
		})
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}
