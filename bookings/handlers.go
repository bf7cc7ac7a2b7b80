package bookings

import (
	"net/http"

	"sitewright/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// GetBookedDates returns every reserved date so the calendar can grey them out.
func (h *Handler) GetBookedDates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"booked_dates": h.Store.ListDates()})
}
