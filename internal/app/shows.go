package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/showtime-booking/api"
	"github.com/metinatakli/showtime-booking/internal/domain"
	"github.com/metinatakli/showtime-booking/internal/schedule"
)

func (app *Application) CreateShowHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowHandlerJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	req := schedule.CreateShowRequest{
		MovieID:   input.MovieId,
		ScreenID:  input.ScreenId,
		StartTime: input.StartTime.UTC(),
		PriceRule: schedule.BasePrice,
	}

	if len(input.SeatTypePrices) > 0 {
		req.PriceRule = schedule.SeatTypePrices(input.SeatTypePrices)
	}

	view, err := app.shows.CreateShow(r.Context(), req)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("show created", "show_id", view.Show.ID, "screen_id", view.Screen.ID)

	resp := api.ShowResponse{
		Show: toApiShow(view),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListShowsHandler(w http.ResponseWriter, r *http.Request, params api.ListShowsHandlerParams) {
	filter, err := toShowFilter(params)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	views, err := app.shows.ListShows(r.Context(), filter)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.ShowsResponse{
		Shows: make([]api.Show, len(views)),
	}

	for i := range views {
		resp.Shows[i] = toApiShow(&views[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowHandler(w http.ResponseWriter, r *http.Request, showID api.ShowId) {
	err := checkID("showId", showID)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.shows.GetShow(r.Context(), showID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.ShowResponse{
		Show: toApiShow(view),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAvailableSeatsHandler(w http.ResponseWriter, r *http.Request, showID api.ShowId) {
	err := checkID("showId", showID)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	slots, err := app.shows.ListAvailable(r.Context(), showID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.SeatsResponse{
		ShowId: showID,
		Seats:  toApiSeatSlots(slots),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowFilter(params api.ListShowsHandlerParams) (domain.ShowFilter, error) {
	filter := domain.ShowFilter{
		MovieID: params.MovieId,
		From:    params.From,
		To:      params.To,
	}

	if filter.MovieID != nil {
		if err := checkID("movieId", *filter.MovieID); err != nil {
			return filter, err
		}
	}

	if params.City != nil && *params.City != "" {
		if filter.MovieID == nil {
			return filter, errors.New("city filter requires movieId")
		}
		filter.City = params.City
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, errors.New("to must not be before from")
	}

	return filter, nil
}

func toApiShow(view *schedule.ShowView) api.Show {
	return api.Show{
		Id:        view.Show.ID,
		StartTime: view.Show.StartTime,
		EndTime:   view.Show.EndTime,
		Movie: api.Movie{
			Id:           view.Movie.ID,
			Title:        view.Movie.Title,
			Genre:        view.Movie.Genre,
			Language:     view.Movie.Language,
			DurationMins: view.Movie.DurationMins,
			PosterUrl:    view.Movie.PosterUrl,
		},
		Theater: api.Theater{
			Id:      view.Theater.ID,
			Name:    view.Theater.Name,
			Address: view.Theater.Address,
			City:    view.Theater.City,
		},
		Screen: api.Screen{
			Id:         view.Screen.ID,
			Name:       view.Screen.Name,
			TotalSeats: view.Screen.TotalSeats,
		},
		AvailableSeats: toApiSeatSlots(view.Seats),
	}
}

func toApiSeatSlots(slots []domain.SeatSlot) []api.SeatSlot {
	if slots == nil {
		return nil
	}

	apiSlots := make([]api.SeatSlot, len(slots))

	for i, v := range slots {
		apiSlot := api.SeatSlot{
			Id:     v.ID,
			SeatId: v.SeatID,
			Price:  money(v.Price),
			Status: api.SeatStatus(v.Status),
		}

		if v.Seat != nil {
			apiSlot.SeatNumber = v.Seat.SeatNumber
			apiSlot.SeatType = v.Seat.SeatType
		}

		apiSlots[i] = apiSlot
	}

	return apiSlots
}
