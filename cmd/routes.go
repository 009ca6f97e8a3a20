package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"itemsBack/internal/handlers"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	route := func(name string, h http.HandlerFunc) http.Handler {
		return alice.New(app.metrics.Instrument(name)).ThenFunc(h)
	}

	mux := pat.New()

	// Items
	mux.Get("/items", route("items_list", app.itemHandler.GetItems))
	mux.Post("/items", route("items_create", app.itemHandler.CreateItem))
	mux.Get("/items/:id", route("items_get", app.itemHandler.GetItemByID))
	mux.Put("/items/:id", route("items_update", app.itemHandler.UpdateItem))
	mux.Del("/items/:id", route("items_delete", app.itemHandler.DeleteItem))

	mux.Get("/metrics", app.metrics.Handler())

	mux.Get("/", route("index", app.index))

	mux.NotFound = route("not_found", app.notFound)

	return standardMiddleware.Then(mux)
}

func (app *application) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r)
		return
	}
	handlers.Index(w, r)
}
