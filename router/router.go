package router

import (
	"go-beer-cellar-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	User      *handler.UserHandler
	Beer      *handler.BeerHandler
	Brewery   *handler.BreweryHandler
	Style     *handler.StyleHandler
	Container *handler.ContainerHandler
	Storage   *handler.StorageHandler
	Review    *handler.ReviewHandler
	Stats     *handler.StatsHandler
}

// NewRouter wires the route table. Writes to the catalogue are admin-only,
// reads and reviews are open to any authenticated role, and the per-user
// routes additionally allow admins to act on any user.
func NewRouter(h Handlers, am *handler.AuthMiddleware) http.Handler {
	mux := http.NewServeMux()

	wrap := handler.ErrorHandlingMiddleware
	admin := func(next handler.AppHandler) http.HandlerFunc { return wrap(am.RequireAdmin(next)) }
	viewer := func(next handler.AppHandler) http.HandlerFunc { return wrap(am.RequireViewer(next)) }
	user := func(next handler.AppHandler) http.HandlerFunc { return wrap(am.RequireUser(next)) }

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.Handler())

	// Authentication
	mux.Handle("POST /api/v1/users/sign-in", wrap(h.User.Login))
	mux.Handle("POST /api/v1/users/refresh", wrap(h.User.Refresh))
	mux.Handle("POST /api/v1/users/{id}/sign-out", user(h.User.SignOut))
	mux.Handle("PUT /api/v1/users/{id}/password", user(h.User.ChangePassword))

	// User administration
	mux.Handle("POST /api/v1/users", admin(h.User.Register))
	mux.Handle("GET /api/v1/users", admin(h.User.ListUsers))
	mux.Handle("DELETE /api/v1/users/{id}", admin(h.User.DeleteUser))

	// Breweries
	mux.Handle("POST /api/v1/breweries", admin(h.Brewery.CreateBrewery))
	mux.Handle("GET /api/v1/breweries", viewer(h.Brewery.ListBreweries))
	mux.Handle("GET /api/v1/breweries/{id}", viewer(h.Brewery.GetBrewery))
	mux.Handle("PUT /api/v1/breweries/{id}", admin(h.Brewery.UpdateBrewery))
	mux.Handle("DELETE /api/v1/breweries/{id}", admin(h.Brewery.DeleteBrewery))

	// Styles
	mux.Handle("POST /api/v1/styles", admin(h.Style.CreateStyle))
	mux.Handle("GET /api/v1/styles", viewer(h.Style.ListStyles))
	mux.Handle("GET /api/v1/styles/{id}", viewer(h.Style.GetStyle))
	mux.Handle("PUT /api/v1/styles/{id}", admin(h.Style.UpdateStyle))
	mux.Handle("DELETE /api/v1/styles/{id}", admin(h.Style.DeleteStyle))

	// Beers
	mux.Handle("POST /api/v1/beers", admin(h.Beer.CreateBeer))
	mux.Handle("GET /api/v1/beers", viewer(h.Beer.ListBeers))
	mux.Handle("GET /api/v1/beers/{id}", viewer(h.Beer.GetBeer))
	mux.Handle("PUT /api/v1/beers/{id}", admin(h.Beer.UpdateBeer))
	mux.Handle("DELETE /api/v1/beers/{id}", admin(h.Beer.DeleteBeer))
	mux.Handle("GET /api/v1/beers/{id}/storages", viewer(h.Storage.ListStoragesByBeer))
	mux.Handle("GET /api/v1/beers/{id}/reviews", viewer(h.Review.ListReviewsByBeer))

	// Containers
	mux.Handle("POST /api/v1/containers", admin(h.Container.CreateContainer))
	mux.Handle("GET /api/v1/containers", viewer(h.Container.ListContainers))
	mux.Handle("GET /api/v1/containers/{id}", viewer(h.Container.GetContainer))
	mux.Handle("PUT /api/v1/containers/{id}", admin(h.Container.UpdateContainer))
	mux.Handle("DELETE /api/v1/containers/{id}", admin(h.Container.DeleteContainer))

	// Storage
	mux.Handle("POST /api/v1/storages", admin(h.Storage.CreateStorage))
	mux.Handle("GET /api/v1/storages", viewer(h.Storage.ListStorages))
	mux.Handle("GET /api/v1/storages/{id}", viewer(h.Storage.GetStorage))
	mux.Handle("PUT /api/v1/storages/{id}", admin(h.Storage.UpdateStorage))
	mux.Handle("POST /api/v1/storages/{id}/consume", admin(h.Storage.ConsumeStorage))
	mux.Handle("DELETE /api/v1/storages/{id}", admin(h.Storage.DeleteStorage))

	// Reviews
	mux.Handle("POST /api/v1/reviews", viewer(h.Review.CreateReview))
	mux.Handle("GET /api/v1/reviews", viewer(h.Review.ListReviews))
	mux.Handle("GET /api/v1/reviews/{id}", viewer(h.Review.GetReview))
	mux.Handle("PUT /api/v1/reviews/{id}", viewer(h.Review.UpdateReview))
	mux.Handle("DELETE /api/v1/reviews/{id}", viewer(h.Review.DeleteReview))
	mux.Handle("GET /api/v1/users/{id}/reviews", viewer(h.Review.ListReviewsByUser))

	// Stats
	mux.Handle("GET /api/v1/stats/overall", viewer(h.Stats.GetOverallStats))
	mux.Handle("GET /api/v1/stats/breweries", viewer(h.Stats.GetBreweryStats))
	mux.Handle("GET /api/v1/stats/styles", viewer(h.Stats.GetStyleStats))
	mux.Handle("GET /api/v1/stats/annual", viewer(h.Stats.GetAnnualStats))
	mux.Handle("GET /api/v1/stats/ratings", viewer(h.Stats.GetRatingDistribution))

	return mux
}
