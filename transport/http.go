package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	bidapp "github.com/muhammadheryan/task-marketplace/application/bid"
	dashboardapp "github.com/muhammadheryan/task-marketplace/application/dashboard"
	messageapp "github.com/muhammadheryan/task-marketplace/application/message"
	paymentapp "github.com/muhammadheryan/task-marketplace/application/payment"
	reviewapp "github.com/muhammadheryan/task-marketplace/application/review"
	taskapp "github.com/muhammadheryan/task-marketplace/application/task"
	userapp "github.com/muhammadheryan/task-marketplace/application/user"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	TaskApp      taskapp.TaskApp
	BidApp       bidapp.BidApp
	PaymentApp   paymentapp.PaymentApp
	ReviewApp    reviewapp.ReviewApp
	MessageApp   messageapp.MessageApp
	DashboardApp dashboardapp.DashboardApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	root := mux.NewRouter()

	// Swagger UI
	root.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := root.PathPrefix("/api").Subrouter()

	api.HandleFunc("", rh.Root).Methods(http.MethodGet)
	api.HandleFunc("/", rh.Root).Methods(http.MethodGet)

	// Users
	api.HandleFunc("/users", rh.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", rh.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", rh.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}/location", rh.SetUserLocation).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}/location", rh.GetUserLocation).Methods(http.MethodGet)

	// Tasks
	api.HandleFunc("/tasks", rh.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks", rh.ListTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", rh.GetTask).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}/accept", rh.AcceptTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}/start", rh.StartTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}/complete", rh.CompleteTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}/cancel", rh.CancelTask).Methods(http.MethodPut)

	// Bids
	api.HandleFunc("/task-bids", rh.CreateTaskBid).Methods(http.MethodPost)
	api.HandleFunc("/task-bids/{task_id}", rh.ListTaskBids).Methods(http.MethodGet)

	// Payments
	api.HandleFunc("/payment-accounts", rh.CreatePaymentAccount).Methods(http.MethodPost)
	api.HandleFunc("/payment-accounts/{user_id}", rh.ListPaymentAccounts).Methods(http.MethodGet)
	api.HandleFunc("/payment-accounts/{id}/wallet", rh.UpdateWalletBalance).Methods(http.MethodPut)
	api.HandleFunc("/payments", rh.CreatePayment).Methods(http.MethodPost)

	// Messaging
	api.HandleFunc("/messages", rh.SendMessage).Methods(http.MethodPost)
	api.HandleFunc("/messages/{task_id}", rh.ListTaskMessages).Methods(http.MethodGet)

	// Reviews
	api.HandleFunc("/reviews", rh.CreateReview).Methods(http.MethodPost)
	api.HandleFunc("/reviews/{user_id}", rh.ListUserReviews).Methods(http.MethodGet)

	// Catalog & dashboard
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/{user_id}", rh.GetDashboard).Methods(http.MethodGet)

	// Internal service endpoints (reminder consumer callback)
	internal := api.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/tasks/{id}/reminder", rh.RecordTaskReminder).Methods(http.MethodPost)

	root.Use(LoggingMiddleware())

	return root
}

// Root handler
// @Summary Service banner
// @Tags Meta
// @Produce json
// @Success 200 {object} transport.Response
// @Router /api [get]
func (s *RestHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"message": "Task Marketplace API"})
}
