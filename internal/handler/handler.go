package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/medivista-dev/hospital-portal/backend/internal/config"
	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
	"github.com/medivista-dev/hospital-portal/backend/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// authentication, rate limited since these endpoints are public
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Use(httprate.LimitByIP(h.config.RateLimit.AuthRequests, time.Duration(h.config.RateLimit.AuthWindow)*time.Second))
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a valid session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
			})
		})

		r.Route("/specialties", func(r chi.Router) {
			r.Get("/", h.GetAllSpecialties)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateSpecialty)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/{id}", h.UpdateSpecialty)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/{id}", h.DeleteSpecialty)
		})

		r.Route("/doctors", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateDoctor)
			r.Get("/", h.GetAllDoctors)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.doctorInfo)
				r.Get("/", h.GetDoctor)
				r.Get("/slots", h.GetDoctorSlots)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateDoctor)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteDoctor)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/room", h.AssignRoom)
			})
		})

		r.Route("/patients", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleReceptionist})).Post("/", h.CreatePatient)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleReceptionist, domain.RoleDoctor, domain.RoleStaff})).Get("/", h.GetAllPatients)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.patientInfo)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleReceptionist, domain.RoleDoctor, domain.RoleStaff})).Get("/", h.GetPatient)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleReceptionist})).Patch("/", h.UpdatePatient)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeletePatient)
			})
		})

		r.Route("/rooms", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateRoom)
			r.Get("/", h.GetAllRooms)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.roomInfo)
				r.Get("/", h.GetRoom)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateRoom)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteRoom)
			})
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Use(h.myInfo)
			r.With(h.preventInactiveUser).With(h.RequiredRole([]domain.Role{domain.RoleReceptionist, domain.RolePatient})).Post("/", h.BookAppointment)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleReceptionist})).Get("/", h.GetAppointments)
			r.With(h.RequiredRole([]domain.Role{domain.RolePatient})).Get("/my", h.GetMyAppointments)
			r.With(h.RequiredRole([]domain.Role{domain.RoleDoctor})).Get("/schedule", h.GetMySchedule)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.appointmentInfo)
				r.Get("/", h.GetAppointment)
				r.Post("/cancel", h.CancelAppointment)
			})
		})

		r.Route("/queries", func(r chi.Router) {
			r.Use(h.myInfo)
			r.With(h.RequiredRole([]domain.Role{domain.RolePatient})).Post("/", h.SubmitQuery)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/", h.GetHospitalQueries)
			r.With(h.RequiredRole([]domain.Role{domain.RoleDoctor})).Get("/assigned", h.GetAssignedQueries)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/{id}/resolve", h.ResolveQuery)
		})

		r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/reports/dashboard", h.GetDashboardReport)
	})
}
