// Package httpapi exposes the portal over HTTP: public submission
// endpoints for the three application forms, and the authenticated admin
// API for review, fleet management and dashboard stats.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fleetflow/application"
	"fleetflow/auth"
	"fleetflow/fleet"
	"fleetflow/stats"
)

// Server bundles the services the handlers depend on.
type Server struct {
	apps  *application.Service
	fleet *fleet.Service
	stats *stats.Service
	auth  *auth.Service
	log   *zap.Logger
}

// Options tunes router behavior.
type Options struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// NewServer builds the handler set.
func NewServer(apps *application.Service, fleetSvc *fleet.Service, statsSvc *stats.Service, authSvc *auth.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{apps: apps, fleet: fleetSvc, stats: statsSvc, auth: authSvc, log: log}
}

// NewRouter wires every route. Admin routes sit behind the bearer-token
// middleware except the three bootstrap/login endpoints, which must work
// before any admin exists.
func NewRouter(s *Server, opts Options) *gin.Engine {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.HandleMethodNotAllowed = true
	r.Use(corsMiddleware(opts.CORSOrigins))
	r.Use(timeoutMiddleware(opts.RequestTimeout))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	// Public submission forms.
	r.POST("/rider-applications", s.submitRider)
	r.POST("/contractor-applications", s.submitContractor)
	r.POST("/business-inquiries", s.submitInquiry)

	admin := r.Group("/admin")

	// Reachable without a token: first-run setup and login.
	admin.GET("/setup-check", s.setupCheck)
	admin.POST("/users", s.bootstrapAdmin)
	admin.POST("/login", s.login)

	authed := admin.Group("", s.authMiddleware())
	{
		authed.GET("/stats", s.getStats)

		authed.GET("/rider-applications", s.listRiders)
		authed.GET("/rider-applications/:id", s.getRider)
		authed.PATCH("/rider-applications/:id", s.reviewRider)

		authed.GET("/contractor-applications", s.listContractorApps)
		authed.GET("/contractor-applications/:id", s.getContractorApp)
		authed.PATCH("/contractor-applications/:id", s.reviewContractorApp)

		authed.GET("/business-inquiries", s.listInquiries)
		authed.GET("/business-inquiries/:id", s.getInquiry)
		authed.PATCH("/business-inquiries/:id", s.reviewInquiry)

		authed.GET("/drivers", s.listDrivers)
		authed.GET("/drivers/:id", s.getDriver)
		authed.POST("/drivers", s.createDriver)
		authed.PATCH("/drivers/:id", s.updateDriver)
		authed.DELETE("/drivers/:id", s.deleteDriver)

		authed.GET("/contractors", s.listContractors)
		authed.GET("/contractors/:id", s.getContractor)
		authed.POST("/contractors", s.createContractor)
		authed.PATCH("/contractors/:id", s.updateContractor)
		authed.DELETE("/contractors/:id", s.deleteContractor)

		authed.GET("/clients", s.listClients)
		authed.GET("/clients/:id", s.getClient)
		authed.POST("/clients", s.createClient)
		authed.PATCH("/clients/:id", s.updateClient)
		authed.DELETE("/clients/:id", s.deleteClient)

		authed.GET("/vehicles", s.listVehicles)
		authed.GET("/vehicles/:id", s.getVehicle)
		authed.POST("/vehicles", s.createVehicle)
		authed.PATCH("/vehicles/:id", s.updateVehicle)
		authed.DELETE("/vehicles/:id", s.deleteVehicle)

		authed.GET("/assignments", s.listAssignments)
		authed.GET("/assignments/:id", s.getAssignment)
		authed.POST("/assignments", s.createAssignment)
		authed.PATCH("/assignments/:id", s.updateAssignment)
		authed.DELETE("/assignments/:id", s.deleteAssignment)
	}

	return r
}

func (s *Server) getStats(c *gin.Context) {
	snap, err := s.stats.Snapshot(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
