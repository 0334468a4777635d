package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow/auth"
)

// adminUserResponse hides the password hash from every auth payload.
type adminUserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAdminUserResponse(u auth.AdminUser) adminUserResponse {
	return adminUserResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

func (s *Server) setupCheck(c *gin.Context) {
	needs, err := s.auth.NeedsSetup(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"needsSetup": needs})
}

func (s *Server) bootstrapAdmin(c *gin.Context) {
	var req auth.BootstrapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	admin, err := s.auth.Bootstrap(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondCreated(c, toAdminUserResponse(*admin))
}

func (s *Server) login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := s.auth.Login(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    toAdminUserResponse(result.User),
	})
}
