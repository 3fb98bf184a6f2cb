package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/config"
)

// Handler carries the injected service dependencies. There is no global
// store handle; main wires one Handler into the route table.
type Handler struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log *logrus.Logger
}

func New(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{DB: db, Cfg: cfg, Log: log}
}

// fail writes the FastAPI-compatible error body the menu frontend
// already understands.
func fail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// pathID parses the :id route param. A malformed identifier is a 400,
// a well-formed one that matches nothing is the caller's 404.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Identificador inválido")
		return 0, false
	}
	return uint(id), true
}
