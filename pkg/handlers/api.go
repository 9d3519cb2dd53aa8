package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"shici/pkg/config"
	"shici/pkg/models"
	"shici/pkg/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger is used by all handlers. main replaces it at startup.
var Logger = zap.NewNop()

func ListPoems(c *gin.Context) {
	poems, ok := loadPoems(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, poems)
}

func GetPoem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}

	poems, ok := loadPoems(c)
	if !ok {
		return
	}
	if index < 0 || index >= len(poems) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Poem not found"})
		return
	}
	c.JSON(http.StatusOK, poems[index])
}

func SearchPoems(c *gin.Context) {
	poems, ok := loadPoems(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.SearchPoems(poems, c.Query("q")))
}

func RandomPoem(c *gin.Context) {
	poems, ok := loadPoems(c)
	if !ok {
		return
	}
	poem, err := services.RandomPoem(poems, nil)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, poem)
}

func HandleReshape(c *gin.Context) {
	format, err := services.ResolveFormat(config.OutputFormat, config.OutputPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "kind": services.GenericFailure.String(), "error": err.Error()})
		return
	}

	count, err := services.TransformWithFormat(config.InputPath, config.OutputPath, format)
	if err != nil {
		kind := services.KindOf(err)
		Logger.Warn("reshape failed",
			zap.String("input", config.InputPath),
			zap.String("kind", kind.String()),
			zap.Error(err))
		c.JSON(statusForKind(kind), gin.H{"status": "error", "kind": kind.String(), "error": err.Error()})
		return
	}

	services.InvalidatePoemCache()
	Logger.Info("reshape complete",
		zap.String("input", config.InputPath),
		zap.String("output", config.OutputPath),
		zap.Int("count", count))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "output": config.OutputPath, "count": count})
}

func ListSources(c *gin.Context) {
	files, err := services.ListSourceFiles(config.DataDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sources: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, files)
}

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.SourceNotFound:
		return http.StatusNotFound
	case services.MalformedInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func loadPoems(c *gin.Context) ([]models.Poem, bool) {
	format, err := services.ResolveFormat(config.OutputFormat, config.OutputPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}

	poems, err := services.GetPoemsCache(config.OutputPath, format)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No reshaped poems yet, run a reshape first"})
			return nil, false
		}
		Logger.Error("failed to load poems", zap.String("path", config.OutputPath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load poems"})
		return nil, false
	}
	return poems, true
}
