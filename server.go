package main

import (
	"bytes"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"platewatch/pkg/records"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
)

// setupRoutes registers the read-only review API: the record log as JSON
// and the stored plate crops as images. Nothing here mutates the stores.
func setupRoutes(r *gin.Engine, cfg Config) {
	store := records.NewStore(cfg.RecordFile)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/records", func(c *gin.Context) {
		rows, err := store.All()
		if err != nil {
			log.Printf("read records: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read records"})
			return
		}
		if rows == nil {
			rows = []records.Record{}
		}
		c.JSON(http.StatusOK, gin.H{"records": rows})
	})

	r.GET("/plates", func(c *gin.Context) {
		names, err := listPlates(cfg.PlateDir)
		if err != nil {
			log.Printf("list plates: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plates"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"plates": names})
	})

	r.GET("/plates/:name", func(c *gin.Context) {
		path, ok := platePath(cfg.PlateDir, c.Param("name"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plate name"})
			return
		}
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "plate not found"})
			return
		}
		c.File(path)
	})

	r.GET("/plates/:name/thumb", func(c *gin.Context) {
		path, ok := platePath(cfg.PlateDir, c.Param("name"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plate name"})
			return
		}
		img, err := imaging.Open(path)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "plate not found"})
			return
		}
		thumb := imaging.Resize(img, 200, 0, imaging.Lanczos)
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
			log.Printf("encode thumbnail %s: %v", path, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode thumbnail"})
			return
		}
		c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
	})
}

// listPlates returns the stored crop filenames in name order.
func listPlates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jpg") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// platePath validates a requested crop name and resolves it under the
// plate directory. Anything that is not a bare *.jpg filename is rejected
// so requests cannot escape the store.
func platePath(dir, name string) (string, bool) {
	if name == "" || name != filepath.Base(name) || filepath.Ext(name) != ".jpg" {
		return "", false
	}
	return filepath.Join(dir, name), true
}
