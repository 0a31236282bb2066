package controllers

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/pleromasprings/core-api/internal/pkg/imagemeta"
	"github.com/pleromasprings/core-api/internal/pkg/mediastore"
)

const (
	maxUploadBytes = 20 << 20
	thumbMaxEdge   = 800
)

var allowedUploadExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".mp4": true, ".webm": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// imageExts are the upload types that go through the image pipeline.
var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// HandleAdminUploadMedia stores a multipart upload and returns the key to
// reference from content records. Images additionally get dimensions, a
// best-effort capture time and a WebP thumbnail stored next to the original.
func HandleAdminUploadMedia(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "Missing file upload")
	}
	if fileHeader.Size > maxUploadBytes {
		return badRequest(c, "File too large")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExts[ext] {
		return badRequest(c, "Unsupported file type")
	}

	folder := c.FormValue("folder", "uploads")
	folder = strings.Trim(folder, "/")
	if folder == "" || strings.Contains(folder, "..") {
		return badRequest(c, "Invalid folder")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return serverError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return serverError(c, err)
	}

	key := mediastore.NewKey(fmt.Sprintf("%s/%s", folder, time.Now().Format("2006/01")), fileHeader.Filename)

	store := mediastore.Default()
	contentType := fileHeader.Header.Get("Content-Type")
	if err := store.Save(key, bytes.NewReader(data), contentType); err != nil {
		return serverError(c, err)
	}

	resp := fiber.Map{
		"key": key,
		"url": mediastore.ResolveURL(key, c.BaseURL()),
	}

	if imageExts[ext] {
		info := imagemeta.Inspect(data)
		resp["width"] = info.Width
		resp["height"] = info.Height
		resp["taken_at"] = info.TakenAt

		if thumb, err := imagemeta.ThumbnailWebP(data, thumbMaxEdge); err != nil {
			// Thumbnail failures never fail the upload.
			log.Warnf("thumbnail generation failed for %s: %v", key, err)
		} else {
			thumbKey := strings.TrimSuffix(key, ext) + "_thumb.webp"
			if err := store.Save(thumbKey, bytes.NewReader(thumb), "image/webp"); err != nil {
				log.Warnf("thumbnail store failed for %s: %v", thumbKey, err)
			} else {
				resp["thumbnail_key"] = thumbKey
				resp["thumbnail_url"] = mediastore.ResolveURL(thumbKey, c.BaseURL())
			}
		}
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleAdminDeleteMedia removes a stored object by key. Missing keys are
// treated as already deleted.
func HandleAdminDeleteMedia(c *fiber.Ctx) error {
	key := strings.Trim(c.Query("key"), "/")
	if key == "" || strings.Contains(key, "..") {
		return badRequest(c, "Invalid media key")
	}
	if err := mediastore.Default().Delete(key); err != nil {
		return serverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
