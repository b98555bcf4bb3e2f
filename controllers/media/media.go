package mediaController

import (
	"log"
	"path/filepath"
	"strconv"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/repository"
	"lms/utils"
	mediaValidator "lms/validators/media"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// UploadMedia stores a multipart file under the upload directory and
// registers it. Teachers and admins only (enforced by the route).
func UploadMedia(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	// Optional course association
	var courseID uint
	if raw := c.FormValue("course_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		courseID = uint(parsed)
		if _, err := repository.FindCourseByID(database.Database.Db, courseID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
	}

	storedName, err := utils.SaveUploadedFile(fileHeader, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}

	mime := fileHeader.Header.Get("Content-Type")
	media := models.MediaFile{
		Filename:         storedName,
		OriginalFilename: filepath.Base(fileHeader.Filename),
		FileType:         mime,
		FileSize:         fileHeader.Size,
		FileURL:          config.AppConfig.PublicBaseURL + "/uploads/" + storedName,
		MediaType:        models.MediaTypeFromMIME(mime),
		UploadedByID:     userID,
		CourseID:         courseID,
	}

	if err := database.Database.Db.Create(&media).Error; err != nil {
		log.Printf("Error registering media: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register media!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded successfully!", media)
}

// RegisterMedia records an externally hosted file. The URL is probed with a
// HEAD request to pick up content type and size.
func RegisterMedia(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedMedia").(*mediaValidator.RegisterMediaRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.CourseID != 0 {
		if _, err := repository.FindCourseByID(database.Database.Db, reqData.CourseID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
	}

	client := resty.New()
	resp, err := client.R().Head(reqData.FileURL)
	if err != nil || resp.StatusCode() >= 400 {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "File URL is not reachable!", nil)
	}

	mime := resp.Header().Get("Content-Type")
	var size int64
	if raw := resp.Header().Get("Content-Length"); raw != "" {
		size, _ = strconv.ParseInt(raw, 10, 64)
	}

	media := models.MediaFile{
		Filename:         filepath.Base(reqData.FileURL),
		OriginalFilename: filepath.Base(reqData.FileURL),
		FileType:         mime,
		FileSize:         size,
		FileURL:          reqData.FileURL,
		MediaType:        models.MediaTypeFromMIME(mime),
		UploadedByID:     userID,
		CourseID:         reqData.CourseID,
	}

	if err := database.Database.Db.Create(&media).Error; err != nil {
		log.Printf("Error registering media: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register media!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Media registered successfully!", media)
}

// GetCourseMedia lists the media registered for a course.
func GetCourseMedia(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var files []models.MediaFile
	if err := database.Database.Db.
		Where("course_id = ?", courseID).
		Order("created_at desc").
		Find(&files).Error; err != nil {
		log.Printf("Error fetching media: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch media!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Media fetched successfully!", fiber.Map{
		"media": files,
	})
}
